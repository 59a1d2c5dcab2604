package tagf

// stack is a LIFO container. The parser owns one per invocation to
// track the styles currently open.
type stack[T comparable] struct {
	list []T
}

func (s *stack[T]) Len() int {
	return len(s.list)
}

func (s *stack[T]) Push(item T) {
	s.list = append(s.list, item)
}

func (s *stack[T]) Pop() {
	n := s.Len() - 1
	if n < 0 {
		return
	}
	s.list = s.list[:n]
}

func (s *stack[T]) Top() T {
	var ret T
	if s.Len() > 0 {
		ret = s.list[s.Len()-1]
	}
	return ret
}

func (s *stack[T]) Contains(item T) bool {
	for _, have := range s.list {
		if have == item {
			return true
		}
	}
	return false
}

// Items returns the stack contents bottom to top. The copy is the
// caller's to keep.
func (s *stack[T]) Items() []T {
	if len(s.list) == 0 {
		return nil
	}
	out := make([]T, len(s.list))
	copy(out, s.list)
	return out
}
