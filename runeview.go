package tagf

// RuneView provides character-boundary-safe random access over a string.
// Indexing is by Unicode code point, never by byte, so slicing cannot
// split a multi-byte character. Out-of-range access clamps to the
// nearest valid boundary instead of failing.
type RuneView struct {
	runes []rune
}

// NewRuneView builds a RuneView over s.
func NewRuneView(s string) RuneView {
	return RuneView{runes: []rune(s)}
}

// Len returns the number of code points.
func (v RuneView) Len() int {
	return len(v.runes)
}

// At returns the single character at rune index i, or "" when i is out
// of range.
func (v RuneView) At(i int) string {
	if i < 0 || i >= len(v.runes) {
		return ""
	}
	return string(v.runes[i])
}

// Slice returns the characters in [from, to), clamped to valid bounds.
func (v RuneView) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(v.runes) {
		to = len(v.runes)
	}
	if from >= to {
		return ""
	}
	return string(v.runes[from:to])
}
