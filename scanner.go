package tagf

// tagPattern is a precomputed tag candidate for one style. Lengths are
// in runes to match the scanner's rune-based cursors.
type tagPattern struct {
	style    Style
	open     string
	close    string
	openLen  int
	closeLen int
}

var tagPatterns = func() []tagPattern {
	out := make([]tagPattern, 0, len(styleOrder))
	for _, style := range styleOrder {
		name := style.TagName()
		open := "<" + name + ">"
		close := "</" + name + ">"
		out = append(out, tagPattern{
			style:    style,
			open:     open,
			close:    close,
			openLen:  len([]rune(open)),
			closeLen: len([]rune(close)),
		})
	}
	return out
}()

// Scan turns raw text into an ordered token sequence. It is total and
// pure: any input is accepted, including empty, and scanning never
// fails. Tag-like input that does not form a recognized tag (a lone
// "<", a truncated "<b" or "</b", an unknown name like "<%>") is
// literal text.
func Scan(text string) []Token {
	src := NewRuneView(text)
	var tokens []Token
	start := 0
	current := 0
	for current < src.Len() {
		ch := src.At(current)
		current++
		if ch == "<" {
			if tok, width, ok := matchTagAt(src, current-1); ok {
				tokens = append(tokens, tok)
				current = current - 1 + width
				start = current
				continue
			}
		}
		// Text run: the character just consumed starts it. Extend while
		// the upcoming characters do not begin a recognized tag.
		for current < src.Len() {
			if _, _, ok := matchTagAt(src, current); ok {
				break
			}
			current++
		}
		tokens = append(tokens, textToken(src.Slice(start, current)))
		start = current
	}
	return tokens
}

// matchTagAt tests whether a recognized opening or closing tag begins at
// rune index at. The lookahead is bounded by the longest tag literal
// (name length + 2) and consumes nothing.
func matchTagAt(src RuneView, at int) (Token, int, bool) {
	for _, p := range tagPatterns {
		if src.Slice(at, at+p.openLen) == p.open {
			return openTagToken(p.style), p.openLen, true
		}
		if src.Slice(at, at+p.closeLen) == p.close {
			return closeTagToken(p.style), p.closeLen, true
		}
	}
	return Token{}, 0, false
}
