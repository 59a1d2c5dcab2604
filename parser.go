package tagf

import "fmt"

// ParseErrorKind discriminates ParseError variants.
type ParseErrorKind uint8

const (
	// EmptyInput: the token sequence has zero elements.
	EmptyInput ParseErrorKind = iota
	// UnexpectedToken: a closing tag appears where a part must start.
	// Token carries the offender.
	UnexpectedToken
	// ExpectedText: an opening tag has no tokens left to form content.
	ExpectedText
	// EmptyTag: an opening tag is immediately followed by its own
	// matching close. Style carries the tag.
	EmptyTag
	// ExpectedClosingTag: input ends, or a non-closing token appears,
	// before a matching close is found. Style carries the open tag.
	ExpectedClosingTag
	// WrongClosingTag: a close is found but its style differs from the
	// open tag it should match. Style carries the actual close,
	// Expected the open tag.
	WrongClosingTag
	// AlreadyPresentTag: a style is opened while already open. Style
	// carries the tag.
	AlreadyPresentTag
	// Unexpected: the style stack is non-empty after a successful
	// top-level parse. The per-tag checks make this unreachable; it
	// marks a defect in the parser, not bad input.
	Unexpected
)

// ParseError is the single error type Parse returns. Kind selects the
// variant; Token, Style and Expected carry the variant's payload.
type ParseError struct {
	Kind     ParseErrorKind
	Token    Token
	Style    Style
	Expected Style
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "parse: empty input"
	case UnexpectedToken:
		return fmt.Sprintf("parse: unexpected token %s", e.Token)
	case ExpectedText:
		return "parse: expected text after opening tag"
	case EmptyTag:
		return fmt.Sprintf("parse: empty <%s></%s> tag", e.Style.TagName(), e.Style.TagName())
	case ExpectedClosingTag:
		return fmt.Sprintf("parse: expected closing </%s> tag", e.Style.TagName())
	case WrongClosingTag:
		return fmt.Sprintf("parse: closing </%s> tag where </%s> expected", e.Style.TagName(), e.Expected.TagName())
	case AlreadyPresentTag:
		return fmt.Sprintf("parse: <%s> tag opened while already open", e.Style.TagName())
	case Unexpected:
		return "parse: internal: style stack not empty after top-level parse"
	}
	return "parse: unknown error"
}

type parser struct {
	tokens []Token
	pos    int
	open   stack[Style]
}

// Parse consumes a token sequence and produces the ordered segment
// chain, or a *ParseError. Parsing is pure and deterministic: the same
// tokens always yield a structurally equal chain or the identical
// error, and a failure aborts immediately with no partial result.
func Parse(tokens []Token) (Segments, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Kind: EmptyInput}
	}
	p := &parser{tokens: tokens}
	var segs Segments
	for p.pos < len(p.tokens) {
		part, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		segs = append(segs, part...)
	}
	if p.open.Len() != 0 {
		return nil, &ParseError{Kind: Unexpected}
	}
	return segs, nil
}

// parsePart parses exactly one part: a text run, or one opening-tag
// group. The caller handles the remainder.
func (p *parser) parsePart() (Segments, error) {
	tok := p.tokens[p.pos]
	switch tok.Kind {
	case TokenText:
		p.pos++
		return Segments{{Text: tok.Text, Styles: p.open.Items()}}, nil
	case TokenOpenTag:
		return p.parseOpeningTag()
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Token: tok}
	}
}

// parseOpeningTag consumes OpeningTag(s), exactly one inner part, and
// ClosingTag(s). The inner part is the tag's sole content; the grammar
// does not admit sibling content next to a nested tag inside one
// enclosing tag.
func (p *parser) parseOpeningTag() (Segments, error) {
	style := p.tokens[p.pos].Style
	p.pos++
	if p.open.Contains(style) {
		return nil, &ParseError{Kind: AlreadyPresentTag, Style: style}
	}
	p.open.Push(style)
	if p.pos >= len(p.tokens) {
		return nil, &ParseError{Kind: ExpectedText}
	}
	if next := p.tokens[p.pos]; next.Kind == TokenCloseTag && next.Style == style {
		return nil, &ParseError{Kind: EmptyTag, Style: style}
	}
	inner, err := p.parsePart()
	if err != nil {
		return nil, err
	}
	if p.pos >= len(p.tokens) {
		return nil, &ParseError{Kind: ExpectedClosingTag, Style: style}
	}
	close := p.tokens[p.pos]
	p.pos++
	if close.Kind != TokenCloseTag {
		return nil, &ParseError{Kind: ExpectedClosingTag, Style: style}
	}
	if close.Style != style {
		return nil, &ParseError{Kind: WrongClosingTag, Style: close.Style, Expected: style}
	}
	p.open.Pop()
	return inner, nil
}
