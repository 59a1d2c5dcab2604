package tagf

import "fmt"

// Token is an atomic lexical unit produced by Scan: a literal text run,
// a tag-open marker, or a tag-close marker. Tokens are immutable and
// keep source order.
type Token struct {
	Kind  TokenKind
	Style Style
	Text  string
}

// TokenKind discriminates Token variants.
type TokenKind uint8

const (
	// TokenText is a literal text run; Text carries the payload.
	TokenText TokenKind = iota
	// TokenOpenTag marks an opening tag; Style carries the style.
	TokenOpenTag
	// TokenCloseTag marks a closing tag; Style carries the style.
	TokenCloseTag
)

func textToken(text string) Token {
	return Token{Kind: TokenText, Text: text}
}

func openTagToken(style Style) Token {
	return Token{Kind: TokenOpenTag, Style: style}
}

func closeTagToken(style Style) Token {
	return Token{Kind: TokenCloseTag, Style: style}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case TokenOpenTag:
		return fmt.Sprintf("OpenTag(%s)", t.Style)
	case TokenCloseTag:
		return fmt.Sprintf("CloseTag(%s)", t.Style)
	}
	return "Token(?)"
}
