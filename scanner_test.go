package tagf

import (
	"reflect"
	"testing"
)

func TestScanEmptyInput(t *testing.T) {
	if tokens := Scan(""); len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}

func TestScanPlainText(t *testing.T) {
	tokens := Scan("test")
	want := []Token{textToken("test")}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanSingleTags(t *testing.T) {
	tokens := Scan("<b>")
	if !reflect.DeepEqual(tokens, []Token{openTagToken(StyleBold)}) {
		t.Fatalf("unexpected open-tag tokens: %v", tokens)
	}
	tokens = Scan("</b>")
	if !reflect.DeepEqual(tokens, []Token{closeTagToken(StyleBold)}) {
		t.Fatalf("unexpected close-tag tokens: %v", tokens)
	}
}

func TestScanUnrecognizedNameIsLiteral(t *testing.T) {
	tokens := Scan("<%>")
	want := []Token{textToken("<%>")}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanMixedInput(t *testing.T) {
	tokens := Scan("test <b>toto</b> test.")
	want := []Token{
		textToken("test "),
		openTagToken(StyleBold),
		textToken("toto"),
		closeTagToken(StyleBold),
		textToken(" test."),
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanTruncatedTagsAreLiteral(t *testing.T) {
	for _, input := range []string{"<", "<b", "</", "</b"} {
		tokens := Scan(input)
		want := []Token{textToken(input)}
		if !reflect.DeepEqual(tokens, want) {
			t.Fatalf("Scan(%q): want %v, got %v", input, want, tokens)
		}
	}
}

func TestScanTrailingAngleBracket(t *testing.T) {
	tokens := Scan("a < b and a <")
	want := []Token{textToken("a < b and a <")}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanMultiByteInput(t *testing.T) {
	tokens := Scan("héllo <b>wörld 🦊</b>")
	want := []Token{
		textToken("héllo "),
		openTagToken(StyleBold),
		textToken("wörld 🦊"),
		closeTagToken(StyleBold),
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanAngleBracketBeforeTag(t *testing.T) {
	tokens := Scan("1 < 2 <b>x</b>")
	want := []Token{
		textToken("1 < 2 "),
		openTagToken(StyleBold),
		textToken("x"),
		closeTagToken(StyleBold),
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("unexpected tokens\nwant: %v\n got: %v", want, tokens)
	}
}

func TestScanDeterministic(t *testing.T) {
	input := "test <b>toto</b> 1 < 2"
	first := Scan(input)
	second := Scan(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scan not deterministic:\n%v\n%v", first, second)
	}
}
