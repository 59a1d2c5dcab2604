package tagf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"pkt.systems/tagf/internal/palette"
)

func boringTestTheme() Theme {
	return NewTheme("boring", Styles{})
}

func TestRenderStringBoringPassthrough(t *testing.T) {
	out, err := RenderString("plain <b>bold</b> end", 0, boringTestTheme())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "plain bold end" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderStringStylesBoldSegment(t *testing.T) {
	out, err := RenderString("<b>x</b>", 0, DefaultTheme())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, palette.Bold) {
		t.Fatalf("expected bold SGR in %q", out)
	}
	if !strings.HasSuffix(out, palette.Reset) {
		t.Fatalf("expected reset suffix in %q", out)
	}
	if !strings.Contains(out, "x") {
		t.Fatalf("missing text payload in %q", out)
	}
}

func TestRenderStringWrapsAtWidth(t *testing.T) {
	input := "alpha beta gamma delta epsilon zeta eta theta"
	out, err := RenderString(input, 16, boringTestTheme())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 16 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestRenderStringHardWrapBreaksLongWords(t *testing.T) {
	input := strings.Repeat("a", 30)
	out, err := RenderString(input, 10, boringTestTheme(), WithHardWrap(true))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 10 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestRenderStringNilThemeUsesDefault(t *testing.T) {
	out, err := RenderString("<b>x</b>", 0, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, palette.Bold) {
		t.Fatalf("expected default theme styling in %q", out)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(""),
		Writer: &out,
		Width:  80,
		Theme:  DefaultTheme(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRenderParseErrorNoPartialOutput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("<b>unclosed"),
		Writer: &out,
		Width:  80,
		Theme:  DefaultTheme(),
	})
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ExpectedClosingTag {
		t.Fatalf("expected ExpectedClosingTag, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no partial output, got %q", out.String())
	}
}

func TestRenderAppendsTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("plain <b>bold</b>"),
		Writer: &out,
		Width:  80,
		Theme:  boringTestTheme(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := out.String(); got != "plain bold\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderNilReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}
