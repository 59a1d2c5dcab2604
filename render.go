package tagf

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/tagf/internal/palette"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads tag markup from Reader, validates it, and writes the
// styled, wrapped ANSI rendition to Writer. Empty input renders as
// nothing. A parse failure is returned as-is; no partial output is
// written.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if len(src) == 0 {
		return nil
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	out, err := RenderString(string(src), req.Width, req.Theme, req.Options...)
	if err != nil {
		return err
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// RenderString scans and parses text, styles each segment from the
// theme, and wraps the result at width. Width 0 disables wrapping.
func RenderString(text string, width int, theme Theme, opts ...RenderOption) (string, error) {
	var cfg renderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	segs, err := Parse(Scan(text))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	out := styleSegments(segs, theme.Styles())
	if width > 0 {
		out = wordwrap.String(out, width)
		if cfg.hardWrap {
			out = wrap.String(out, width)
		}
	}
	return out, nil
}

func styleSegments(segs Segments, styles Styles) string {
	var b strings.Builder
	for _, seg := range segs {
		prefix := styles.Text.Prefix
		for _, style := range seg.Styles {
			prefix += styles.For(style).Prefix
		}
		if prefix == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(prefix)
		b.WriteString(seg.Text)
		b.WriteString(palette.Reset)
	}
	return b.String()
}
