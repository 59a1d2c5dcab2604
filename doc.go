// Package tagf converts text with inline markup tags to ANSI for terminal
// display.
//
// Input passes through a two-stage pipeline: a scanner turns the raw text
// into an ordered token stream, and a recursive-descent parser turns the
// tokens into an ordered chain of style-annotated segments. The renderer
// then styles each segment from a theme and wraps the result at the output
// width.
//
// Core properties:
//   - Scanning never fails; malformed tag-like input is literal text
//   - Parsing enforces tag balance and reports distinguishable errors
//   - Width-independent segments; wrap/reflow is last
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	reader := strings.NewReader("plain <b>bold</b> plain\n")
//	err := tagf.Render(tagf.RenderRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  tagf.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Scan and Parse are exported separately for callers that want the token
// stream or the segment chain without rendering.
package tagf
