package tagf

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// StreamSimulateRequest configures StreamSimulate.
type StreamSimulateRequest struct {
	Reader    io.Reader
	Writer    io.Writer
	Width     int
	ChunkSize int
	Delay     time.Duration
	Theme     Theme
	Options   []RenderOption
}

// StreamSimulate renders tag markup and emits the output in delayed
// rune chunks, simulating inference token timing. Input that is not
// valid UTF-8 text is skipped silently.
func StreamSimulate(req StreamSimulateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("stream simulate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("stream simulate: Writer is nil")
	}
	if req.ChunkSize <= 0 {
		return fmt.Errorf("stream simulate: ChunkSize must be > 0")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("stream simulate: read: %w", err)
	}
	if len(src) == 0 {
		return nil
	}
	if err := ValidateInput(src); err != nil {
		return nil
	}
	out, err := RenderString(string(src), req.Width, req.Theme, req.Options...)
	if err != nil {
		return fmt.Errorf("stream simulate: %w", err)
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	runes := []rune(out)
	for start := 0; start < len(runes); start += req.ChunkSize {
		end := start + req.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		if _, err := io.WriteString(req.Writer, string(runes[start:end])); err != nil {
			return fmt.Errorf("stream simulate: write: %w", err)
		}
		if req.Delay > 0 && end < len(runes) {
			time.Sleep(req.Delay)
		}
	}
	return nil
}
