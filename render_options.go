package tagf

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	hardWrap bool
}

// WithHardWrap breaks words longer than the output width. By default
// only soft wrapping at word boundaries is applied.
func WithHardWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.hardWrap = enabled
	}
}
