package lessonfmt

import "go.uber.org/zap"

// RenderOption configures rendering behavior.
type RenderOption func(*RenderConfig)

// RenderConfig is the resolved set of render options.
type RenderConfig struct {
	SoftWrap bool
	Indent   int
	Logger   *zap.Logger
}

// NewRenderConfig applies opts over the defaults. The returned Logger is
// never nil.
func NewRenderConfig(opts ...RenderOption) RenderConfig {
	cfg := RenderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Indent < 0 {
		cfg.Indent = 0
	}
	return cfg
}

// WithSoftWrap hard-breaks words that do not fit the width on their own.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.SoftWrap = enabled
	}
}

// WithIndent indents every output line by n spaces. The indent counts
// against the width.
func WithIndent(n int) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Indent = n
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(logger *zap.Logger) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Logger = logger
	}
}
