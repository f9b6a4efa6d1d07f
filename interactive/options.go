package interactive

import (
	"github.com/cwbudde/algo-wavelab/chart"
)

// Renderer displays a figure produced during a redraw. Front ends implement
// this to push figures at the user; tests implement it to capture them.
type Renderer interface {
	Render(*chart.Figure) error
}

type config struct {
	renderer Renderer
	onError  func(error)
}

// Option adjusts the controller configuration.
type Option func(*config)

// WithRenderer displays every figure left open by the plot function after
// each redraw. Without a renderer figures are only tracked, not shown.
func WithRenderer(r Renderer) Option {
	return func(cfg *config) {
		cfg.renderer = r
	}
}

// WithErrorHandler receives errors from release-triggered redraws, which
// have no caller to return to.
func WithErrorHandler(h func(error)) Option {
	return func(cfg *config) {
		cfg.onError = h
	}
}

func applyOptions(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
