package spectrum

import (
	"github.com/cwbudde/algo-wavelab/core"
	"github.com/cwbudde/algo-wavelab/window"
)

// AnalyzerConfig defines configuration for the spectrum analyzer.
type AnalyzerConfig struct {
	core.Config
	FFTSize int // 0 derives the size from the input length
	Window  window.Type
}

// AnalyzerOption mutates an AnalyzerConfig.
type AnalyzerOption func(*AnalyzerConfig)

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Config: core.DefaultConfig(),
		Window: window.TypeHann,
	}
}

// WithSampleRate sets the analysis sample rate.
func WithSampleRate(sampleRate float64) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize pins the FFT size instead of deriving it from the input
// length. Sizes are rounded up to the next power of two at analysis time.
func WithFFTSize(size int) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		if size > 0 {
			cfg.FFTSize = size
		}
	}
}

// WithWindow selects the analysis window.
func WithWindow(t window.Type) AnalyzerOption {
	return func(cfg *AnalyzerConfig) {
		cfg.Window = t
	}
}

// ApplyAnalyzerOptions applies zero or more options to the default config.
func ApplyAnalyzerOptions(opts ...AnalyzerOption) AnalyzerConfig {
	cfg := DefaultAnalyzerConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
