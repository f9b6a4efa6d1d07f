package wave

import "github.com/cwbudde/algo-wavelab/core"

// GeneratorConfig defines configuration for waveform generation.
type GeneratorConfig struct {
	core.Config
	Seed int64
}

// GeneratorOption mutates a GeneratorConfig.
type GeneratorOption func(*GeneratorConfig)

// DefaultGeneratorConfig returns sensible defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Config: core.DefaultConfig(),
		Seed:   1,
	}
}

// WithSampleRate sets the generation sample rate in Hz.
func WithSampleRate(sampleRate float64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		cfg.Seed = seed
	}
}

// ApplyGeneratorOptions applies zero or more options to the default config.
func ApplyGeneratorOptions(opts ...GeneratorOption) GeneratorConfig {
	cfg := DefaultGeneratorConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
