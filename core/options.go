package core

// DefaultSampleRate is the sample rate used when none is configured.
const DefaultSampleRate = 44100.0

// Config defines settings shared by generators, analyzers, and players.
type Config struct {
	SampleRate float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
