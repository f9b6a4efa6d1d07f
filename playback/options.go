package playback

import (
	"github.com/cwbudde/algo-wavelab/core"
)

// Display receives every clip handed to a Player, in Play order. A renderer
// for a REPL or web front end implements this to show a widget per clip.
type Display interface {
	ShowClip(*Clip) error
}

// PlayerConfig bundles the settings shared by all clips of a Player.
type PlayerConfig struct {
	core.Config

	// Display is invoked once per Play call. Nil disables rendering; the
	// clip is still tracked and playable.
	Display Display
}

// PlayerOption adjusts the player configuration.
type PlayerOption func(*PlayerConfig)

// DefaultPlayerConfig returns the standard playback configuration.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Config: core.DefaultConfig(),
	}
}

// WithSampleRate sets the playback sample rate in Hz.
func WithSampleRate(sampleRate float64) PlayerOption {
	return func(cfg *PlayerConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDisplay routes every played clip through d.
func WithDisplay(d Display) PlayerOption {
	return func(cfg *PlayerConfig) {
		cfg.Display = d
	}
}

// ApplyPlayerOptions builds a PlayerConfig from the defaults and the given
// options.
func ApplyPlayerOptions(opts ...PlayerOption) PlayerConfig {
	cfg := DefaultPlayerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

type playConfig struct {
	autoplay bool
}

// PlayOption adjusts a single Play call.
type PlayOption func(*playConfig)

// WithoutAutoplay queues the clip without starting it. The clip still shows
// up in Displayed and can be started later with Resume; the audio device is
// not touched, so headless programs stay silent.
func WithoutAutoplay() PlayOption {
	return func(cfg *playConfig) {
		cfg.autoplay = false
	}
}

func applyPlayOptions(opts ...PlayOption) playConfig {
	cfg := playConfig{autoplay: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
