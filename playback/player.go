// Package playback turns mono sample slices into playable clips on the host
// audio device.
//
// A Player keeps session state the way an interactive notebook does: every
// Play call appends a clip to the displayed list, optionally renders it
// through a Display, and by default starts it immediately. Clips passed
// WithoutAutoplay never open the device, which keeps headless programs and
// tests silent. Clips can also be exported as 16-bit PCM WAV, peak
// normalized to full scale.
//
// The device is global to the process, so programs normally share a single
// Player.
package playback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const deviceBufferDuration = 100 * time.Millisecond

// Player hands out playable clips and tracks them for later inspection.
type Player struct {
	mu        sync.Mutex
	cfg       PlayerConfig
	mixer     *beep.Mixer
	displayed []*Clip
	err       error

	initOnce sync.Once
	initErr  error
}

// NewPlayer creates a player. The audio device stays closed until the first
// clip starts.
func NewPlayer(opts ...PlayerOption) *Player {
	return &Player{
		cfg:   ApplyPlayerOptions(opts...),
		mixer: &beep.Mixer{},
	}
}

// Play wraps samples in a clip, appends it to the displayed list and, unless
// WithoutAutoplay is given, starts it on the audio device. The clip owns a
// private copy of samples. Device and display failures are sticky and
// reported by Err.
func (p *Player) Play(samples []float64, opts ...PlayOption) *Clip {
	cfg := applyPlayOptions(opts...)
	clip := newClip(p, samples, p.cfg.SampleRate)

	p.mu.Lock()
	p.displayed = append(p.displayed, clip)
	display := p.cfg.Display
	p.mu.Unlock()

	if display != nil {
		if err := display.ShowClip(clip); err != nil {
			p.setErr(fmt.Errorf("playback: show clip: %w", err))
		}
	}

	if cfg.autoplay {
		if err := clip.Resume(); err != nil {
			p.setErr(err)
		}
	}
	return clip
}

// Displayed returns the clips handed out so far, oldest first.
func (p *Player) Displayed() []*Clip {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Clip, len(p.displayed))
	copy(out, p.displayed)
	return out
}

// Err returns the first error the player ran into, or nil.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Close pauses every clip and detaches them from the device. The backend has
// no close call for the device itself; an empty mixer produces silence.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, clip := range p.displayed {
		clip.ctrl.Paused = true
	}
	p.mixer.Clear()
}

func (p *Player) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err == nil {
		p.err = err
	}
}

// ensureDevice opens the device once and keeps the shared mixer running on
// it.
func (p *Player) ensureDevice() error {
	p.initOnce.Do(func() {
		sr := beep.SampleRate(int(math.Round(p.cfg.SampleRate)))
		if err := speaker.Init(sr, sr.N(deviceBufferDuration)); err != nil {
			p.initErr = fmt.Errorf("playback: init audio device: %w", err)
			return
		}
		speaker.Play(p.mixer)
	})
	return p.initErr
}

// ensureAttached adds the clip's control to the running mixer exactly once.
func (p *Player) ensureAttached(c *Clip) error {
	p.mu.Lock()
	if c.attached {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	if err := p.ensureDevice(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !c.attached {
		p.mixer.Add(c.ctrl)
		c.attached = true
	}
	return nil
}
