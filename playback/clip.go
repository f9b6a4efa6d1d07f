package playback

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Clip is one playable piece of audio. It streams its mono samples with the
// same signal on both output channels and finishes once the last sample has
// been streamed.
type Clip struct {
	player   *Player
	samples  []float64
	rate     float64
	streamer *clipStreamer
	ctrl     *beep.Ctrl

	// attached reports whether ctrl has been added to the player's mixer.
	// Guarded by player.mu.
	attached bool

	done     chan struct{}
	doneOnce sync.Once
}

func newClip(p *Player, samples []float64, rate float64) *Clip {
	data := make([]float64, len(samples))
	copy(data, samples)

	c := &Clip{
		player:  p,
		samples: data,
		rate:    rate,
		done:    make(chan struct{}),
	}
	c.streamer = &clipStreamer{data: data, finish: c.markDone}
	c.ctrl = &beep.Ctrl{Streamer: c.streamer, Paused: true}
	if len(data) == 0 {
		c.markDone()
	}
	return c
}

// Samples returns the clip's backing samples. Treat the slice as read only.
func (c *Clip) Samples() []float64 {
	return c.samples
}

// SampleRate returns the clip's sample rate in Hz.
func (c *Clip) SampleRate() float64 {
	return c.rate
}

// Duration returns the clip length in wall time.
func (c *Clip) Duration() time.Duration {
	if c.rate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.samples)) / c.rate * float64(time.Second))
}

// Resume starts or restarts streaming, opening the audio device if this is
// the first clip to play. It does not rewind a finished clip.
func (c *Clip) Resume() error {
	if err := c.player.ensureAttached(c); err != nil {
		return err
	}

	c.player.mu.Lock()
	defer c.player.mu.Unlock()
	c.ctrl.Paused = false
	return nil
}

// Pause suspends streaming. The clip keeps its position and can be resumed.
func (c *Clip) Pause() {
	c.player.mu.Lock()
	defer c.player.mu.Unlock()
	c.ctrl.Paused = true
}

// Playing reports whether the clip is attached, unpaused and not yet
// drained.
func (c *Clip) Playing() bool {
	c.player.mu.Lock()
	attached := c.attached
	paused := c.ctrl.Paused
	c.player.mu.Unlock()

	return attached && !paused && !c.streamer.drained()
}

// Done returns a channel that is closed once the clip has streamed to the
// end. An empty clip is done from the start; any other clip that never
// starts never closes it.
func (c *Clip) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the clip has streamed to the end.
func (c *Clip) Wait() {
	<-c.done
}

func (c *Clip) markDone() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// clipStreamer feeds the clip's mono samples to both channels of the device
// stream. It is finite: after the last sample it reports a drained stream.
type clipStreamer struct {
	mu     sync.Mutex
	data   []float64
	pos    int
	finish func()
}

func (s *clipStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.data) {
		s.finish()
		return 0, false
	}

	for i := range samples {
		if s.pos >= len(s.data) {
			break
		}
		v := s.data[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}

	if s.pos >= len(s.data) {
		s.finish()
	}
	return n, true
}

func (s *clipStreamer) Err() error {
	return nil
}

func (s *clipStreamer) drained() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos >= len(s.data)
}
