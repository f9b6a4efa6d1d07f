package wave

import (
	"math"
	"math/rand"
)

// Generator creates waveforms with a matching time axis from a shared
// configuration.
//
// Every generation method returns a pair of equal-length slices: the time
// axis in seconds, evenly spaced over [0, duration) with the endpoint
// excluded, and the waveform samples evaluated at those instants. The
// sample count is round(sampleRate * duration). Negative or zero durations
// yield an empty pair; parameter ranges are otherwise not validated, so a
// negative frequency or an amplitude above 1 is the caller's business.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	return &Generator{cfg: ApplyGeneratorOptions(opts...)}
}

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// SetSeed sets the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.cfg.Seed = seed
}

// timeAxis builds the time axis for the given duration.
func (g *Generator) timeAxis(durationSec float64) []float64 {
	n := int(math.Round(g.cfg.SampleRate * durationSec))
	if n < 0 {
		n = 0
	}

	t := make([]float64, n)
	if n == 0 {
		return t
	}

	step := durationSec / float64(n)
	for i := range t {
		t[i] = step * float64(i)
	}

	return t
}

// Sine generates a sine tone: amplitude * sin(2*pi*freqHz*t).
// The first sample is exactly 0 and no sample exceeds |amplitude|.
func (g *Generator) Sine(freqHz, durationSec, amplitude float64) (t, x []float64) {
	t = g.timeAxis(durationSec)
	x = make([]float64, len(t))

	w := 2 * math.Pi * freqHz
	for i, ti := range t {
		x[i] = amplitude * math.Sin(w*ti)
	}

	return t, x
}

// WhiteNoise generates uniform white noise in [-amplitude, amplitude).
//
// The noise is deterministic for a given seed: repeated calls with the same
// configuration produce identical output.
func (g *Generator) WhiteNoise(durationSec, amplitude float64) (t, x []float64) {
	t = g.timeAxis(durationSec)
	x = make([]float64, len(t))

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	for i := range x {
		x[i] = amplitude * (rng.Float64()*2 - 1)
	}

	return t, x
}

// Square generates a square wave that spends the first half of each cycle at
// +amplitude and the second half at -amplitude.
func (g *Generator) Square(freqHz, durationSec, amplitude float64) (t, x []float64) {
	t = g.timeAxis(durationSec)
	x = make([]float64, len(t))

	for i, ti := range t {
		if phaseFrac(freqHz*ti) < 0.5 {
			x[i] = amplitude
		} else {
			x[i] = -amplitude
		}
	}

	return t, x
}

// Sawtooth generates a rising sawtooth from -amplitude to +amplitude per cycle.
func (g *Generator) Sawtooth(freqHz, durationSec, amplitude float64) (t, x []float64) {
	t = g.timeAxis(durationSec)
	x = make([]float64, len(t))

	for i, ti := range t {
		x[i] = amplitude * (2*phaseFrac(freqHz*ti) - 1)
	}

	return t, x
}

// Triangle generates a triangle wave that is phase aligned with Sine: it
// starts at 0, peaks a quarter period later, and shares its zero crossings.
func (g *Generator) Triangle(freqHz, durationSec, amplitude float64) (t, x []float64) {
	t = g.timeAxis(durationSec)
	x = make([]float64, len(t))

	w := 2 * math.Pi * freqHz
	scale := amplitude * 2 / math.Pi
	for i, ti := range t {
		x[i] = scale * math.Asin(math.Sin(w*ti))
	}

	return t, x
}

// phaseFrac reduces a cycle count to its fractional part in [0, 1).
func phaseFrac(cycles float64) float64 {
	return cycles - math.Floor(cycles)
}
