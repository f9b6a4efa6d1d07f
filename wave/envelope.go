package wave

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize scales data to the target peak amplitude and returns a new slice.
// A silent input stays silent.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, ErrNegativePeak
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// Fade applies linear attack and release ramps to x in place, which removes
// the clicks a hard-edged clip produces on playback. Ramp lengths are given
// in seconds and clamped to the available samples.
func Fade(x []float64, sampleRate, attackSec, releaseSec float64) {
	total := len(x)
	if total == 0 || sampleRate <= 0 {
		return
	}

	attack := int(attackSec * sampleRate)
	release := int(releaseSec * sampleRate)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < attack && i < total; i++ {
		x[i] *= float64(i) / float64(attack)
	}

	for i := releaseStart; i < total; i++ {
		x[i] *= float64(total-i) / float64(release)
	}
}

// Mix adds gain*src into dst in place. The slices must have the same length.
func Mix(dst, src []float64, gain float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	if len(dst) == 0 {
		return nil
	}

	scaled := make([]float64, len(src))
	vecmath.ScaleBlock(scaled, src, gain)
	vecmath.AddBlockInPlace(dst, scaled)
	return nil
}
