// Package stats computes time-domain summaries of waveforms in a single pass.
package stats

import (
	"math"

	"github.com/cwbudde/algo-wavelab/core"
)

// Summary holds time-domain waveform statistics.
type Summary struct {
	Length        int
	Mean          float64 // DC offset
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Range         float64 // max - min
	CrestFactor   float64 // peak / RMS, 0 for silence
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
	Variance      float64
	StdDev        float64
}

// PeakDB returns the peak level in dB relative to full scale.
func (s Summary) PeakDB() float64 {
	return core.LinearToDB(s.Peak)
}

// RMSDB returns the RMS level in dB relative to full scale.
func (s Summary) RMSDB() float64 {
	return core.LinearToDB(s.RMS)
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for the mean and variance.
func Calculate(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
	)

	// Running aggregates.
	var (
		sumSq         float64
		maxVal        = samples[0]
		maxPos        int
		minVal        = samples[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range samples {
		ni := float64(i + 1) // 1-based count after this sample
		delta := x - mean
		deltaN := delta / ni
		m2 += delta * deltaN * float64(i)
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && samples[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	crest := 0.0
	if rms != 0 {
		crest = peak / rms
	}

	variance := m2 / nf

	return Summary{
		Length:        n,
		Mean:          mean,
		RMS:           rms,
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		Range:         maxVal - minVal,
		CrestFactor:   crest,
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: zeroCrossings,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
	}
}

// RMS returns the root-mean-square of the waveform.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range samples {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(samples)))
}

// Mean returns the mean (DC offset) of the waveform.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range samples {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(samples))
}

// Peak returns the peak absolute amplitude of the waveform.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	peak := math.Abs(samples[0])
	for _, x := range samples[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the waveform.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(samples []float64) int {
	if len(samples) < 2 {
		return 0
	}

	var count int

	for i := 1; i < len(samples); i++ {
		if samples[i-1]*samples[i] < 0 {
			count++
		}
	}

	return count
}
