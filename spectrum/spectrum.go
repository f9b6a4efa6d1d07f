// Package spectrum computes one-sided magnitude spectra of waveforms.
//
// The analyzer windows the input, zero-pads it to the FFT size, and scales
// bin magnitudes by the window's coherent gain so that a full-scale sine
// reads back its time-domain amplitude at the peak bin. Interior bins are
// doubled to fold the negative-frequency half into the one-sided result.
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelab/core"
	"github.com/cwbudde/algo-wavelab/window"
)

// ErrEmptyInput is returned when there are no samples to analyze.
var ErrEmptyInput = errors.New("spectrum: input must not be empty")

const (
	// Floor for dB conversion, matching a 16-bit noise floor with headroom.
	minDB = -130.0
	eps   = 1e-12

	// Cap for derived FFT sizes so huge inputs analyze their leading frame.
	maxAutoFFTSize = 65536
)

// Analyzer computes magnitude spectra from a shared configuration.
// Scratch buffers are reused across calls, so an Analyzer must not be
// shared between goroutines.
type Analyzer struct {
	cfg AnalyzerConfig

	input  []complex128
	output []complex128
	re     []float64
	im     []float64
}

// NewAnalyzer creates a configured spectrum analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	return &Analyzer{cfg: ApplyAnalyzerOptions(opts...)}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() AnalyzerConfig {
	return a.cfg
}

// fftSizeFor resolves the FFT size for an input of length n.
func (a *Analyzer) fftSizeFor(n int) int {
	size := a.cfg.FFTSize
	if size <= 0 {
		size = n
		if size > maxAutoFFTSize {
			size = maxAutoFFTSize
		}
	}

	return nextPowerOf2(size)
}

// Magnitude returns the one-sided magnitude spectrum and its bin
// frequencies in Hz. Both slices have length fftSize/2 + 1. Inputs longer
// than the FFT size contribute only their leading frame.
func (a *Analyzer) Magnitude(samples []float64) (freqs, mags []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrEmptyInput
	}

	fftSize := a.fftSizeFor(len(samples))

	n := len(samples)
	if n > fftSize {
		n = fftSize
	}

	coeffs := window.Generate(a.cfg.Window, n, window.WithPeriodic())

	windowed, err := window.ApplyCoefficients(samples[:n], coeffs)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: window: %w", err)
	}

	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: window gain: %w", err)
	}

	norm := float64(n) * math.Max(gain, eps)

	a.input = core.EnsureLenComplex(a.input, fftSize)
	for i := range a.input {
		a.input[i] = 0
	}
	for i, v := range windowed {
		a.input[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: create fft plan: %w", err)
	}

	a.output = core.EnsureLenComplex(a.output, fftSize)
	if err := plan.Forward(a.output, a.input); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	a.re = core.EnsureLen(a.re, bins)
	a.im = core.EnsureLen(a.im, bins)
	for k := 0; k < bins; k++ {
		a.re[k] = real(a.output[k])
		a.im[k] = imag(a.output[k])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, a.re, a.im)

	last := bins - 1
	for k := range mags {
		mags[k] /= norm
		if k > 0 && k < last {
			mags[k] *= 2
		}
	}

	freqs = make([]float64, bins)
	binHz := a.cfg.SampleRate / float64(fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return freqs, mags, nil
}

// MagnitudeDB returns the one-sided spectrum in dB relative to full scale,
// floored at -130 dB.
func (a *Analyzer) MagnitudeDB(samples []float64) (freqs, dbs []float64, err error) {
	freqs, mags, err := a.Magnitude(samples)
	if err != nil {
		return nil, nil, err
	}

	for k, m := range mags {
		db := core.LinearToDB(math.Max(eps, m))
		if db < minDB {
			db = minDB
		}

		mags[k] = db
	}

	return freqs, mags, nil
}

// PeakFrequency returns the frequency of the strongest non-DC bin.
func (a *Analyzer) PeakFrequency(samples []float64) (float64, error) {
	freqs, mags, err := a.Magnitude(samples)
	if err != nil {
		return 0, err
	}

	if len(mags) < 2 {
		return 0, nil
	}

	bestBin := 1
	bestVal := -1.0

	for i := 1; i < len(mags); i++ {
		if mags[i] > bestVal {
			bestVal = mags[i]
			bestBin = i
		}
	}

	return freqs[bestBin], nil
}

// Centroid returns the spectral centroid in Hz of a co-indexed
// frequency/magnitude pair. Degenerate spectra return 0.
//
//	centroid = sum(f_i * m_i) / sum(m_i)
func Centroid(freqs, mags []float64) float64 {
	if len(freqs) != len(mags) || len(mags) < 2 {
		return 0
	}

	sum := 0.0
	weightedSum := 0.0
	for i, m := range mags {
		sum += m
		weightedSum += freqs[i] * m
	}

	if sum == 0 {
		return 0
	}

	return weightedSum / sum
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
