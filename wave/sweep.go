package wave

import "math"

// LogSweep describes a logarithmic sine sweep.
//
// A logarithmic sweep glides exponentially from StartFreq to EndFreq so that
// each octave takes the same amount of time. The instantaneous frequency is
//
//	f(t) = f1 * exp(t/T * ln(f2/f1))
//
// and integrating the phase gives
//
//	x(t) = A * sin(2*pi * f1 * T / ln(f2/f1) * (exp(t/T * ln(f2/f1)) - 1))
type LogSweep struct {
	StartFreq  float64 // start frequency in Hz
	EndFreq    float64 // end frequency in Hz
	Duration   float64 // sweep duration in seconds
	Amplitude  float64 // peak amplitude
	SampleRate float64 // sample rate in Hz
}

// Validate checks that the LogSweep parameters are valid.
func (s *LogSweep) Validate() error {
	if s.StartFreq <= 0 || s.EndFreq <= 0 {
		return ErrInvalidFrequency
	}

	if s.StartFreq >= s.EndFreq {
		return ErrFrequencyOrder
	}

	if s.Duration <= 0 {
		return ErrInvalidDuration
	}

	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Generate creates the sweep and its time axis.
func (s *LogSweep) Generate() (t, x []float64, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	n := int(math.Round(s.Duration * s.SampleRate))
	t = make([]float64, n)
	x = make([]float64, n)

	T := s.Duration
	lnRatio := math.Log(s.EndFreq / s.StartFreq)
	k := 2 * math.Pi * s.StartFreq * T / lnRatio

	for i := range x {
		ti := float64(i) / s.SampleRate
		t[i] = ti
		x[i] = s.Amplitude * math.Sin(k*(math.Exp(ti/T*lnRatio)-1))
	}

	return t, x, nil
}

// LinearSweep describes a linear (chirp) sine sweep whose instantaneous
// frequency rises from StartFreq to EndFreq at a constant rate.
type LinearSweep struct {
	StartFreq  float64
	EndFreq    float64
	Duration   float64
	Amplitude  float64
	SampleRate float64
}

// Validate checks that the LinearSweep parameters are valid.
func (s *LinearSweep) Validate() error {
	if s.StartFreq <= 0 || s.EndFreq <= 0 {
		return ErrInvalidFrequency
	}

	if s.StartFreq >= s.EndFreq {
		return ErrFrequencyOrder
	}

	if s.Duration <= 0 {
		return ErrInvalidDuration
	}

	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// Generate creates the sweep and its time axis.
//
// The phase follows f(t) = f1 + (f2-f1)*t/T, integrated to
// phi(t) = 2*pi * (f1*t + (f2-f1)*t^2 / (2*T)).
func (s *LinearSweep) Generate() (t, x []float64, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	n := int(math.Round(s.Duration * s.SampleRate))
	t = make([]float64, n)
	x = make([]float64, n)

	k := (s.EndFreq - s.StartFreq) / s.Duration

	for i := range x {
		ti := float64(i) / s.SampleRate
		t[i] = ti
		x[i] = s.Amplitude * math.Sin(2*math.Pi*(s.StartFreq*ti+0.5*k*ti*ti))
	}

	return t, x, nil
}
