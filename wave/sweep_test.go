package wave

import (
	"errors"
	"math"
	"testing"
)

func TestLogSweepValidation(t *testing.T) {
	tests := []struct {
		name    string
		sweep   LogSweep
		wantErr error
	}{
		{"valid", LogSweep{20, 20000, 1, 0.5, 44100}, nil},
		{"zero start freq", LogSweep{0, 20000, 1, 0.5, 44100}, ErrInvalidFrequency},
		{"negative end freq", LogSweep{20, -1, 1, 0.5, 44100}, ErrInvalidFrequency},
		{"start >= end", LogSweep{1000, 100, 1, 0.5, 44100}, ErrFrequencyOrder},
		{"equal freqs", LogSweep{1000, 1000, 1, 0.5, 44100}, ErrFrequencyOrder},
		{"zero duration", LogSweep{20, 20000, 0, 0.5, 44100}, ErrInvalidDuration},
		{"negative duration", LogSweep{20, 20000, -1, 0.5, 44100}, ErrInvalidDuration},
		{"zero sample rate", LogSweep{20, 20000, 1, 0.5, 0}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sweep.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogSweepGenerate(t *testing.T) {
	s := &LogSweep{
		StartFreq:  20,
		EndFreq:    20000,
		Duration:   1,
		Amplitude:  0.5,
		SampleRate: 44100,
	}

	tm, x, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(x) != 44100 {
		t.Errorf("length = %d, want 44100", len(x))
	}
	if len(tm) != len(x) {
		t.Errorf("time axis len = %d, waveform len = %d", len(tm), len(x))
	}

	for i, v := range x {
		if v < -0.501 || v > 0.501 {
			t.Errorf("sample[%d] = %f, out of [-0.5, 0.5] range", i, v)
			break
		}
	}

	// First sample should be sin(0) = 0
	if math.Abs(x[0]) > 1e-10 {
		t.Errorf("first sample = %g, want ~0", x[0])
	}
}

func TestLogSweepGenerateShort(t *testing.T) {
	s := &LogSweep{
		StartFreq:  100,
		EndFreq:    1000,
		Duration:   0.1,
		Amplitude:  1,
		SampleRate: 8000,
	}

	tm, x, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(x) != 800 {
		t.Errorf("length = %d, want 800", len(x))
	}
	if tm[1]-tm[0] != 1.0/8000 {
		t.Errorf("time step = %g, want %g", tm[1]-tm[0], 1.0/8000)
	}
}

func TestLinearSweepValidation(t *testing.T) {
	s := &LinearSweep{StartFreq: 100, EndFreq: 100, Duration: 1, Amplitude: 1, SampleRate: 44100}
	if err := s.Validate(); !errors.Is(err, ErrFrequencyOrder) {
		t.Fatalf("Validate() = %v, want %v", err, ErrFrequencyOrder)
	}
}

func TestLinearSweepGenerate(t *testing.T) {
	s := &LinearSweep{
		StartFreq:  100,
		EndFreq:    4000,
		Duration:   0.5,
		Amplitude:  1,
		SampleRate: 16000,
	}

	_, x, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(x) != 8000 {
		t.Errorf("length = %d, want 8000", len(x))
	}
	if math.Abs(x[0]) > 1e-10 {
		t.Errorf("first sample = %g, want ~0", x[0])
	}
}
