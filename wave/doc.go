// Package wave generates elementary test signals as co-indexed
// time/amplitude slice pairs.
//
// Every generator method returns two slices of equal length: t holds the
// sample instants in seconds and x the amplitudes at those instants. The
// sample count is round(sampleRate * duration) and the time axis covers
// [0, duration) with the endpoint excluded, so a one second signal at
// 44100 Hz has exactly 44100 samples and the last instant falls one
// sample period before the full second.
//
// # Usage
//
// Generate one second of a concert A test tone:
//
//	g := wave.NewGenerator()
//	t, x := g.Sine(440, 1.0, 0.5)
//	// len(t) == len(x) == 44100, x[0] == 0
//
// Noise uses the generator seed, so runs are reproducible:
//
//	g := wave.NewGenerator(wave.WithSeed(42))
//	_, n := g.WhiteNoise(1.0, 0.5)
//
// Swept sines for measurement use the same pair convention but validate
// their parameters first:
//
//	s := &wave.LogSweep{
//	    StartFreq: 20, EndFreq: 20000,
//	    Duration: 2, Amplitude: 0.5, SampleRate: 44100,
//	}
//	t, x, err := s.Generate()
//
// Generators perform no range checking beyond the documented duration
// handling. A frequency above Nyquist aliases and an amplitude above one
// clips on playback, exactly as the underlying math dictates.
package wave
