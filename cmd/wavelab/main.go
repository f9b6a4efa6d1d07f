// Command wavelab generates test waveforms and turns them into statistics
// tables, charts, spectra and WAV files.
//
// Usage:
//
//	wavelab [flags]
//
// Without output flags it prints a statistics table for the generated
// waveform.
//
// Examples:
//
//	wavelab -wave sine -freq 440 -dur 1 -stats
//	wavelab -wave sine -freq 440 -note
//	wavelab -wave sweep -freq 20 -f2 20000 -chart sweep.png
//	wavelab -wave noise -seed 7 -window blackman -spectrum noise.png
//	wavelab -wave square -freq 220 -wav tone.wav
//	wavelab -wave sine -freq 440 -play
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelab/chart"
	"github.com/cwbudde/algo-wavelab/core"
	"github.com/cwbudde/algo-wavelab/pitch"
	"github.com/cwbudde/algo-wavelab/playback"
	"github.com/cwbudde/algo-wavelab/spectrum"
	"github.com/cwbudde/algo-wavelab/stats"
	"github.com/cwbudde/algo-wavelab/wave"
	"github.com/cwbudde/algo-wavelab/window"
)

type settings struct {
	wave     string
	rate     float64
	freq     float64
	endFreq  float64
	duration float64
	amp      float64
	seed     int64
}

func main() {
	waveName := flag.String("wave", "sine", "waveform: sine, noise, square, sawtooth, triangle, sweep")
	rate := flag.Float64("rate", core.DefaultSampleRate, "sample rate in Hz")
	freq := flag.Float64("freq", 440, "frequency in Hz (start frequency for sweeps)")
	endFreq := flag.Float64("f2", 20000, "sweep end frequency in Hz")
	duration := flag.Float64("dur", 1.0, "duration in seconds")
	amp := flag.Float64("amp", 1.0, "peak amplitude")
	seed := flag.Int64("seed", 1, "noise seed")
	showStats := flag.Bool("stats", false, "print a waveform statistics table")
	showNote := flag.Bool("note", false, "print the nearest MIDI note for -freq")
	chartPath := flag.String("chart", "", "write a waveform chart PNG to this path")
	spectrumPath := flag.String("spectrum", "", "write a magnitude spectrum PNG to this path")
	windowName := flag.String("window", "hann", "spectrum window: rectangular, hann, hamming, blackman, flattop")
	fftSize := flag.Int("fft", 0, "FFT size, 0 picks the next power of two")
	wavPath := flag.String("wav", "", "write a 16-bit PCM WAV file to this path")
	play := flag.Bool("play", false, "play the waveform and wait for it to finish")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavelab [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates a test waveform and prints, charts, exports or plays it.\n")
		fmt.Fprintf(os.Stderr, "Without output flags it prints a statistics table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavelab -wave sine -freq 440 -dur 1 -stats\n")
		fmt.Fprintf(os.Stderr, "  wavelab -wave sweep -freq 20 -f2 20000 -chart sweep.png\n")
		fmt.Fprintf(os.Stderr, "  wavelab -wave noise -seed 7 -window blackman -spectrum noise.png\n")
		fmt.Fprintf(os.Stderr, "  wavelab -wave square -freq 220 -wav tone.wav\n")
		fmt.Fprintf(os.Stderr, "  wavelab -wave sine -freq 440 -play\n")
	}
	flag.Parse()

	s := settings{
		wave:     strings.ToLower(strings.TrimSpace(*waveName)),
		rate:     *rate,
		freq:     *freq,
		endFreq:  *endFreq,
		duration: *duration,
		amp:      *amp,
		seed:     *seed,
	}
	if s.rate <= 0 {
		s.rate = core.DefaultSampleRate
	}

	t, x, err := buildWaveform(s)
	if err != nil {
		fail(err)
	}

	defaultOut := !*showStats && !*showNote &&
		*chartPath == "" && *spectrumPath == "" && *wavPath == "" && !*play
	if defaultOut || *showStats {
		if err := printStats(x, s.rate); err != nil {
			fail(err)
		}
	}
	if *showNote {
		if err := printNote(s.freq); err != nil {
			fail(err)
		}
	}
	if *chartPath != "" {
		if err := writeChart(t, x, s.wave+" waveform", *chartPath); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s\n", *chartPath)
	}
	if *spectrumPath != "" {
		if err := writeSpectrum(x, s, *windowName, *fftSize, *spectrumPath); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s\n", *spectrumPath)
	}
	if *wavPath != "" {
		if err := writeWAV(x, s.rate, *wavPath); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s\n", *wavPath)
	}
	if *play {
		if err := playWaveform(x, s.rate); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func buildWaveform(s settings) (t, x []float64, err error) {
	g := wave.NewGenerator(wave.WithSampleRate(s.rate), wave.WithSeed(s.seed))

	switch s.wave {
	case "sine":
		t, x = g.Sine(s.freq, s.duration, s.amp)
	case "noise":
		t, x = g.WhiteNoise(s.duration, s.amp)
	case "square":
		t, x = g.Square(s.freq, s.duration, s.amp)
	case "saw", "sawtooth":
		t, x = g.Sawtooth(s.freq, s.duration, s.amp)
	case "triangle":
		t, x = g.Triangle(s.freq, s.duration, s.amp)
	case "sweep":
		sweep := wave.LogSweep{
			StartFreq:  s.freq,
			EndFreq:    s.endFreq,
			Duration:   s.duration,
			Amplitude:  s.amp,
			SampleRate: s.rate,
		}
		return sweep.Generate()
	default:
		return nil, nil, fmt.Errorf("unknown waveform %q", s.wave)
	}
	return t, x, nil
}

func printStats(x []float64, rate float64) error {
	s := stats.Calculate(x)

	rows := []struct {
		label string
		value string
	}{
		{"Samples", fmt.Sprintf("%d", s.Length)},
		{"Duration", fmt.Sprintf("%.6f s", float64(s.Length)/rate)},
		{"Peak", fmt.Sprintf("%.6f", s.Peak)},
		{"Peak level", fmt.Sprintf("%.2f dBFS", s.PeakDB())},
		{"RMS", fmt.Sprintf("%.6f", s.RMS)},
		{"RMS level", fmt.Sprintf("%.2f dBFS", s.RMSDB())},
		{"Crest factor", fmt.Sprintf("%.4f", s.CrestFactor)},
		{"DC offset", fmt.Sprintf("%.6f", s.Mean)},
		{"Std dev", fmt.Sprintf("%.6f", s.StdDev)},
		{"Zero crossings", fmt.Sprintf("%d", s.ZeroCrossings)},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Metric\tValue\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printNote(freq float64) error {
	if freq <= 0 {
		return fmt.Errorf("frequency %g Hz has no pitch", freq)
	}
	midi, cents := pitch.NearestNote(freq)
	fmt.Printf("%.2f Hz -> MIDI %.2f, nearest %s (%+.1f cents)\n",
		freq, pitch.HzToMIDI(freq), pitch.NoteName(midi), cents)
	return nil
}

func parseWindowType(name string) (window.Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "none":
		return window.TypeRectangular, nil
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "flattop", "flat-top":
		return window.TypeFlatTop, nil
	default:
		return 0, fmt.Errorf("unknown window %q", name)
	}
}

func writeChart(t, x []float64, title, path string) error {
	fig, err := chart.NewLineChart(t, x, "time [s]", "amplitude", title)
	if err != nil {
		return err
	}
	defer fig.Close()
	return fig.Save(path)
}

func writeSpectrum(x []float64, s settings, windowName string, fftSize int, path string) error {
	wt, err := parseWindowType(windowName)
	if err != nil {
		return err
	}

	opts := []spectrum.AnalyzerOption{
		spectrum.WithSampleRate(s.rate),
		spectrum.WithWindow(wt),
	}
	if fftSize > 0 {
		opts = append(opts, spectrum.WithFFTSize(fftSize))
	}
	an := spectrum.NewAnalyzer(opts...)

	freqs, dbs, err := an.MagnitudeDB(x)
	if err != nil {
		return err
	}
	peak, err := an.PeakFrequency(x)
	if err != nil {
		return err
	}
	fmt.Printf("spectral peak: %.1f Hz\n", peak)

	fig, err := chart.NewLineChart(freqs, dbs, "frequency [Hz]", "magnitude [dBFS]",
		s.wave+" spectrum", chart.WithoutZeroLine())
	if err != nil {
		return err
	}
	defer fig.Close()
	return fig.Save(path)
}

func writeWAV(x []float64, rate float64, path string) error {
	p := playback.NewPlayer(playback.WithSampleRate(rate))
	clip := p.Play(x, playback.WithoutAutoplay())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := clip.WriteWAV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func playWaveform(x []float64, rate float64) error {
	p := playback.NewPlayer(playback.WithSampleRate(rate))
	defer p.Close()

	clip := p.Play(x)
	if err := p.Err(); err != nil {
		return err
	}
	fmt.Printf("playing %.2f s\n", clip.Duration().Seconds())
	clip.Wait()
	return nil
}
