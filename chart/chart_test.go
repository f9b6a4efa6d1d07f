package chart

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestNewLineChartYLim(t *testing.T) {
	CloseAll()

	f, err := NewLineChart(
		[]float64{0, 1, 2}, []float64{0, 1, 0},
		"time [s]", "amplitude", "ylim",
		WithYLim(-2, 2),
	)
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	min, max := f.YLim()
	if min != -2 || max != 2 {
		t.Fatalf("YLim() = %v, %v, want -2, 2", min, max)
	}
}

func TestNewLineChartLengthMismatch(t *testing.T) {
	CloseAll()

	_, err := NewLineChart([]float64{0, 1}, []float64{0}, "", "", "")
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want %v", err, ErrLengthMismatch)
	}
	if Open() != 0 {
		t.Fatalf("Open() = %d after failed chart, want 0", Open())
	}
}

func TestNewLineChartDefaults(t *testing.T) {
	CloseAll()

	f, err := NewLineChart(
		[]float64{0, 1, 2, 3}, []float64{-0.5, 0.5, -0.5, 0.5},
		"", "", "",
	)
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	w, h := f.Size()
	if w != 10 || h != 4 {
		t.Fatalf("Size() = %v x %v, want 10 x 4", w, h)
	}

	min, max := f.YLim()
	if min != -0.5 || max != 0.5 {
		t.Fatalf("autoscaled YLim() = %v, %v, want -0.5, 0.5", min, max)
	}
}

func TestZeroLineDoesNotStretchAxis(t *testing.T) {
	CloseAll()

	f, err := NewLineChart(
		[]float64{0, 1, 2}, []float64{1, 2, 1.5},
		"", "", "",
	)
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	min, max := f.YLim()
	if min != 1 || max != 2 {
		t.Fatalf("YLim() = %v, %v, want 1, 2", min, max)
	}
}

func TestRegistry(t *testing.T) {
	CloseAll()
	if Open() != 0 {
		t.Fatalf("Open() = %d after CloseAll, want 0", Open())
	}

	f1, err := NewLineChart([]float64{0, 1}, []float64{0, 1}, "", "", "first")
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}
	f2, err := NewLineChart([]float64{0, 1}, []float64{1, 0}, "", "", "second")
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	if Open() != 2 {
		t.Fatalf("Open() = %d, want 2", Open())
	}

	figs := Figures()
	if len(figs) != 2 || figs[0] != f1 || figs[1] != f2 {
		t.Fatal("Figures() not in creation order")
	}

	f1.Close()
	if Open() != 1 {
		t.Fatalf("Open() = %d after Close, want 1", Open())
	}
	if !f1.Closed() || f2.Closed() {
		t.Fatal("Closed() flags wrong after single Close")
	}

	f1.Close() // no-op
	if Open() != 1 {
		t.Fatalf("Open() = %d after double Close, want 1", Open())
	}

	CloseAll()
	if Open() != 0 || !f2.Closed() {
		t.Fatal("CloseAll did not close remaining figures")
	}
}

func TestStyleOptions(t *testing.T) {
	CloseAll()

	red := color.RGBA{R: 0xFF, A: 0xFF}
	f, err := NewLineChart(
		[]float64{0, 1}, []float64{0, 1},
		"", "", "styled",
		WithColor(red), WithLineWidth(3), WithSize(6, 3), WithoutZeroLine(),
	)
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	w, h := f.Size()
	if w != 6 || h != 3 {
		t.Fatalf("Size() = %v x %v, want 6 x 3", w, h)
	}
}

func TestWritePNG(t *testing.T) {
	CloseAll()

	f, err := NewLineChart([]float64{0, 1, 2}, []float64{0, 1, 0}, "x", "y", "png")
	if err != nil {
		t.Fatalf("NewLineChart() error = %v", err)
	}

	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("empty PNG output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output does not start with PNG signature")
	}
}
