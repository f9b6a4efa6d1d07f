// Package chart renders waveform line charts with a shared house style: an
// accent-colored data line, a light grid, and a thin reference line at y=0.
//
// Every chart created through the package is tracked in a registry until it
// is closed, mirroring how a notebook keeps its figures alive until they
// are cleared. Interactive redraw loops use [CloseAll] to discard stale
// figures before drawing fresh ones.
package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure is a rendered chart together with its output size. The embedded
// Plot remains accessible for callers that need axis styling beyond the
// provided options.
type Figure struct {
	Plot *plot.Plot

	width  vg.Length
	height vg.Length
	closed bool
}

// NewLineChart plots y against x as a single styled line and registers the
// resulting figure. The slices must have the same length.
func NewLineChart(x, y []float64, xlabel, ylabel, title string, opts ...Option) (*Figure, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	cfg := applyOptions(opts...)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: line: %w", err)
	}

	line.Color = cfg.lineColor
	line.Width = cfg.lineWidth
	p.Add(line)

	if cfg.zeroLine && len(x) > 0 {
		addZeroLine(p, x)
	}

	if cfg.yLim != nil {
		p.Y.Min = cfg.yLim[0]
		p.Y.Max = cfg.yLim[1]
	}

	f := &Figure{Plot: p, width: cfg.width, height: cfg.height}
	register(f)

	return f, nil
}

// addZeroLine draws a thin black line at y=0 across the data's x range
// without letting it stretch the autoscaled y axis.
func addZeroLine(p *plot.Plot, x []float64) {
	minX, maxX := x[0], x[0]
	for _, v := range x[1:] {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: minX, Y: 0}, {X: maxX, Y: 0}})
	if err != nil {
		return
	}

	zero.Color = zeroLineColor
	zero.Width = zeroLineWidth

	yMin, yMax := p.Y.Min, p.Y.Max
	p.Add(zero)
	p.Y.Min, p.Y.Max = yMin, yMax
}

// YLim returns the y axis range.
func (f *Figure) YLim() (min, max float64) {
	return f.Plot.Y.Min, f.Plot.Y.Max
}

// Size returns the output size in inches.
func (f *Figure) Size() (widthIn, heightIn float64) {
	return float64(f.width / vg.Inch), float64(f.height / vg.Inch)
}

// Save renders the figure to a file. The format follows the extension
// (png, pdf, svg, and the other formats the plot backend supports).
func (f *Figure) Save(path string) error {
	if err := f.Plot.Save(f.width, f.height, path); err != nil {
		return fmt.Errorf("chart: save: %w", err)
	}

	return nil
}

// WritePNG renders the figure as PNG to w.
func (f *Figure) WritePNG(w io.Writer) error {
	wt, err := f.Plot.WriterTo(f.width, f.height, "png")
	if err != nil {
		return fmt.Errorf("chart: render png: %w", err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: write png: %w", err)
	}

	return nil
}
