package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Styling defaults shared by every chart.
var (
	// DefaultLineColor is the accent blue used for data lines.
	DefaultLineColor = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}

	gridColor     = color.NRGBA{A: 77} // black at 30% opacity
	zeroLineColor = color.Color(color.Black)
)

const (
	// DefaultLineWidth is the data line width in points.
	DefaultLineWidth = 1.5
	// DefaultWidthInch and DefaultHeightInch size rendered figures.
	DefaultWidthInch  = 10.0
	DefaultHeightInch = 4.0

	zeroLineWidth = vg.Length(0.5)
)

type config struct {
	lineColor color.Color
	lineWidth vg.Length
	width     vg.Length
	height    vg.Length
	yLim      *[2]float64
	zeroLine  bool
}

func defaultChartConfig() config {
	return config{
		lineColor: DefaultLineColor,
		lineWidth: vg.Length(DefaultLineWidth),
		width:     DefaultWidthInch * vg.Inch,
		height:    DefaultHeightInch * vg.Inch,
		zeroLine:  true,
	}
}

// Option configures a single chart.
type Option func(*config)

// WithYLim fixes the y axis range instead of scaling it to the data.
func WithYLim(min, max float64) Option {
	return func(c *config) {
		c.yLim = &[2]float64{min, max}
	}
}

// WithoutZeroLine omits the horizontal reference line at y=0.
func WithoutZeroLine() Option {
	return func(c *config) {
		c.zeroLine = false
	}
}

// WithColor sets the data line color.
func WithColor(col color.Color) Option {
	return func(c *config) {
		if col != nil {
			c.lineColor = col
		}
	}
}

// WithLineWidth sets the data line width in points.
func WithLineWidth(points float64) Option {
	return func(c *config) {
		if points > 0 {
			c.lineWidth = vg.Length(points)
		}
	}
}

// WithSize sets the rendered figure size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(c *config) {
		if widthIn > 0 && heightIn > 0 {
			c.width = vg.Length(widthIn) * vg.Inch
			c.height = vg.Length(heightIn) * vg.Inch
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultChartConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
