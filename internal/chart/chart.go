// Package chart owns the terminal line chart for a kinetics run.
//
// A [Chart] is created once with the fixed series configuration and then fed
// new runs through [Chart.SetData]; it never recomputes values itself.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/transester/internal/kinetics"
)

const (
	Title      = "Biofuel component evolution (mL)"
	XAxisTitle = "Time (h)"
	YAxisTitle = "Volume (mL)"
)

// SeriesConfig is the fixed presentation of one quantity.
type SeriesConfig struct {
	Quantity kinetics.Quantity
	Label    string
	Color    asciigraph.AnsiColor
}

// DefaultSeries is oil, ester and glycerin in that order.
var DefaultSeries = []SeriesConfig{
	{Quantity: kinetics.Oil, Label: kinetics.Oil.Label() + " Oil", Color: asciigraph.Red},
	{Quantity: kinetics.Ester, Label: kinetics.Ester.Label() + " Ester", Color: asciigraph.Blue},
	{Quantity: kinetics.Glycerin, Label: kinetics.Glycerin.Label() + " Glycerin", Color: asciigraph.Teal},
}

// Chart is a mutable plot handle. It is not safe for concurrent use; one
// owner feeds it data and renders it.
type Chart struct {
	series  []SeriesConfig
	times   []float64
	data    [][]float64
	updates int
}

func New() *Chart {
	series := make([]SeriesConfig, len(DefaultSeries))
	copy(series, DefaultSeries)
	return &Chart{
		series: series,
		data:   make([][]float64, len(series)),
	}
}

// SetData replaces the plotted arrays with those of res. The handle and its
// series configuration stay the same.
func (c *Chart) SetData(res *kinetics.Result) {
	c.times = res.Times
	for i, s := range c.series {
		c.data[i] = res.Values(s.Quantity)
	}
	c.updates++
}

// Updates counts SetData calls since New.
func (c *Chart) Updates() int { return c.updates }

func (c *Chart) Series() []SeriesConfig { return c.series }

func (c *Chart) Times() []float64 { return c.times }

// Data returns the plotted values for q, or nil before the first SetData.
func (c *Chart) Data(q kinetics.Quantity) []float64 {
	for i, s := range c.series {
		if s.Quantity == q {
			return c.data[i]
		}
	}
	return nil
}

func (c *Chart) Empty() bool { return len(c.times) == 0 }

// Render draws all three series against the shared time axis. The value
// axis always starts at zero.
func (c *Chart) Render(width, height int) string {
	return c.render(width, height, c.series)
}

// RenderQuantity draws only q, keeping the same axes and zero baseline.
func (c *Chart) RenderQuantity(q kinetics.Quantity, width, height int) string {
	for _, s := range c.series {
		if s.Quantity == q {
			return c.render(width, height, []SeriesConfig{s})
		}
	}
	return ""
}

func (c *Chart) render(width, height int, series []SeriesConfig) string {
	if c.Empty() {
		return "no data"
	}

	data := make([][]float64, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))
	legends := make([]string, 0, len(series))
	for _, s := range series {
		values := c.Data(s.Quantity)
		// asciigraph needs at least two points to draw a line.
		if len(values) == 1 {
			values = []float64{values[0], values[0]}
		}
		data = append(data, values)
		colors = append(colors, s.Color)
		legends = append(legends, s.Label)
	}

	lo, hi := c.YRange()
	graph := asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Caption(c.xAxisCaption()),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)

	var b strings.Builder
	b.WriteString(Title + "\n")
	b.WriteString(YAxisTitle + "\n")
	b.WriteString(graph)
	return b.String()
}

// YRange is the value axis extent: zero up to the largest plotted value.
func (c *Chart) YRange() (lo, hi float64) {
	for _, values := range c.data {
		if len(values) > 0 {
			hi = math.Max(hi, floats.Max(values))
		}
	}
	return 0, hi
}

func (c *Chart) xAxisCaption() string {
	first, last := c.times[0], c.times[len(c.times)-1]
	return fmt.Sprintf("%s: %g → %g", XAxisTitle, first, last)
}
