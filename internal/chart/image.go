package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"toybox/internal/dashboard"
)

// Format is an image output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrUnknownFormat is returned for formats other than png and svg.
var ErrUnknownFormat = errors.New("unknown image format")

// Image dimensions in pixels.
const (
	ImageWidth  = 800
	ImageHeight = 400
)

// ParseFormat accepts "png" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) provider() (gochart.RendererProvider, error) {
	switch f {
	case FormatPNG:
		return gochart.PNG, nil
	case FormatSVG:
		return gochart.SVG, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Render writes the chart of the given kind using the static datasets.
func Render(w io.Writer, kind dashboard.ChartKind, f Format) error {
	switch kind {
	case dashboard.ChartBar:
		return RenderBar(w, f, dashboard.TimeSeries())
	case dashboard.ChartLine:
		return RenderLine(w, f, dashboard.TimeSeries())
	case dashboard.ChartPie:
		return RenderPie(w, f, dashboard.CategoryShares())
	}
	return fmt.Errorf("render: unknown chart kind %d", int(kind))
}

// RenderBar draws the monthly values as a bar chart.
func RenderBar(w io.Writer, f Format, rows []dashboard.TimeSeriesRow) error {
	rp, err := f.provider()
	if err != nil {
		return err
	}
	fill := hexColor(dashboard.BarColor)
	bars := make([]gochart.Value, len(rows))
	for i, r := range rows {
		bars[i] = gochart.Value{
			Label: r.Label,
			Value: r.Value,
			Style: gochart.Style{FillColor: fill, StrokeColor: fill},
		}
	}
	ch := gochart.BarChart{
		Title:      "Monthly Revenue",
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      ImageWidth,
		Height:     ImageHeight,
		BarWidth:   60,
		Bars:       bars,
	}
	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// RenderLine draws GrowthPercent over the months.
func RenderLine(w io.Writer, f Format, rows []dashboard.TimeSeriesRow) error {
	rp, err := f.provider()
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return fmt.Errorf("render line chart: need at least 2 rows, got %d", len(rows))
	}
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	ticks := make([]gochart.Tick, len(rows))
	for i, r := range rows {
		xs[i] = float64(i + 1)
		ys[i] = r.GrowthPercent
		ticks[i] = gochart.Tick{Value: xs[i], Label: r.Label}
	}
	stroke := hexColor(dashboard.LineColor)
	ch := gochart.Chart{
		Title:      "Growth Trend",
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      ImageWidth,
		Height:     ImageHeight,
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0.5, Max: float64(len(rows)) + 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{Name: "growth %"},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "growth",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: stroke,
					StrokeWidth: 2,
					DotColor:    stroke,
					DotWidth:    4,
				},
			},
		},
	}
	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}

// RenderPie draws the category shares, one slice per row in the row's color.
func RenderPie(w io.Writer, f Format, rows []dashboard.CategoryShareRow) error {
	rp, err := f.provider()
	if err != nil {
		return err
	}
	values := make([]gochart.Value, len(rows))
	for i, r := range rows {
		c := hexColor(r.ColorTag)
		values[i] = gochart.Value{
			Label: fmt.Sprintf("%s %s%%", r.Label, formatNumber(r.SharePercent)),
			Value: r.SharePercent,
			Style: gochart.Style{FillColor: c, StrokeColor: drawing.ColorWhite},
		}
	}
	ch := gochart.PieChart{
		Title:  "Technology Distribution",
		Width:  ImageHeight,
		Height: ImageHeight,
		Values: values,
	}
	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

func hexColor(tag string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(tag, "#"))
}
