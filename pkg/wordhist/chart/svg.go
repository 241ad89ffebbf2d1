package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/net/html"
)

const (
	defaultSVGWidth  = 1024
	defaultSVGHeight = 480
	defaultFill      = "4c72b0"
)

// SVGRenderer writes a bar chart as an SVG document through go-chart. X labels
// are rotated to read vertically; the y axis carries one tick per integer value.
// go-chart writes text verbatim, so labels are escaped here.
type SVGRenderer struct {
	Width  int
	Height int
	Fill   string // bar colour as hex, default #4c72b0
}

// Render implements Renderer.
func (r *SVGRenderer) Render(w io.Writer, c Chart) error {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultSVGWidth
	}
	if height <= 0 {
		height = defaultSVGHeight
	}
	fill := strings.TrimPrefix(r.Fill, "#")
	if fill == "" {
		fill = defaultFill
	}
	barStyle := gochart.Style{
		FillColor:   drawing.ColorFromHex(fill),
		StrokeColor: drawing.ColorFromHex(fill),
		StrokeWidth: 1,
	}

	bars := make([]gochart.Value, len(c.Values))
	for i, v := range c.Values {
		label := ""
		if i < len(c.Labels) {
			label = html.EscapeString(c.Labels[i])
		}
		bars[i] = gochart.Value{Label: label, Value: float64(v), Style: barStyle}
	}

	ticks := make([]gochart.Tick, 0, len(c.YTicks))
	for _, v := range c.YTicks {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}

	max := c.Max()
	if max <= 0 {
		max = 1
	}

	bc := gochart.BarChart{
		Title:    html.EscapeString(c.Title),
		Width:    width,
		Height:   height,
		BarWidth: barWidth(width, len(bars)),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 128},
		},
		XAxis: gochart.Style{
			TextRotationDegrees: 90,
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(max)},
			Ticks: ticks,
		},
		Bars: bars,
	}

	if err := bc.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}

// barWidth shrinks bars so that many terms still fit the canvas.
func barWidth(width, n int) int {
	if n == 0 {
		return 0
	}
	bw := width / (n * 2)
	if bw > 50 {
		bw = 50
	}
	if bw < 4 {
		bw = 4
	}
	return bw
}
