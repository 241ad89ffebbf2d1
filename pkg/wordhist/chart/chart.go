package chart

import (
	"fmt"
	"io"

	"github.com/cognicore/wordhist/pkg/wordhist/analytics"
	"github.com/cognicore/wordhist/pkg/wordhist/internalerr"
)

// Chart is the data behind a frequency bar chart: one bar per term, with
// integer y ticks from 1 to the highest frequency.
type Chart struct {
	Title  string
	Labels []string
	Values []int
	YTicks []int
}

// New builds a chart from records, preserving their order.
// At least one record is required.
func New(records []analytics.WordRecord) (Chart, error) {
	if len(records) == 0 {
		return Chart{}, fmt.Errorf("build chart: %w", internalerr.ErrEmptyInput)
	}

	c := Chart{
		Labels: make([]string, len(records)),
		Values: make([]int, len(records)),
	}
	for i, r := range records {
		c.Labels[i] = r.Term
		c.Values[i] = r.Frequency
	}

	max := c.Max()
	c.YTicks = make([]int, 0, max)
	for v := 1; v <= max; v++ {
		c.YTicks = append(c.YTicks, v)
	}
	return c, nil
}

// Max returns the highest value in the chart, or 0 when it is empty.
func (c Chart) Max() int {
	max := 0
	for _, v := range c.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Renderer draws a chart to w.
type Renderer interface {
	Render(w io.Writer, c Chart) error
}

// Supported output formats
const (
	FormatText = "text"
	FormatSVG  = "svg"
)

// ForFormat returns the renderer for a named output format.
func ForFormat(format string, noColor bool) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TextRenderer{NoColor: noColor}, nil
	case FormatSVG:
		return &SVGRenderer{}, nil
	default:
		return nil, fmt.Errorf("chart format %q: %w", format, internalerr.ErrInvalidConfig)
	}
}
