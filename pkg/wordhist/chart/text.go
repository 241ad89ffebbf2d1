package chart

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	defaultBarWidth = 3
	defaultGap      = 1
	barGlyph        = "█"
)

// TextRenderer draws a vertical bar chart with plain characters. Labels are
// written top to bottom under their bar, one rune per line.
type TextRenderer struct {
	BarWidth int // columns per bar (default 3)
	Gap      int // columns between bars (default 1)
	NoColor  bool
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, c Chart) error {
	width := r.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	gap := r.Gap
	if gap <= 0 {
		gap = defaultGap
	}

	bar := color.New(color.FgCyan)
	if r.NoColor {
		bar.DisableColor()
	}

	bw := bufio.NewWriter(w)
	axisWidth := len(strconv.Itoa(c.Max()))
	filled := strings.Repeat(barGlyph, width)
	empty := strings.Repeat(" ", width)
	spacer := strings.Repeat(" ", gap)

	if c.Title != "" {
		fmt.Fprintln(bw, c.Title)
	}

	for i := len(c.YTicks) - 1; i >= 0; i-- {
		tick := c.YTicks[i]
		var line strings.Builder
		fmt.Fprintf(&line, "%*d | ", axisWidth, tick)
		for j, v := range c.Values {
			if j > 0 {
				line.WriteString(spacer)
			}
			if v >= tick {
				line.WriteString(bar.Sprint(filled))
			} else {
				line.WriteString(empty)
			}
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}

	span := len(c.Values)*width + (len(c.Values)-1)*gap
	fmt.Fprintf(bw, "%s +%s\n", strings.Repeat(" ", axisWidth), strings.Repeat("-", span+1))

	labels := make([][]rune, len(c.Labels))
	rows := 0
	for i, l := range c.Labels {
		labels[i] = []rune(l)
		if len(labels[i]) > rows {
			rows = len(labels[i])
		}
	}

	offset := width / 2
	indent := strings.Repeat(" ", axisWidth+3)
	for row := 0; row < rows; row++ {
		var line strings.Builder
		line.WriteString(indent)
		for j, l := range labels {
			if j > 0 {
				line.WriteString(spacer)
			}
			cell := []rune(empty)
			if row < len(l) {
				cell[offset] = l[row]
			}
			line.WriteString(string(cell))
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}

	return bw.Flush()
}
