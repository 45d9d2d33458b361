package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"

	"github.com/five82/pinmon/internal/window"
)

const (
	valueUnit      = "mΩ"
	minChartWidth  = 8
	minChartHeight = 2
)

// chartSeries returns the series handed to the canvas. The canvas scales to
// its data, so flat lines at maxValue and zero come first to pin the
// vertical range; the clamped samples come last and are drawn on top.
func chartSeries(values []float64, maxValue float64) [][]float64 {
	if len(values) == 0 {
		return nil
	}
	n := len(values)
	if n == 1 {
		n = 2 // a single sample is drawn as a flat segment
	}

	ceiling := make([]float64, n)
	floor := make([]float64, n)
	data := make([]float64, n)
	for i := range data {
		ceiling[i] = maxValue
		data[i] = clamp(values[min(i, len(values)-1)], 0, maxValue)
	}
	return [][]float64{ceiling, floor, data}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lineColors picks the sample and guide colors for the terminal background.
func lineColors() (sample, guide plot.Color) {
	if lipgloss.HasDarkBackground() {
		return plot.Red, plot.DimGray
	}
	return plot.Black, plot.LightGray
}

// renderChart draws values as a braille line chart of w×h cells.
func renderChart(values []float64, maxValue float64, w, h int) string {
	series := chartSeries(values, maxValue)
	if series == nil {
		return ""
	}
	sample, guide := lineColors()

	c := plot.NewCanvas(max(w, minChartWidth), max(h, minChartHeight))
	c.NumDataPoints = len(series[0])
	c.ShowAxis = false
	c.LineColors = []plot.Color{guide, guide, sample}
	c.Fill(series)
	return c.String()
}

// panelStats summarises the visible samples.
func panelStats(v window.View) string {
	if v.Empty() {
		return "no samples"
	}
	s := v.Stats()
	return fmt.Sprintf("last %.2f  min %.2f  max %.2f  mean %.2f %s", s.Last, s.Min, s.Max, s.Mean, valueUnit)
}

// renderPanel renders one category: title, stats and chart, or the empty
// placeholder when the category has no samples yet.
func (m Model) renderPanel(v window.View, idx int, maxValue float64, width, height int) string {
	styles := m.theme.Styles()
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.CategoryColor(idx))).Bold(true)

	inner := max(width-4, minChartWidth) // border + padding
	first, last := v.Range()

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Category.Label))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("TestCount range of %d", v.Size)))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("[%d–%d]  0–%g %s", first, last, maxValue, valueUnit)))
	b.WriteString("\n")

	chartHeight := max(height-4, minChartHeight) // border + title + stats
	if v.Empty() {
		placeholder := styles.MutedText.Render("No data for " + v.Category.Label)
		b.WriteString(lipgloss.Place(inner, chartHeight, lipgloss.Center, lipgloss.Center, placeholder))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(panelStats(v)))
	} else {
		b.WriteString(renderChart(v.Values, maxValue, inner, chartHeight))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(panelStats(v)))
	}

	return styles.Panel.Width(max(width-2, minChartWidth)).Render(b.String())
}
