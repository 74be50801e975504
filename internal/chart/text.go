// Package chart renders the dashboard datasets, as styled text for the terminal
// and as PNG/SVG images via go-chart.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toybox/internal/dashboard"
)

const (
	barGlyph   = "█"
	pointGlyph = "●"
	minBarCell = 10
)

// Bars renders one horizontal bar per row, scaled to the largest value.
func Bars(rows []dashboard.TimeSeriesRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	labelW, valueW := 0, 0
	maxV := 0.0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Label))
		valueW = max(valueW, len(formatNumber(r.Value)))
		maxV = math.Max(maxV, r.Value)
	}
	cells := max(minBarCell, width-labelW-valueW-2)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(dashboard.BarColor))

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		n := 0
		if maxV > 0 {
			n = int(math.Round(r.Value / maxV * float64(cells)))
		}
		bar := style.Render(strings.Repeat(barGlyph, n)) + strings.Repeat(" ", cells-n)
		lines = append(lines, fmt.Sprintf("%-*s %s %*s", labelW, r.Label, bar, valueW, formatNumber(r.Value)))
	}
	return strings.Join(lines, "\n")
}

// Line plots GrowthPercent as points on a height-row grid with the month
// labels underneath. Each row is plotted exactly once.
func Line(rows []dashboard.TimeSeriesRow, height int) string {
	if len(rows) == 0 {
		return ""
	}
	height = max(height, 2)
	lo, hi := rows[0].GrowthPercent, rows[0].GrowthPercent
	for _, r := range rows {
		lo = math.Min(lo, r.GrowthPercent)
		hi = math.Max(hi, r.GrowthPercent)
	}
	level := func(v float64) int {
		if hi == lo {
			return 0
		}
		return int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
	}

	const colW = 5
	axisW := max(len(formatNumber(hi)), len(formatNumber(lo)))
	point := lipgloss.NewStyle().Foreground(lipgloss.Color(dashboard.LineColor)).Render(pointGlyph)

	var b strings.Builder
	for y := height - 1; y >= 0; y-- {
		label := ""
		switch y {
		case height - 1:
			label = formatNumber(hi)
		case 0:
			label = formatNumber(lo)
		}
		tick := "│"
		if label != "" {
			tick = "┤"
		}
		fmt.Fprintf(&b, "%*s %s", axisW, label, tick)
		for _, r := range rows {
			if level(r.GrowthPercent) == y {
				b.WriteString(strings.Repeat(" ", colW/2) + point + strings.Repeat(" ", colW-colW/2-1))
			} else {
				b.WriteString(strings.Repeat(" ", colW))
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%*s └%s\n", axisW, "", strings.Repeat("─", colW*len(rows)))
	fmt.Fprintf(&b, "%*s  ", axisW, "")
	for _, r := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(colW, lipgloss.Center, r.Label))
	}
	return strings.TrimRight(b.String(), " ")
}

// Share renders a stacked bar of width cells, one colored segment per row,
// followed by a legend. Segments always fill the bar exactly.
func Share(rows []dashboard.CategoryShareRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	width = max(width, minBarCell)
	total := 0.0
	for _, r := range rows {
		total += r.SharePercent
	}

	var bar strings.Builder
	used := 0
	for i, r := range rows {
		n := 0
		if total > 0 {
			n = int(math.Round(r.SharePercent / total * float64(width)))
		}
		if i == len(rows)-1 || used+n > width {
			n = width - used
		}
		used += n
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(r.ColorTag)).Render(strings.Repeat(barGlyph, n)))
	}

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Label))
	}
	legend := make([]string, 0, len(rows))
	for _, r := range rows {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(r.ColorTag)).Render(pointGlyph)
		legend = append(legend, fmt.Sprintf("%s %-*s %3s%%", dot, labelW, r.Label, formatNumber(r.SharePercent)))
	}
	return bar.String() + "\n\n" + strings.Join(legend, "\n")
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
