package dashboard

import (
	"fmt"
	"strings"
)

// ChartKind selects one of the chart tabs.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartLine
	ChartPie
)

func (k ChartKind) String() string {
	switch k {
	case ChartBar:
		return "bar"
	case ChartLine:
		return "line"
	case ChartPie:
		return "pie"
	default:
		return "unknown"
	}
}

// ParseChartKind accepts "bar", "line" or "pie".
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(s) {
	case "bar":
		return ChartBar, nil
	case "line":
		return ChartLine, nil
	case "pie":
		return ChartPie, nil
	}
	return 0, fmt.Errorf("unknown chart kind %q", s)
}

// ChartPanel describes the card shown under a chart tab.
type ChartPanel struct {
	Kind        ChartKind
	Tab         string
	Title       string
	Description string
}

var chartPanels = []ChartPanel{
	{Kind: ChartBar, Tab: "Bar Chart", Title: "Monthly Revenue", Description: "Revenue data for the past 6 months"},
	{Kind: ChartLine, Tab: "Line Chart", Title: "Growth Trend", Description: "Growth percentage over time"},
	{Kind: ChartPie, Tab: "Pie Chart", Title: "Technology Distribution", Description: "Framework usage across projects"},
}

// ChartPanels returns the tabs in display order. ChartBar is the default tab.
func ChartPanels() []ChartPanel {
	out := make([]ChartPanel, len(chartPanels))
	copy(out, chartPanels)
	return out
}

// Feature is a static showcase card at the bottom of the dashboard.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Badges      []string
}

// Features returns the showcase cards.
func Features() []Feature {
	return []Feature{
		{
			Icon:        "🎨",
			Title:       "UI Components",
			Description: "Built with bubbles and lipgloss for consistent design",
			Badges:      []string{"Primary", "Secondary", "Outline"},
		},
		{
			Icon:        "📊",
			Title:       "Data Visualization",
			Description: "Terminal charts, exportable as PNG or SVG",
		},
		{
			Icon:        "⚡",
			Title:       "Reactivity",
			Description: "Real-time updates and interactive elements",
		},
	}
}
