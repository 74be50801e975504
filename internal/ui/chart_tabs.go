package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/chart"
	"toybox/internal/dashboard"
)

const lineChartHeight = 6

// ChartTabsView switches between the bar, line and pie charts. The active
// tab is presentation state only; the datasets never change.
type ChartTabsView struct {
	panels  []dashboard.ChartPanel
	active  int
	width   int
	focused bool
}

var (
	_ View      = (*ChartTabsView)(nil)
	_ focusable = (*ChartTabsView)(nil)
)

// NewChartTabsView creates the charts panel with the bar chart active.
func NewChartTabsView() *ChartTabsView {
	return &ChartTabsView{panels: dashboard.ChartPanels()}
}

// SetFocused implements focusable.
func (v *ChartTabsView) SetFocused(f bool) { v.focused = f }

// Active returns the kind of the visible chart.
func (v *ChartTabsView) Active() dashboard.ChartKind {
	return v.panels[v.active].Kind
}

// Init implements View.
func (v *ChartTabsView) Init() tea.Cmd { return nil }

// Update implements View. left/right wrap around; b, l and p jump to a tab.
// h is not bound because l already selects the line chart.
func (v *ChartTabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		n := len(v.panels)
		switch msg.String() {
		case "left":
			v.active = (v.active - 1 + n) % n
		case "right":
			v.active = (v.active + 1) % n
		case "b", "1":
			v.show(dashboard.ChartBar)
		case "l", "2":
			v.show(dashboard.ChartLine)
		case "p", "3":
			v.show(dashboard.ChartPie)
		}
	}
	return v, nil
}

func (v *ChartTabsView) show(k dashboard.ChartKind) {
	for i, p := range v.panels {
		if p.Kind == k {
			v.active = i
			return
		}
	}
}

// View implements View.
func (v *ChartTabsView) View() string {
	tabs := make([]string, 0, len(v.panels))
	for i, p := range v.panels {
		style := Styles.Tab
		if i == v.active {
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(p.Tab))
	}
	p := v.panels[v.active]

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
	b.WriteString("\n")
	b.WriteString(Styles.PanelTitle.Render(p.Title) + "\n")
	b.WriteString(Styles.Muted.Render(p.Description) + "\n\n")
	b.WriteString(renderChart(p.Kind, v.chartWidth()) + "\n")
	b.WriteString(Styles.Hint.Render("←/→ switch  b/l/p or 1-3 jump"))
	return panelFrame("Charts", v.focused, v.width, b.String())
}

func (v *ChartTabsView) chartWidth() int {
	if v.width <= 0 {
		return 60
	}
	return max(v.width-6, 20)
}

func renderChart(k dashboard.ChartKind, width int) string {
	switch k {
	case dashboard.ChartLine:
		return chart.Line(dashboard.TimeSeries(), lineChartHeight)
	case dashboard.ChartPie:
		return chart.Share(dashboard.CategoryShares(), width)
	default:
		return chart.Bars(dashboard.TimeSeries(), width)
	}
}

// renderFeatures draws the showcase row under the panels.
func renderFeatures(width int) string {
	features := dashboard.Features()
	cardWidth := 0
	if width > 0 {
		cardWidth = max(width/len(features)-Styles.Card.GetHorizontalFrameSize(), 16)
	}
	cards := make([]string, 0, len(features))
	for _, f := range features {
		style := Styles.Card
		if cardWidth > 0 {
			style = style.Width(cardWidth)
		}
		body := Styles.PanelTitle.Render(f.Icon+" "+f.Title) + "\n" + Styles.Muted.Render(f.Description)
		if len(f.Badges) > 0 {
			badges := make([]string, 0, len(f.Badges))
			for _, name := range f.Badges {
				badges = append(badges, badgeStyle(name).Render(name))
			}
			body += "\n" + strings.Join(badges, " ")
		}
		cards = append(cards, style.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func badgeStyle(variant string) lipgloss.Style {
	switch variant {
	case "Primary":
		return Styles.Badge.Foreground(lipgloss.Color(ColorHighlight))
	case "Outline":
		return Styles.BadgeOutline
	default:
		return Styles.Badge
	}
}
