package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"toybox/internal/dashboard"
	"toybox/internal/viewstate"
)

// DashboardView stacks the header, the three focusable panels and the
// feature row. Keys go to the focused panel; tab and shift+tab rotate focus.
type DashboardView struct {
	Metrics *MetricCardsView
	Counter *CounterView
	Charts  *ChartTabsView
	Focus   *FocusManager

	width int
}

var (
	_ View   = (*DashboardView)(nil)
	_ Layout = (*DashboardView)(nil)
)

// NewDashboardView creates the dashboard over ctrl with the metrics panel focused.
func NewDashboardView(ctrl *viewstate.Controller) *DashboardView {
	d := &DashboardView{
		Metrics: NewMetricCardsView(ctrl),
		Counter: NewCounterView(ctrl),
		Charts:  NewChartTabsView(),
	}
	d.Focus = NewFocusManager(d, d.onFocusChange)
	return d
}

// Panels implements Layout.
func (d *DashboardView) Panels() []Panel {
	return []Panel{
		{ID: PanelMetrics, Title: "Metrics", View: d.Metrics},
		{ID: PanelCounter, Title: "Interactive Counter", View: d.Counter},
		{ID: PanelCharts, Title: "Charts", View: d.Charts},
	}
}

// FocusOrder implements Layout.
func (d *DashboardView) FocusOrder() []PanelID {
	return []PanelID{PanelMetrics, PanelCounter, PanelCharts}
}

func (d *DashboardView) onFocusChange(from, to PanelID) {
	for _, p := range d.Panels() {
		if f, ok := p.View.(focusable); ok {
			f.SetFocused(p.ID == to)
		}
	}
}

func (d *DashboardView) panel(id PanelID) View {
	for _, p := range d.Panels() {
		if p.ID == id {
			return p.View
		}
	}
	return nil
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	for _, p := range d.Panels() {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		for _, p := range d.Panels() {
			p.View.Update(msg)
		}
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			d.Focus.Next()
			return d, nil
		case "shift+tab":
			d.Focus.Prev()
			return d, nil
		}
		if v := d.panel(d.Focus.Current); v != nil {
			_, cmd := v.Update(msg)
			return d, cmd
		}
	}
	return d, nil
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(dashboard.Title) + "\n")
	b.WriteString(Styles.Subtitle.Render(dashboard.Subtitle) + "\n")
	b.WriteString(Styles.Hint.Render("tab switch panel  SPC commands  q quit") + "\n\n")
	b.WriteString(d.Metrics.View() + "\n")
	b.WriteString(d.Counter.View() + "\n")
	b.WriteString(d.Charts.View() + "\n")
	b.WriteString(renderFeatures(d.width))
	return b.String()
}
