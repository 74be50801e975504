package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/dashboard"
	"toybox/internal/viewstate"
)

// MetricCardsView shows the four metric cards. The selected card gets the
// active border; selection lives in the controller.
type MetricCardsView struct {
	ctrl    *viewstate.Controller
	width   int
	focused bool
}

var (
	_ View      = (*MetricCardsView)(nil)
	_ focusable = (*MetricCardsView)(nil)
)

// NewMetricCardsView creates the cards panel over ctrl.
func NewMetricCardsView(ctrl *viewstate.Controller) *MetricCardsView {
	return &MetricCardsView{ctrl: ctrl}
}

// SetFocused implements focusable.
func (v *MetricCardsView) SetFocused(f bool) { v.focused = f }

// Init implements View.
func (v *MetricCardsView) Init() tea.Cmd { return nil }

// Update implements View. left/right (h/l) move the selection and clamp at
// the ends; 1-4 select a card directly.
func (v *MetricCardsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		keys := dashboard.MetricKeys()
		idx := v.ctrl.State().Metric.Index()
		switch s := msg.String(); s {
		case "left", "h":
			if idx > 0 {
				v.ctrl.SelectMetric(keys[idx-1])
			}
		case "right", "l":
			if idx < len(keys)-1 {
				v.ctrl.SelectMetric(keys[idx+1])
			}
		case "1", "2", "3", "4":
			n, _ := strconv.Atoi(s)
			v.ctrl.SelectMetric(keys[n-1])
		}
	}
	return v, nil
}

// View implements View.
func (v *MetricCardsView) View() string {
	selected := v.ctrl.State().Metric
	metrics := dashboard.Metrics()

	cardWidth := 0
	if v.width > 0 {
		// panel border and padding take 4 columns
		cardWidth = max((v.width-4)/len(metrics)-Styles.Card.GetHorizontalFrameSize(), 12)
	}

	cards := make([]string, 0, len(metrics))
	for i, m := range metrics {
		cards = append(cards, renderMetricCard(m, i+1, m.Key == selected, cardWidth))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return panelFrame("Metrics", v.focused, v.width, body)
}

func renderMetricCard(m dashboard.Metric, n int, selected bool, width int) string {
	style := Styles.Card
	if selected {
		style = Styles.CardActive
	}
	if width > 0 {
		style = style.Width(width)
	}
	badge := Styles.Badge.Foreground(EmphasisColor(m.Emphasis)).Render(m.Change)
	title := Styles.Muted.Render(strconv.Itoa(n) + " " + m.Key.Title())
	return style.Render(title + "\n" + Styles.Value.Render(m.Value) + "\n" + badge)
}
