package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/viewstate"
)

// counterButton is one of the counter's action buttons.
type counterButton struct {
	Label string
	Delta int
	Reset bool
}

// counterButtons in display order.
var counterButtons = []counterButton{
	{Label: "-1", Delta: -1},
	{Label: "-10", Delta: -10},
	{Label: "Reset", Reset: true},
	{Label: "+10", Delta: 10},
	{Label: "+1", Delta: 1},
}

// CounterView shows the click counter with its buttons and the animated
// progress bar.
type CounterView struct {
	ctrl    *viewstate.Controller
	bar     progress.Model
	cursor  int
	width   int
	focused bool
}

var (
	_ View      = (*CounterView)(nil)
	_ focusable = (*CounterView)(nil)
)

// NewCounterView creates the counter panel over ctrl. The cursor starts on Reset.
func NewCounterView(ctrl *viewstate.Controller) *CounterView {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40
	return &CounterView{ctrl: ctrl, bar: bar, cursor: 2}
}

// SetFocused implements focusable.
func (v *CounterView) SetFocused(f bool) { v.focused = f }

// Cursor returns the index of the highlighted button.
func (v *CounterView) Cursor() int { return v.cursor }

// Init implements View.
func (v *CounterView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.bar.Width = max(min(msg.Width-24, 60), 10)
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.cursor = max(v.cursor-1, 0)
		case "right", "l":
			v.cursor = min(v.cursor+1, len(counterButtons)-1)
		case "enter":
			v.press(counterButtons[v.cursor])
		case "-":
			v.ctrl.AdjustCounter(-1)
		case "+", "=":
			v.ctrl.AdjustCounter(1)
		case "[":
			v.ctrl.AdjustCounter(-10)
		case "]":
			v.ctrl.AdjustCounter(10)
		case "r":
			v.ctrl.ResetCounter()
		}
	}
	return v, nil
}

func (v *CounterView) press(b counterButton) {
	if b.Reset {
		v.ctrl.ResetCounter()
		return
	}
	v.ctrl.AdjustCounter(b.Delta)
}

// View implements View.
func (v *CounterView) View() string {
	st := v.ctrl.State()

	buttons := make([]string, 0, len(counterButtons))
	for i, b := range counterButtons {
		style := Styles.Button
		if b.Reset {
			style = Styles.ButtonSecondary
		}
		if v.focused && i == v.cursor {
			style = Styles.ButtonActive
		}
		buttons = append(buttons, style.Render(b.Label))
	}

	counter := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.Counter.Render(fmt.Sprintf("%d", st.Counter)),
		"  ",
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)
	label := fmt.Sprintf("Progress Demo %d%%", st.Progress)
	bar := v.bar.ViewAs(float64(st.Progress) / viewstate.ProgressCeiling)

	body := counter + "\n" + Styles.Muted.Render(label) + "\n" + bar + "\n" +
		Styles.Hint.Render("←/→ choose  enter press  - + [ ] r")
	return panelFrame("Interactive Counter", v.focused, v.width, body)
}
