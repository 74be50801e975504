package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a panel or overlay with its own update and render.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// focusable is implemented by panel views that render differently when focused.
type focusable interface {
	SetFocused(bool)
}
