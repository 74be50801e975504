package ui

import "slices"

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  PanelID   // the currently focused panel
	Order    []PanelID // Tab order for focus rotation
	OnChange func(from, to PanelID)
}

// NewFocusManager creates a manager over the layout's focus order, focused on
// the first panel. onChange may be nil.
func NewFocusManager(l Layout, onChange func(from, to PanelID)) *FocusManager {
	f := &FocusManager{Order: l.FocusOrder(), OnChange: onChange}
	if len(f.Order) > 0 {
		f.move(f.Order[0])
	}
	return f
}

// Next advances focus to the next panel in order, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() PanelID {
	return f.step(1)
}

// Prev moves focus to the previous panel in order, wrapping at the start.
func (f *FocusManager) Prev() PanelID {
	return f.step(-1)
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id PanelID) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

// Focused reports whether id holds focus.
func (f *FocusManager) Focused(id PanelID) bool {
	return f.Current == id
}

func (f *FocusManager) step(delta int) PanelID {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to PanelID) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
