package ui

// PanelID names a focusable dashboard panel.
type PanelID string

const (
	PanelMetrics PanelID = "metrics"
	PanelCounter PanelID = "counter"
	PanelCharts  PanelID = "charts"
)

// Panel hosts a View within a layout.
type Panel struct {
	ID    PanelID
	Title string
	View  View
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []PanelID // Tab order for focus
}
