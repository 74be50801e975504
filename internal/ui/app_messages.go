package ui

// QuitMsg stops the tick, then quits the program (q, ctrl+c, SPC q).
type QuitMsg struct{}

// ShowAboutMsg opens the metadata overlay (SPC i).
type ShowAboutMsg struct{}

// StartExportMsg writes the chart images and opens the export window (SPC e).
type StartExportMsg struct{}

// ResetCounterMsg zeroes the counter from any panel (SPC c r).
type ResetCounterMsg struct{}

// DismissModalMsg is sent when user closes an overlay (Esc).
type DismissModalMsg struct{}

// exportDoneMsg is sent once the exporter returns.
type exportDoneMsg struct {
	Err error
}
