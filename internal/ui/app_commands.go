package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"toybox/internal/progress"
)

// exportEventBuffer bounds the events queued between the exporter and the UI.
// An export emits one running event, one per chart and one for the metadata,
// so the buffer holds a whole export even if the UI reads nothing until it ends.
// ChanEmitter drops anything beyond it.
const exportEventBuffer = 32

// Exporter writes the dashboard charts somewhere, reporting progress to emit.
type Exporter interface {
	Export(ctx context.Context, emit progress.Emitter) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, emit progress.Emitter) error

// Export calls f.
func (f ExporterFunc) Export(ctx context.Context, emit progress.Emitter) error {
	return f(ctx, emit)
}

// exportStream carries events from a running export to the event loop.
// err is written before events is closed and read only after.
type exportStream struct {
	events chan progress.Event
	err    error
}

func newExportStream() *exportStream {
	return &exportStream{events: make(chan progress.Event, exportEventBuffer)}
}

// runExportCmd runs exp in a command goroutine and closes the stream when it returns.
func runExportCmd(ctx context.Context, exp Exporter, s *exportStream) tea.Cmd {
	return func() tea.Msg {
		s.err = exp.Export(ctx, &progress.ChanEmitter{Ch: s.events})
		close(s.events)
		return nil
	}
}

// waitForExportEvent returns the next progress.Event, or exportDoneMsg once
// the stream is closed.
func waitForExportEvent(s *exportStream) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-s.events
		if !ok {
			return exportDoneMsg{Err: s.err}
		}
		return ev
	}
}
