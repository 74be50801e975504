package progress

import "time"

// Status indicates the state of a long-running step such as an export.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event is one line of live progress shown in the export window.
type Event struct {
	Message   string
	Status    Status
	Timestamp time.Time
	Metadata  map[string]string // optional: path, format, bytes
}

// Emitter receives progress events.
type Emitter interface {
	Emit(Event)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Event)

// Emit calls f.
func (f EmitterFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(Event) {})

// ChanEmitter emits events to a channel consumed by the UI loop.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; the exporter must not stall on a slow UI.
	}
}
