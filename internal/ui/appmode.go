package ui

// AppMode represents what currently receives input: the dashboard panels or an overlay.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeOverlay
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeOverlay:
		return "Overlay"
	default:
		return "Unknown"
	}
}
