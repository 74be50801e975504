package ui

import (
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/dashboard"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBorder    = "238" // Dark gray - for unfocused borders
	ColorCounter   = "33"  // Blue - the counter value
)

// emphasisColors maps metric emphasis tags to terminal colors.
var emphasisColors = map[string]string{
	dashboard.EmphasisGreen:  "34",
	dashboard.EmphasisBlue:   "33",
	dashboard.EmphasisPurple: "135",
	dashboard.EmphasisOrange: "208",
}

// EmphasisColor returns the color for an emphasis tag, or ColorText.
func EmphasisColor(tag string) lipgloss.Color {
	if c, ok := emphasisColors[tag]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(ColorText)
}

// Styles contains shared style definitions used across panels and overlays.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - for main titles
	Subtitle lipgloss.Style
	Error    lipgloss.Style

	Box        lipgloss.Style // Overlay box
	Card       lipgloss.Style // Unselected card
	CardActive lipgloss.Style // Selected metric card (the "ring")
	Panel      lipgloss.Style // Unfocused panel frame
	PanelFocus lipgloss.Style // Focused panel frame

	PanelTitle      lipgloss.Style
	PanelTitleFocus lipgloss.Style
	Value           lipgloss.Style // Metric value
	Counter         lipgloss.Style // Big counter number
	Muted           lipgloss.Style
	Hint            lipgloss.Style
	Status          lipgloss.Style

	Button          lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonActive    lipgloss.Style
	Badge           lipgloss.Style
	BadgeOutline    lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	CardActive: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorCounter)).
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	PanelFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	PanelTitleFocus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Value: lipgloss.NewStyle().
		Bold(true),
	Counter: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorCounter)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	ButtonSecondary: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ButtonActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Badge: lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("236")),
	BadgeOutline: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorMuted)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color(ColorBorder)),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color(ColorHighlight)),
}

// panelFrame renders body inside the panel border with a title line.
func panelFrame(title string, focused bool, width int, body string) string {
	frame, titleStyle := Styles.Panel, Styles.PanelTitle
	if focused {
		frame, titleStyle = Styles.PanelFocus, Styles.PanelTitleFocus
	}
	if width > 0 {
		frame = frame.Width(max(width-frame.GetHorizontalBorderSize(), 10))
	}
	return frame.Render(titleStyle.Render(title) + "\n" + body)
}
