package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/progress"
)

const (
	exportWindowWidth  = 64
	exportWindowHeight = 12
)

// ExportWindow shows live export progress with scrollback. Shown as an
// overlay while the charts are written; Esc dismisses.
type ExportWindow struct {
	events   []progress.Event
	viewport viewport.Model
	finished bool
	err      error
}

var _ View = (*ExportWindow)(nil)

// NewExportWindow creates an empty export window.
func NewExportWindow() *ExportWindow {
	vp := viewport.New(exportWindowWidth, exportWindowHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	w := &ExportWindow{viewport: vp}
	w.refreshContent()
	return w
}

// Events returns the events received so far.
func (w *ExportWindow) Events() []progress.Event {
	return slices.Clone(w.events)
}

// Finished reports whether the export completed, and its error if any.
func (w *ExportWindow) Finished() (bool, error) {
	return w.finished, w.err
}

// Init implements View.
func (w *ExportWindow) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (w *ExportWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		w.events = append(w.events, msg)
		w.refreshContent()
		return w, nil
	case exportDoneMsg:
		w.finished = true
		w.err = msg.Err
		w.refreshContent()
		return w, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		w.viewport.Width = max(min(msg.Width-4, 100), 40)
		w.viewport.Height = max(msg.Height/2, 8)
		w.refreshContent()
		return w, nil
	}

	var cmd tea.Cmd
	w.viewport, cmd = w.viewport.Update(msg)
	return w, cmd
}

// View implements View.
func (w *ExportWindow) View() string {
	header := Styles.Title.Render("Export charts") + Styles.Muted.Render("  esc close")
	return header + "\n" + w.viewport.View()
}

func (w *ExportWindow) refreshContent() {
	lines := make([]string, 0, len(w.events)+2)
	for _, ev := range w.events {
		lines = append(lines, fmt.Sprintf("[%s] %s %s", ev.Timestamp.Format("15:04:05"), statusIcon(ev.Status), ev.Message))
		keys := make([]string, 0, len(ev.Metadata))
		for k := range ev.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, Styles.Muted.Render(fmt.Sprintf("      %s: %s", k, ev.Metadata[k])))
		}
	}
	switch {
	case len(lines) == 0 && !w.finished:
		lines = append(lines, "Starting export...")
	case w.finished && w.err != nil:
		lines = append(lines, "", Styles.Error.Render("Export failed: "+w.err.Error()))
	case w.finished:
		lines = append(lines, "", Styles.Status.Render("Export complete"))
	}
	w.viewport.SetContent(strings.Join(lines, "\n"))
	w.viewport.GotoBottom()
}

func statusIcon(s progress.Status) string {
	switch s {
	case progress.StatusRunning:
		return "●"
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	default:
		return "•"
	}
}
