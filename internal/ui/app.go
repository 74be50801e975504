package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toybox/internal/dashboard"
	tblog "toybox/internal/log"
	"toybox/internal/progress"
	"toybox/internal/viewstate"
)

// AppModel is the root model. It owns the dashboard, the overlay stack and
// the leader-key handler, and mounts the controller's tick on the event loop.
type AppModel struct {
	Mode       AppMode
	Controller *viewstate.Controller
	Dashboard  *DashboardView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Exporter   Exporter // nil disables SPC e
	Logger     *slog.Logger

	scheduler *teaScheduler
	export    *exportStream
	width     int
	height    int
	quitting  bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model over ctrl. exp may be nil.
func NewAppModel(ctrl *viewstate.Controller, exp Exporter, logger *slog.Logger) *AppModel {
	if logger == nil {
		logger = tblog.Discard()
	}
	quit := func() tea.Msg { return QuitMsg{} }
	dashboardOnly := []AppMode{ModeDashboard}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDesc("SPC q", quit, "Quit")
	reg.BindWithDescForMode("SPC i", func() tea.Msg { return ShowAboutMsg{} }, "About", dashboardOnly)
	reg.BindWithDescForMode("SPC e", func() tea.Msg { return StartExportMsg{} }, "Export charts", dashboardOnly)
	reg.BindWithDescForMode("SPC c r", func() tea.Msg { return ResetCounterMsg{} }, "Reset counter", dashboardOnly)

	m := &AppModel{
		Mode:       ModeDashboard,
		Controller: ctrl,
		Dashboard:  NewDashboardView(ctrl),
		KeyHandler: NewKeyHandler(reg),
		Exporter:   exp,
		Logger:     logger,
		scheduler:  newTeaScheduler(),
	}
	m.logChanges()
	return m
}

// logChanges records user-visible state changes at debug level. Progress
// ticks are left out.
func (m *AppModel) logChanges() {
	prev := m.Controller.State()
	m.Controller.Subscribe(func(s viewstate.State) {
		if s.Metric != prev.Metric {
			m.Logger.Debug("metric selected", slog.String("metric", string(s.Metric)))
		}
		if s.Counter != prev.Counter {
			m.Logger.Debug("counter changed", slog.Int("counter", s.Counter))
		}
		prev = s
	})
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model. Mounting starts the progress tick.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Controller.Mount(a.scheduler)
	a.Logger.Info("dashboard mounted",
		slog.String("controller", a.Controller.ID()),
		slog.Duration("interval", a.Controller.Interval()))
	return tea.Batch(a.Dashboard.Init(), a.scheduler.Flush())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduledTickMsg:
		return a, a.scheduler.Fire(msg)
	case QuitMsg:
		a.Controller.Unmount()
		a.quitting = true
		a.Logger.Info("dashboard unmounted", slog.String("controller", a.Controller.ID()))
		return a, tea.Quit
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Dashboard.Update(msg)
		return a, a.Overlays.UpdateAll(msg)
	case ShowAboutMsg:
		a.pushOverlay(NewAboutView(dashboard.Info()))
		return a, nil
	case StartExportMsg:
		return a, a.startExport()
	case progress.Event:
		if w, ok := a.exportWindow(); ok {
			w.Update(msg)
		}
		if a.export == nil {
			return a, nil
		}
		return a, waitForExportEvent(a.export)
	case exportDoneMsg:
		a.export = nil
		if msg.Err != nil {
			a.Logger.Warn("export failed", slog.Any("error", msg.Err))
		} else {
			a.Logger.Info("export finished")
		}
		if w, ok := a.exportWindow(); ok {
			w.Update(msg)
		}
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		if a.Overlays.Len() == 0 {
			a.Mode = ModeDashboard
		}
		return a, nil
	case ResetCounterMsg:
		a.Controller.ResetCounter()
		return a, nil
	case tea.KeyMsg:
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			a.KeyHandler.Mode = a.Mode
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				return a, func() tea.Msg { return DismissModalMsg{} }
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd
	}

	if a.Mode == ModeOverlay {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.quitting {
		return ""
	}
	var base string
	if top, ok := a.Overlays.Peek(); ok {
		base = top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, base)
		}
	} else {
		base = a.Dashboard.View()
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return base
}

func (m *AppModel) pushOverlay(v View) {
	if m.width > 0 {
		v.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	m.Overlays.Push(Overlay{View: v, Dismiss: "esc"})
	m.Mode = ModeOverlay
}

func (m *AppModel) exportWindow() (*ExportWindow, bool) {
	v, ok := m.Overlays.Find(func(v View) bool {
		_, ok := v.(*ExportWindow)
		return ok
	})
	if !ok {
		return nil, false
	}
	return v.(*ExportWindow), true
}

// startExport opens the export window and runs the exporter. A second
// request while one is running only reopens the window.
func (m *AppModel) startExport() tea.Cmd {
	if m.Exporter == nil {
		m.Logger.Debug("export requested without exporter")
		return nil
	}
	if m.export != nil {
		if _, ok := m.exportWindow(); !ok {
			m.pushOverlay(NewExportWindow())
		}
		return nil
	}
	m.pushOverlay(NewExportWindow())
	m.export = newExportStream()
	m.Logger.Info("export started")
	return tea.Batch(
		runExportCmd(context.Background(), m.Exporter, m.export),
		waitForExportEvent(m.export),
	)
}
