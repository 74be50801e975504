package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC c r", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("c"))
	if !consumed || cmd != nil {
		t.Errorf("c: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting || h.CurrentSeq() != "SPC c" {
		t.Fatalf("expected pending SPC c, got %q", h.CurrentSeq())
	}

	consumed, cmd = h.Handle(keyMsg("r"))
	if !consumed || cmd == nil {
		t.Fatalf("r: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !executed {
		t.Error("expected SPC c r to execute")
	}
	if h.LeaderWaiting {
		t.Error("leader should reset after sequence")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC q", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC e", tea.Quit, "Export", []AppMode{ModeDashboard})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Mode = ModeOverlay
	h.Handle(keyMsg(" "))
	if _, cmd := h.Handle(keyMsg("e")); cmd != nil {
		t.Error("SPC e should not fire in overlay mode")
	}
	h.Handle(keyMsg(" "))
	if _, cmd := h.Handle(keyMsg("q")); cmd == nil {
		t.Error("SPC q should fire in every mode")
	}

	h.Mode = ModeDashboard
	h.Handle(keyMsg(" "))
	if _, cmd := h.Handle(keyMsg("e")); cmd == nil {
		t.Error("SPC e should fire in dashboard mode")
	}
}

func TestLeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC c r", tea.Quit, "Reset counter")
	reg.BindWithDescForMode("SPC e", tea.Quit, "Export", []AppMode{ModeDashboard})

	top := reg.LeaderHints("", ModeDashboard)
	if top["q"] != "Quit" || top["c"] != "Counter" || top["e"] != "Export" {
		t.Errorf("unexpected first-level hints: %v", top)
	}
	if _, ok := reg.LeaderHints("", ModeOverlay)["e"]; ok {
		t.Error("mode-filtered binding should not be hinted")
	}
	sub := reg.LeaderHints("SPC c", ModeDashboard)
	if len(sub) != 1 || sub["r"] != "Reset counter" {
		t.Errorf("unexpected SPC c hints: %v", sub)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h)
	if !strings.Contains(out, "Quit") || !strings.Contains(out, "cancel") {
		t.Errorf("help bar missing hints: %q", out)
	}
	if RenderKeybindHelp(nil) != "" {
		t.Error("nil handler should render nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
