package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycollect/internal/theme"
)

func TestNewManager(t *testing.T) {
	m := NewManager()
	if m.IsActive() {
		t.Error("expected new manager to have no active screen")
	}
	if m.Type() != TypeNone {
		t.Errorf("expected TypeNone, got %v", m.Type())
	}
	if m.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", m.Depth())
	}
}

func TestManagerPushPop(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()

	confirm := NewConfirmScreen("test", thm)
	m.Push(confirm)
	if m.Type() != TypeConfirm {
		t.Errorf("expected TypeConfirm, got %v", m.Type())
	}

	info := NewInfoScreen("info", thm)
	m.Push(info)
	if m.Current() != info {
		t.Error("expected current to be the info screen")
	}
	if m.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", m.Depth())
	}

	if popped := m.Pop(); popped != info {
		t.Error("expected to pop the info screen")
	}
	if m.Type() != TypeConfirm {
		t.Errorf("expected TypeConfirm after pop, got %v", m.Type())
	}
	if popped := m.Pop(); popped != confirm {
		t.Error("expected to pop the confirm screen")
	}
	if m.IsActive() {
		t.Error("expected manager to be inactive after popping all screens")
	}
	if m.Pop() != nil {
		t.Error("expected nil when popping an empty manager")
	}
}

func TestManagerPushNil(t *testing.T) {
	m := NewManager()
	m.Push(nil)
	if m.IsActive() {
		t.Error("nil screens must not be pushed")
	}
}

func TestManagerDismiss(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()

	loading := NewLoadingScreen("Scanning", thm, nil)
	warning := NewMessageScreen(SeverityWarning, "careful", thm)
	m.Push(loading)
	m.Push(warning)

	m.Dismiss(TypeLoading)
	if m.Current() != warning {
		t.Fatal("expected the warning to stay on top")
	}
	if m.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", m.Depth())
	}

	m.Pop()
	m.Push(loading)
	m.Dismiss(TypeLoading)
	if m.IsActive() {
		t.Error("expected loading screen to be dismissed")
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()

	input := NewInputScreen("dir", "", "", thm)
	confirm := NewConfirmScreen("overwrite?", thm)
	m.Push(input)
	m.Push(confirm)

	// A callback pushed confirm above input; closing input keeps confirm.
	m.Remove(input)
	if m.Current() != confirm || m.Depth() != 1 {
		t.Fatalf("expected only the confirm screen, depth %d", m.Depth())
	}

	m.Remove(NewInfoScreen("not here", thm))
	if m.Depth() != 1 {
		t.Errorf("removing an unknown screen changed depth to %d", m.Depth())
	}

	m.Remove(confirm)
	if m.IsActive() {
		t.Error("expected no active screen")
	}
	m.Remove(nil)
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	thm := theme.Dracula()
	m.Push(NewConfirmScreen("test", thm))
	m.Push(NewInfoScreen("info", thm))

	m.Clear()
	if m.IsActive() || m.Depth() != 0 {
		t.Error("expected manager to be empty after clear")
	}
}

func TestTypeString(t *testing.T) {
	tests := map[Type]string{
		TypeNone:    "none",
		TypeConfirm: "confirm",
		TypeInfo:    "info",
		TypeInput:   "input",
		TypeHelp:    "help",
		TypeLoading: "loading",
		Type(99):    "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
