package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycollect/internal/theme"
)

type closedMsg struct{ value string }

func TestInfoScreenSeverities(t *testing.T) {
	thm := theme.Dracula()

	tests := []struct {
		severity Severity
		title    string
	}{
		{SeverityInfo, "Info"},
		{SeverityWarning, "Warning"},
		{SeverityError, "Error"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			s := NewMessageScreen(tt.severity, "No files selected!", thm)
			view := s.View()
			if !strings.Contains(view, tt.title) {
				t.Errorf("expected title %q in view", tt.title)
			}
			if !strings.Contains(view, "No files selected!") {
				t.Error("expected message in view")
			}
			if !strings.Contains(view, "[OK]") {
				t.Error("expected OK button")
			}
		})
	}
}

func TestInfoScreenCloses(t *testing.T) {
	s := NewInfoScreen("done", theme.Dracula())
	closed := false
	s.OnClose = func() tea.Cmd {
		closed = true
		return nil
	}

	next, _ := s.Update(keyMsg("x"))
	if next == nil {
		t.Fatal("unrelated keys keep the dialog open")
	}
	next, _ = s.Update(keyMsg("enter"))
	if next != nil || !closed {
		t.Fatal("enter closes the dialog and runs OnClose")
	}
}

func TestConfirmScreen(t *testing.T) {
	thm := theme.Dracula()

	s := NewConfirmScreen("Copy anyway?", thm)
	confirmed := false
	s.OnConfirm = func() tea.Cmd {
		confirmed = true
		return nil
	}
	next, _ := s.Update(keyMsg("y"))
	if next != nil || !confirmed {
		t.Fatal("y confirms")
	}

	s = NewConfirmScreen("Copy anyway?", thm)
	cancelled := false
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}
	s.Update(keyMsg("tab"))
	if s.SelectedButton != 1 {
		t.Fatalf("expected cancel focused, got %d", s.SelectedButton)
	}
	next, _ = s.Update(keyMsg("enter"))
	if next != nil || !cancelled {
		t.Fatal("enter on the cancel button cancels")
	}

	s = NewConfirmScreen("Copy anyway?", thm)
	s.ConfirmLabel = "Copy"
	if !strings.Contains(s.View(), "[Copy]") {
		t.Error("expected custom confirm label")
	}
}

func TestInputScreenSubmit(t *testing.T) {
	s := NewInputScreen("Export directory", "path", "", theme.Dracula())
	s.Validate = func(v string) string {
		if v == "" {
			return "Directory is required"
		}
		return ""
	}
	s.OnSubmit = func(v string) tea.Cmd {
		return func() tea.Msg { return closedMsg{value: v} }
	}

	next, _ := s.Update(keyMsg("enter"))
	if next == nil {
		t.Fatal("invalid input keeps the screen open")
	}
	if s.ErrorMsg != "Directory is required" {
		t.Fatalf("unexpected error message %q", s.ErrorMsg)
	}
	if !strings.Contains(s.View(), "Directory is required") {
		t.Error("expected validation error in view")
	}

	s.Input.SetValue("  out/context  ")
	next, cmd := s.Update(keyMsg("enter"))
	if next != nil {
		t.Fatal("valid input closes the screen")
	}
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if msg, ok := cmd().(closedMsg); !ok || msg.value != "out/context" {
		t.Fatalf("unexpected submit message %#v", msg)
	}
}

func TestInputScreenTyping(t *testing.T) {
	s := NewInputScreen("Export directory", "", "", theme.Dracula())
	for _, r := range "dist" {
		s.Update(keyMsg(string(r)))
	}
	if got := s.Input.Value(); got != "dist" {
		t.Fatalf("expected typed value, got %q", got)
	}

	cancelled := false
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}
	next, _ := s.Update(keyMsg("esc"))
	if next != nil || !cancelled {
		t.Fatal("esc cancels")
	}
}

func TestLoadingScreen(t *testing.T) {
	s := NewLoadingScreen("Scanning project...", theme.Dracula(), nil)
	s.Found = 42

	view := s.View()
	if !strings.Contains(view, "Scanning project...") {
		t.Error("expected message in view")
	}
	if !strings.Contains(view, "42 files found") {
		t.Error("expected file count in view")
	}

	s.Tick()
	if s.FrameIdx != 1 || s.BorderColorIdx != 1 {
		t.Errorf("unexpected animation state %d/%d", s.FrameIdx, s.BorderColorIdx)
	}

	if next, _ := s.Update(keyMsg("x")); next == nil {
		t.Fatal("other keys are ignored")
	}
	cancelled := false
	s.OnCancel = func() tea.Cmd {
		cancelled = true
		return nil
	}
	if next, _ := s.Update(keyMsg("esc")); next != nil || !cancelled {
		t.Fatal("esc cancels the scan")
	}
}

func TestHelpScreenSearch(t *testing.T) {
	s := NewHelpScreen(120, 40, theme.Dracula(), false)
	if !strings.Contains(s.renderContent(), "Selection") {
		t.Fatal("expected Selection section")
	}
	if strings.Contains(s.renderContent(), "{{ARROW_DOWN}}") {
		t.Fatal("placeholders must be replaced")
	}

	s.Update(keyMsg("/"))
	if !s.Searching {
		t.Fatal("expected search mode")
	}
	for _, r := range "clipboard" {
		s.Update(keyMsg(string(r)))
	}
	content := s.renderContent()
	if !strings.Contains(strings.ToLower(content), "clipboard") {
		t.Error("expected clipboard entry to match")
	}
	if strings.Contains(content, "Rescan") {
		t.Error("non-matching lines are filtered out")
	}

	s.Update(keyMsg("esc"))
	if s.SearchQuery != "" || s.Searching {
		t.Fatal("esc clears search first")
	}
	if next, _ := s.Update(keyMsg("q")); next != nil {
		t.Fatal("q closes help")
	}
}

func TestHelpScreenNoMatch(t *testing.T) {
	s := NewHelpScreen(0, 0, theme.Dracula(), true)
	s.SearchQuery = "zzzz-nothing"
	if got := s.renderContent(); !strings.Contains(got, "No help entries match") {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "Error" || Severity(42).String() != "Info" {
		t.Error("unexpected severity names")
	}
}
