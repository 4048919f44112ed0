package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycollect/internal/theme"
	"github.com/muesli/reflow/wrap"
)

// Severity selects the title and border colour of an info screen.
type Severity int

// Severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the default dialog title for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "Info"
	}
}

// InfoScreen displays a message with an OK button. Warnings and errors use
// the same dialog with a different title and colour.
type InfoScreen struct {
	Title    string
	Message  string
	Severity Severity
	Thm      *theme.Theme

	OnClose func() tea.Cmd
}

// NewInfoScreen creates an informational modal.
func NewInfoScreen(message string, thm *theme.Theme) *InfoScreen {
	return NewMessageScreen(SeverityInfo, message, thm)
}

// NewMessageScreen creates a modal with the given severity.
func NewMessageScreen(severity Severity, message string, thm *theme.Theme) *InfoScreen {
	return &InfoScreen{
		Title:    severity.String(),
		Message:  message,
		Severity: severity,
		Thm:      thm,
	}
}

// Type returns the screen type.
func (s *InfoScreen) Type() Type {
	return TypeInfo
}

// Update closes the dialog on enter, esc or q.
func (s *InfoScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyQ, keyCtrlC, " ":
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

func (s *InfoScreen) colour() lipgloss.Color {
	switch s.Severity {
	case SeverityWarning:
		return s.Thm.WarnFg
	case SeverityError:
		return s.Thm.ErrorFg
	default:
		return s.Thm.Accent
	}
}

// View renders the dialog box.
func (s *InfoScreen) View() string {
	width := modalWidth
	colour := s.colour()

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colour).
		Padding(1, 2).
		Width(width)

	titleStyle := lipgloss.NewStyle().
		Width(width - 6).
		Align(lipgloss.Center).
		Foreground(colour).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Width(width - 6).
		Align(lipgloss.Center).
		Foreground(s.Thm.TextFg)

	okStyle := lipgloss.NewStyle().
		Width(width-6).
		Align(lipgloss.Center).
		Padding(0, 2).
		Foreground(s.Thm.AccentFg).
		Background(colour).
		Bold(true)

	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render(s.Title),
		messageStyle.Render(wrap.String(s.Message, width-6)),
		okStyle.Render("[OK]"),
	)
	return boxStyle.Render(content)
}
