package screen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycollect/internal/theme"
	"github.com/muesli/reflow/truncate"
)

// LoadingTips are shown while a scan runs.
var LoadingTips = []string{
	"Press '?' to view the help guide anytime.",
	"Press 'a' to toggle a whole category.",
	"Use '/' to filter, then 'A' or 'N' to select or clear the matches.",
	"Press 'c' to copy the selection to the clipboard.",
	"Press 'w' to write the selection to the output file.",
	"Press 'e' to copy the selected files into a directory.",
	"Set respect_gitignore: true to skip files ignored by git.",
	"Add doublestar patterns under exclude: to hide generated files.",
	"Set auto_refresh: true to rescan when files are created or removed.",
	"Run 'lazycollect export' to build the output without the UI.",
}

// LoadingScreen shows a spinner and a running file count. Esc cancels.
type LoadingScreen struct {
	Message        string
	Found          int
	FrameIdx       int
	BorderColorIdx int
	Tip            string
	Thm            *theme.Theme
	SpinnerFrames  []string

	OnCancel func() tea.Cmd
}

// DefaultSpinnerFrames returns the text-only spinner frames.
func DefaultSpinnerFrames() []string {
	return []string{"...", ".. ", ".  "}
}

// NewLoadingScreen creates a loading modal. With no frames the text spinner
// is used.
func NewLoadingScreen(message string, thm *theme.Theme, spinnerFrames []string) *LoadingScreen {
	frames := spinnerFrames
	if len(frames) == 0 {
		frames = DefaultSpinnerFrames()
	}

	return &LoadingScreen{
		Message:       message,
		Tip:           LoadingTips[rand.IntN(len(LoadingTips))], //nolint:gosec // UI tip
		Thm:           thm,
		SpinnerFrames: frames,
	}
}

// Type returns the screen type.
func (s *LoadingScreen) Type() Type {
	return TypeLoading
}

// Update cancels on esc. Other keys are ignored.
func (s *LoadingScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyCtrlC:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	}
	return s, nil
}

func (s *LoadingScreen) borderColours() []lipgloss.Color {
	return []lipgloss.Color{
		s.Thm.Accent,
		s.Thm.SuccessFg,
		s.Thm.WarnFg,
		s.Thm.Accent,
	}
}

// Tick advances the spinner frame and border colour.
func (s *LoadingScreen) Tick() {
	s.FrameIdx = (s.FrameIdx + 1) % len(s.SpinnerFrames)
	s.BorderColorIdx = (s.BorderColorIdx + 1) % len(s.borderColours())
}

// View renders the spinner, message, file count and a tip.
func (s *LoadingScreen) View() string {
	width := modalWidth
	colours := s.borderColours()

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colours[s.BorderColorIdx%len(colours)]).
		Padding(1, 2).
		Width(width)

	spinnerStyle := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	messageStyle := lipgloss.NewStyle().Foreground(s.Thm.TextFg).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(s.Thm.MutedFg)
	separator := lipgloss.NewStyle().
		Foreground(s.Thm.BorderDim).
		Render(strings.Repeat("-", width-6))
	tipStyle := lipgloss.NewStyle().Foreground(s.Thm.MutedFg).Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		spinnerStyle.Render(s.SpinnerFrames[s.FrameIdx%len(s.SpinnerFrames)]),
		"",
		messageStyle.Render(s.Message),
		countStyle.Render(fmt.Sprintf("%d files found • esc to cancel", s.Found)),
		separator,
		tipStyle.Render(truncate.StringWithTail("Tip: "+s.Tip, uint(width-6), "...")),
	)
	return boxStyle.Render(content)
}
