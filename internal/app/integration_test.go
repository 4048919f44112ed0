package app

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazycollect/internal/config"
)

func waitForOutput(t *testing.T, tm *teatest.TestModel, want string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(want))
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
}

// TestSelectAndWriteFlow drives the program end to end: scan, deselect a
// file, write the output file, dismiss the result and quit.
func TestSelectAndWriteFlow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Root = newProject(t)
	cfg.ShowIcons = false

	tm := teatest.NewTestModel(
		t,
		NewModel(cfg),
		teatest.WithInitialTermSize(120, 40),
	)

	waitForOutput(t, tm, "Selected: 3 / 3 files")

	// Cursor starts on the HTML section; move to b.css and switch it off.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	waitForOutput(t, tm, "Selected: 2 / 3 files")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	waitForOutput(t, tm, "Wrote 2 files")

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	m, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok, "final model is not *Model")
	assert.True(t, m.quitting)

	data, err := os.ReadFile(cfg.OutputPath())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "FILE: "))
	assert.NotContains(t, string(data), "FILE: b.css")
}

// TestEmptySelectionFlow checks the warning is shown and nothing is written.
func TestEmptySelectionFlow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Root = newProject(t)

	tm := teatest.NewTestModel(
		t,
		NewModel(cfg),
		teatest.WithInitialTermSize(120, 40),
	)

	waitForOutput(t, tm, "Selected: 3 / 3 files")
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	waitForOutput(t, tm, noSelectionMessage)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	assert.NoFileExists(t, cfg.OutputPath())
}
