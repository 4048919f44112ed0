package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycollect/internal/app/screen"
	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/selection"
)

// handleKey routes a key press to the open modal, the filter bar or the list.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screens.IsActive() {
		return m, m.handleScreenKey(msg)
	}
	if m.showingFilter {
		return m, m.handleFilterKey(msg)
	}
	return m.handleListKey(msg)
}

// handleScreenKey forwards msg to the top modal. Callbacks may push a
// follow-up modal, so the closing screen is removed by identity.
func (m *Model) handleScreenKey(msg tea.KeyMsg) tea.Cmd {
	scr := m.screens.Current()
	next, cmd := scr.Update(msg)
	if next == nil {
		m.screens.Remove(scr)
	}
	return cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.showingFilter = false
		m.filterInput.Blur()
		return nil
	case "esc", "ctrl+c":
		m.showingFilter = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.setFilter("")
		return nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.setFilter(m.filterInput.Value())
	return cmd
}

func (m *Model) setFilter(query string) {
	if query == m.filterQuery {
		return
	}
	m.filterQuery = query
	m.cursor = 0
	m.offset = 0
	m.rebuildRows()
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()

	case msg.String() == "esc":
		if m.filterQuery != "" {
			m.filterInput.SetValue("")
			m.setFilter("")
		}

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Top):
		m.cursor = 0
		m.clampCursor()
	case key.Matches(msg, keys.Bottom):
		m.cursor = len(m.rows) - 1
		m.clampCursor()
	case key.Matches(msg, keys.PageDown):
		m.moveCursor(m.listHeight() / 2)
	case key.Matches(msg, keys.PageUp):
		m.moveCursor(-m.listHeight() / 2)

	case key.Matches(msg, keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, keys.ToggleCategory):
		if r, ok := m.currentRow(); ok {
			m.toggleCategory(r.category)
		}
	case key.Matches(msg, keys.SelectAll):
		m.setVisible(true)
	case key.Matches(msg, keys.SelectNone):
		m.setVisible(false)

	case key.Matches(msg, keys.Filter):
		m.showingFilter = true
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, keys.Copy):
		return m, m.copySelection()
	case key.Matches(msg, keys.Write):
		if m.config.ExportMode == config.ExportSeparate {
			return m, m.promptCopyTree()
		}
		return m, m.writeSelection()
	case key.Matches(msg, keys.ExportTree):
		return m, m.promptCopyTree()
	case key.Matches(msg, keys.ToggleMode):
		m.toggleExportMode()

	case key.Matches(msg, keys.Rescan):
		m.status = ""
		return m, m.startScan(false)
	case key.Matches(msg, keys.Help):
		m.screens.Push(screen.NewHelpScreen(m.windowWidth, m.windowHeight, m.theme, m.config.ShowIcons))
	}
	return m, nil
}

func (m *Model) toggleCurrent() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	if r.kind == rowCategory {
		m.toggleCategory(r.category)
		return
	}
	m.dispatch(selection.ToggleFile{Path: r.path})
}

func (m *Model) toggleCategory(category string) {
	m.dispatch(selection.SetCategory{Category: category, Value: !m.sel.CategoryAll(category)})
}

// setVisible selects or deselects every file, or only the files matching the
// active filter.
func (m *Model) setVisible(value bool) {
	if m.filterQuery != "" {
		m.dispatch(selection.SetMatching{Query: m.filterQuery, Value: value})
		return
	}
	m.dispatch(selection.SetAll{Value: value})
}

func (m *Model) toggleExportMode() {
	if m.config.ExportMode == config.ExportSeparate {
		m.config.ExportMode = config.ExportSingle
	} else {
		m.config.ExportMode = config.ExportSeparate
	}
	m.status = "Export mode: " + exportModeLabel(m.config.ExportMode)
}

func exportModeLabel(mode string) string {
	if mode == config.ExportSeparate {
		return "separate files"
	}
	return "single file"
}
