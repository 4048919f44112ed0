package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the application header.
func (m *Model) renderHeader(layout layoutDims) string {
	headerStyle := lipgloss.NewStyle().
		Background(m.theme.AccentDim).
		Foreground(m.theme.TextFg).
		Bold(true).
		Width(layout.width).
		Padding(0, 2).Align(lipgloss.Center)

	content := fmt.Sprintf("lazycollect  •  %s", m.projectName())
	if m.scanned {
		content = fmt.Sprintf("%s  •  Selected: %d / %d files", content, m.sel.Count(), m.sel.Total())
	}
	return headerStyle.Render(content)
}

// renderFilter renders the filter input bar.
func (m *Model) renderFilter(layout layoutDims) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	filterStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Padding(0, 1)

	value := m.filterInput.View()
	if !m.showingFilter {
		value = lipgloss.NewStyle().Foreground(m.theme.WarnFg).Italic(true).Render(m.filterQuery) +
			"  " + m.renderKeyHint("Esc", "Clear")
	}
	line := fmt.Sprintf("%s %s", labelStyle.Render("Filter"), value)
	return filterStyle.Width(layout.width).Render(line)
}

// renderFooter renders the key hints and the last status message.
func (m *Model) renderFooter(layout layoutDims) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.BorderDim).
		Padding(0, 1)

	var hints []string
	if m.showingFilter {
		hints = []string{
			m.renderKeyHint("Enter", "Apply"),
			m.renderKeyHint("Esc", "Clear"),
		}
	} else {
		hints = []string{
			m.renderKeyHint("space", "Toggle"),
			m.renderKeyHint("a", "Category"),
			m.renderKeyHint("A/N", "All/None"),
			m.renderKeyHint("/", "Filter"),
			m.renderKeyHint("c", "Copy"),
			m.renderKeyHint("w", "Write"),
			m.renderKeyHint("e", "Export"),
			m.renderKeyHint("r", "Rescan"),
			m.renderKeyHint("?", "Help"),
			m.renderKeyHint("q", "Quit"),
		}
	}

	footerContent := strings.Join(hints, "  ")
	if m.status == "" {
		return footerStyle.Width(layout.width).Render(footerContent)
	}

	gap := "  "
	statusStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Italic(true)
	available := maxInt(layout.width-lipgloss.Width(footerContent)-lipgloss.Width(gap)-footerStyle.GetHorizontalFrameSize(), 0)
	status := truncatePath(m.status, available)
	return footerStyle.Width(layout.width).Render(footerContent + gap + statusStyle.Render(status))
}

// renderKeyHint renders a single key hint with pill styling.
func (m *Model) renderKeyHint(key, label string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), labelStyle.Render(label))
}

// renderPaneTitle renders a pane title, with the filter indicator when the
// list is filtered.
func (m *Model) renderPaneTitle(title string, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg).Bold(true)
	content := titleStyle.Render(title)
	if m.filterQuery != "" && !m.showingFilter {
		filteredStyle := lipgloss.NewStyle().Foreground(m.theme.WarnFg).Italic(true)
		content = fmt.Sprintf("%s  %s", content, filteredStyle.Render("Filtered"))
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// basePaneStyle returns the base style for panes.
func (m *Model) basePaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderDim).
		Padding(0, 1)
}

// paneStyle returns a pane style with focus indication.
func (m *Model) paneStyle(focused bool) lipgloss.Style {
	borderColor := m.theme.BorderDim
	borderStyle := lipgloss.NormalBorder()
	if focused {
		borderColor = m.theme.Accent
		borderStyle = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(borderStyle).
		BorderForeground(borderColor).
		Padding(0, 1)
}
