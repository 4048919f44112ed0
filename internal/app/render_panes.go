package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazycollect/internal/theme"
)

const (
	checkOn      = "[x]"
	checkPartial = "[-]"
	checkOff     = "[ ]"
)

// renderBody renders the file list and, on wide windows, the side panel.
func (m *Model) renderBody(layout layoutDims) string {
	list := m.renderListPane(layout)
	if !layout.showSide {
		return list
	}
	side := m.renderSidePane(layout)
	gap := strings.Repeat(" ", layout.gapX)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, gap, side)
}

func (m *Model) renderListPane(layout layoutDims) string {
	title := m.renderPaneTitle("Files", layout.listInnerWidth)
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.renderRows(layout))
	style := m.paneStyle(true)
	return style.
		Width(layout.listWidth - style.GetHorizontalBorderSize()).
		Height(layout.bodyHeight - style.GetVerticalBorderSize()).
		MaxHeight(layout.bodyHeight).
		Render(content)
}

func (m *Model) renderRows(layout layoutDims) string {
	muted := lipgloss.NewStyle().Foreground(m.theme.MutedFg).Italic(true)
	switch {
	case !m.scanned && m.scanning:
		return muted.Render("Scanning...")
	case !m.scanned:
		return muted.Render("Nothing scanned yet. Press r to scan.")
	case len(m.rows) == 0 && m.filterQuery != "":
		return muted.Render(fmt.Sprintf("No files match %q", m.filterQuery))
	case len(m.rows) == 0:
		return muted.Render("No matching files found in this project.")
	}

	height := layout.listInnerHeight
	end := minInt(m.offset+height, len(m.rows))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, layout.listInnerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) categoryColour(name string) lipgloss.Color {
	for _, cat := range m.sel.Categories() {
		if cat.Name == name && cat.Color != "" {
			return lipgloss.Color(cat.Color)
		}
	}
	return m.theme.Accent
}

func (m *Model) categoryCheckbox(name string) string {
	switch {
	case m.sel.CategoryAll(name):
		return checkOn
	case m.sel.CountIn(name) > 0:
		return checkPartial
	default:
		return checkOff
	}
}

func (m *Model) renderRow(r row, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render("> ")
	}

	var line string
	if r.kind == rowCategory {
		style := lipgloss.NewStyle().Foreground(m.categoryColour(r.category)).Bold(true)
		label := fmt.Sprintf("%s Select All %s (%d/%d)",
			m.categoryCheckbox(r.category), r.category, m.sel.CountIn(r.category), m.sel.TotalIn(r.category))
		line = style.Render(truncatePath(label, width-2))
	} else {
		line = m.renderFileRow(r.path, width-2)
	}

	if selected {
		return lipgloss.NewStyle().Background(m.theme.AccentDim).Width(width).Render(cursor + line)
	}
	return cursor + line
}

func (m *Model) renderFileRow(path string, width int) string {
	box := checkOff
	boxStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	if m.sel.Included(path) {
		box = checkOn
		boxStyle = lipgloss.NewStyle().Foreground(m.theme.SuccessFg)
	}

	entry, _ := m.sel.Entry(path)
	prefix := "  " + boxStyle.Render(box) + " "
	if m.config.ShowIcons {
		prefix += iconWithSpace(deviconForName(entry.Name(), entry.Size))
	}

	pathStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	if colour := theme.ExtensionColor(entry.Extension(), m.theme.Light); colour != "" {
		pathStyle = pathStyle.Foreground(colour)
	}
	available := maxInt(width-lipgloss.Width(prefix), 1)
	return prefix + pathStyle.Render(truncatePath(path, available))
}

func (m *Model) renderSidePane(layout layoutDims) string {
	headingStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.TextFg)
	width := layout.sideInnerWidth

	lines := []string{headingStyle.Render("Recent")}
	recent := m.sel.Recent()
	if len(recent) == 0 {
		lines = append(lines, labelStyle.Italic(true).Render("Nothing toggled yet"))
	}
	for _, entry := range recent {
		lines = append(lines, valueStyle.Render(truncatePath(entry.Path, width)))
	}

	stats := m.sel.Stats()
	stat := func(label, value string) string {
		return labelStyle.Render(label+": ") + valueStyle.Render(value)
	}
	lines = append(lines,
		"",
		headingStyle.Render("Stats"),
		stat("Files", fmt.Sprintf("%d", stats.Files)),
		stat("Size", fmt.Sprintf("%.1f KB", float64(stats.Bytes)/1024)),
		stat("Est. lines", fmt.Sprintf("%d", stats.EstLines)),
		"",
		headingStyle.Render("Export"),
		stat("Mode", exportModeLabel(m.config.ExportMode)),
		stat("Output", truncatePath(m.config.OutputFilename, maxInt(width-8, 1))),
	)

	style := m.basePaneStyle()
	return style.
		Width(layout.sideWidth - style.GetHorizontalBorderSize()).
		Height(layout.bodyHeight - style.GetVerticalBorderSize()).
		MaxHeight(layout.bodyHeight).
		Render(strings.Join(lines, "\n"))
}

// truncatePath shortens s to width cells with an ellipsis.
func truncatePath(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
