package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycollect/internal/theme"
	"github.com/muesli/reflow/wrap"
)

const helpText = `lazycollect Help Guide

**Navigation**
- j / {{ARROW_DOWN}}: Move cursor down
- k / {{ARROW_UP}}: Move cursor up
- g / G: Jump to top / bottom
- Ctrl+D / Ctrl+U: Half page down / up
- q: Quit

**Selection**
- Space / Enter: Toggle the file under the cursor, or the whole category on a "Select All" row
- a: Toggle every file of the current category
- A: Select every file (only the visible ones while filtering)
- N: Deselect every file (only the visible ones while filtering)
- /: Filter files by path (Enter to apply, Esc to clear)

**Export**
- c: Copy the selection to the clipboard (falls back to OSC 52 over ssh)
- w: Write the selection to the output file (full_code.txt by default)
- e: Copy the selected files into a directory, keeping their layout
- m: Switch the export mode between one text file and separate files
Each file is exported as a block: a line of 50 '=', "FILE: <path>", another line of '=', then the content.
Binary and non UTF-8 files are skipped and reported.

**Project**
- r: Rescan the project directory
- Esc (while scanning): Cancel the scan
- ?: Show this help

**Help Navigation**
- /: Search help (Enter to apply, Esc to clear)
- q / Esc: Close help
- j / k: Scroll down / up

**Configuration**
Read from $XDG_CONFIG_HOME/lazycollect/config.yaml (usually ~/.config/lazycollect/config.yaml).
Keys: categories, ignore_dirs, exclude, output_filename, skip_hidden, respect_gitignore, max_file_size, auto_refresh, theme, show_icons, export_mode, debug_log.
Override any key but categories from the command line: lazycollect --config theme=nord --config skip_hidden=true`

// HelpScreen renders searchable documentation for the key bindings.
type HelpScreen struct {
	Viewport    viewport.Model
	Width       int
	Height      int
	FullText    []string
	SearchInput textinput.Model
	Searching   bool
	SearchQuery string
	Thm         *theme.Theme
}

func helpSize(maxWidth, maxHeight int) (int, int) {
	width, height := 80, 30
	if maxWidth > 0 {
		width = minInt(100, maxInt(60, int(float64(maxWidth)*0.75)))
	}
	if maxHeight > 0 {
		height = minInt(40, maxInt(20, int(float64(maxHeight)*0.7)))
	}
	return width, height
}

// NewHelpScreen builds the help text for the available screen size.
func NewHelpScreen(maxWidth, maxHeight int, thm *theme.Theme, showIcons bool) *HelpScreen {
	text := strings.NewReplacer(
		"{{ARROW_UP}}", arrow("↑", "Up", showIcons),
		"{{ARROW_DOWN}}", arrow("↓", "Down", showIcons),
	).Replace(helpText)

	width, height := helpSize(maxWidth, maxHeight)

	ti := textinput.New()
	ti.Placeholder = "Search help (/ to start, Enter to apply, Esc to clear)"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	ti.Blur()
	ti.Width = maxInt(20, width-6)

	hs := &HelpScreen{
		Viewport:    viewport.New(width-2, maxInt(5, height-4)),
		Width:       width,
		Height:      height,
		FullText:    strings.Split(text, "\n"),
		SearchInput: ti,
		Thm:         thm,
	}
	hs.refreshContent()
	return hs
}

func arrow(icon, text string, showIcons bool) string {
	if showIcons {
		return icon
	}
	return text
}

// Type returns TypeHelp.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// Update handles scrolling and search input.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch key {
	case "/":
		if !s.Searching {
			s.Searching = true
			s.SearchInput.Focus()
			return s, textinput.Blink
		}
	case keyEnter:
		if s.Searching {
			s.SearchQuery = strings.TrimSpace(s.SearchInput.Value())
			s.Searching = false
			s.SearchInput.Blur()
			s.refreshContent()
			return s, nil
		}
	case keyEsc, keyCtrlC:
		if s.Searching || s.SearchQuery != "" {
			s.Searching = false
			s.SearchInput.SetValue("")
			s.SearchQuery = ""
			s.SearchInput.Blur()
			s.refreshContent()
			return s, nil
		}
		return nil, nil
	case keyQ:
		if !s.Searching {
			return nil, nil
		}
	}

	if s.Searching {
		s.SearchInput, cmd = s.SearchInput.Update(msg)
		if query := strings.TrimSpace(s.SearchInput.Value()); query != s.SearchQuery {
			s.SearchQuery = query
			s.refreshContent()
		}
		return s, cmd
	}

	switch key {
	case "ctrl+d", " ":
		s.Viewport.HalfPageDown()
		return s, nil
	case "ctrl+u":
		s.Viewport.HalfPageUp()
		return s, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", "up":
		s.Viewport.ScrollUp(1)
		return s, nil
	}

	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

// SetSize resizes the help screen after a terminal resize.
func (s *HelpScreen) SetSize(maxWidth, maxHeight int) {
	s.Width, s.Height = helpSize(maxWidth, maxHeight)
	s.Viewport.Width = s.Width - 2
	s.Viewport.Height = maxInt(5, s.Height-4)
	s.refreshContent()
}

func (s *HelpScreen) refreshContent() {
	s.Viewport.SetContent(s.renderContent())
	s.Viewport.GotoTop()
}

// renderContent styles the help text and applies the search filter.
func (s *HelpScreen) renderContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(s.Thm.SuccessFg).Bold(true)
	textWidth := maxInt(20, s.Width-4)

	styled := make([]string, 0, len(s.FullText))
	for _, line := range s.FullText {
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			header := strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")
			styled = append(styled, titleStyle.Render("▼ "+header))
			continue
		}
		if strings.HasPrefix(line, "- ") {
			if keys, desc, ok := strings.Cut(strings.TrimPrefix(line, "- "), ": "); ok {
				styled = append(styled, "  "+keyStyle.Render(keys)+": "+desc)
				continue
			}
		}
		styled = append(styled, wrap.String(line, textWidth))
	}

	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))
	if query == "" {
		return strings.Join(styled, "\n")
	}

	highlight := lipgloss.NewStyle().Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)
	var matches []string
	for _, line := range styled {
		lower := strings.ToLower(line)
		if strings.Contains(lower, query) {
			matches = append(matches, highlightMatches(line, lower, query, highlight))
		}
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No help entries match %q", s.SearchQuery)
	}
	return strings.Join(matches, "\n")
}

// highlightMatches highlights every occurrence of query in line.
func highlightMatches(line, lowerLine, lowerQuery string, style lipgloss.Style) string {
	if lowerQuery == "" || len(lowerLine) != len(line) {
		return line
	}

	var b strings.Builder
	from := 0
	for {
		idx := strings.Index(lowerLine[from:], lowerQuery)
		if idx < 0 {
			b.WriteString(line[from:])
			break
		}
		start := from + idx
		end := start + len(lowerQuery)
		b.WriteString(line[from:start])
		b.WriteString(style.Render(line[start:end]))
		from = end
	}
	return b.String()
}

// View renders the help box.
func (s *HelpScreen) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width)

	title := lipgloss.NewStyle().
		Foreground(s.Thm.Accent).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(s.Thm.BorderDim).
		Width(s.Width-2).
		Padding(0, 1).
		Render("Help")

	parts := []string{title}
	if s.Searching || s.SearchQuery != "" {
		parts = append(parts, lipgloss.NewStyle().
			Width(s.Width-2).
			Padding(0, 1).
			Render(s.SearchInput.View()))
	}

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2).
		Render(s.Viewport.View())

	footer := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Width(s.Width - 2).
		Padding(0, 1).
		Render("j/k: scroll • Ctrl+d/u: page • /: search • esc: close")

	parts = append(parts, body, footer)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
