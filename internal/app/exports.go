package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycollect/internal/app/screen"
	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/export"
	"github.com/chmouel/lazycollect/internal/log"
)

const (
	noSelectionMessage = "No files selected!"
	maxSkippedListed   = 5
)

// selectedOrWarn returns the selected paths, or shows the empty-selection
// warning and returns nil. It runs before any file is touched.
func (m *Model) selectedOrWarn() []string {
	if m.exporting {
		m.status = "An export is already running"
		return nil
	}
	paths := m.sel.Selected()
	if len(paths) == 0 {
		m.showMessage(screen.SeverityWarning, noSelectionMessage)
		return nil
	}
	return paths
}

func (m *Model) copySelection() tea.Cmd {
	paths := m.selectedOrWarn()
	if paths == nil {
		return nil
	}
	m.exporting = true
	root := m.config.Root
	cb := m.clipboard
	return func() tea.Msg {
		blob, skipped, err := export.Build(root, paths)
		msg := exportDoneMsg{action: actionCopy, files: len(paths) - len(skipped), skipped: skipped}
		if err != nil {
			msg.err = err
			return msg
		}
		msg.method, msg.err = cb.Copy(blob)
		return msg
	}
}

func (m *Model) writeSelection() tea.Cmd {
	paths := m.selectedOrWarn()
	if paths == nil {
		return nil
	}
	m.exporting = true
	root := m.config.Root
	target := m.config.OutputPath()
	return func() tea.Msg {
		blob, skipped, err := export.Build(root, paths)
		msg := exportDoneMsg{action: actionWrite, target: target, files: len(paths) - len(skipped), skipped: skipped}
		if err != nil {
			msg.err = err
			return msg
		}
		msg.err = export.WriteFile(target, blob)
		return msg
	}
}

// defaultTreeTarget is a sibling of the project so exported copies are not
// picked up by the next scan.
func (m *Model) defaultTreeTarget() string {
	return m.config.Root + "-collected"
}

// resolveTarget expands ~ and makes relative directories relative to the
// project root.
func (m *Model) resolveTarget(value string) (string, error) {
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(m.config.Root, expanded)
	}
	return filepath.Clean(expanded), nil
}

func (m *Model) promptCopyTree() tea.Cmd {
	if paths := m.selectedOrWarn(); paths == nil {
		return nil
	}

	input := screen.NewInputScreen("Export selected files to directory:", "directory", m.defaultTreeTarget(), m.theme)
	input.Validate = func(value string) string {
		if value == "" {
			return "Directory is required"
		}
		target, err := m.resolveTarget(value)
		if err != nil {
			return err.Error()
		}
		if export.SameDir(target, m.config.Root) {
			return "Choose a directory other than the project root"
		}
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			return fmt.Sprintf("%s is not a directory", target)
		}
		return ""
	}
	input.OnSubmit = func(value string) tea.Cmd {
		target, err := m.resolveTarget(value)
		if err != nil {
			m.showMessage(screen.SeverityError, err.Error())
			return nil
		}
		if !dirIsEmpty(target) {
			confirm := screen.NewConfirmScreen(fmt.Sprintf("%s is not empty.\nOverwrite files with the same path?", target), m.theme)
			confirm.ConfirmLabel = "Overwrite"
			confirm.OnConfirm = func() tea.Cmd {
				return m.copyTree(target)
			}
			m.screens.Push(confirm)
			return nil
		}
		return m.copyTree(target)
	}
	m.screens.Push(input)
	return nil
}

func (m *Model) copyTree(target string) tea.Cmd {
	paths := m.selectedOrWarn()
	if paths == nil {
		return nil
	}
	m.exporting = true
	root := m.config.Root
	return func() tea.Msg {
		n, skipped, err := export.CopyTree(root, paths, target)
		return exportDoneMsg{action: actionCopyTree, target: target, files: n, skipped: skipped, err: err}
	}
}

func dirIsEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	return err != nil || len(entries) == 0
}

func (m *Model) handleExportDone(msg exportDoneMsg) {
	m.exporting = false

	if msg.err != nil {
		log.Printf("app: %s failed: %v", strings.ToLower(msg.action.String()), msg.err)
		if errors.Is(msg.err, export.ErrNoSelection) {
			text := "None of the selected files could be read."
			if len(msg.skipped) > 0 {
				text += skippedNote(msg.skipped)
			}
			m.showMessage(screen.SeverityWarning, text)
			return
		}
		m.status = fmt.Sprintf("%s failed", msg.action)
		m.showMessage(screen.SeverityError, fmt.Sprintf("%s failed: %v", msg.action, msg.err))
		return
	}

	var text string
	switch msg.action {
	case actionCopy:
		text = fmt.Sprintf("Copied %s to the clipboard via %s.", pluralFiles(msg.files), msg.method)
	case actionWrite:
		text = fmt.Sprintf("Wrote %s to %s.", pluralFiles(msg.files), msg.target)
	default:
		text = fmt.Sprintf("Copied %s into %s.", pluralFiles(msg.files), msg.target)
	}
	m.status = text
	if len(msg.skipped) > 0 {
		text += skippedNote(msg.skipped)
	}
	m.showMessage(screen.SeverityInfo, text)
}

func skippedNote(skipped []error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nSkipped %s:", pluralFiles(len(skipped)))
	for i, err := range skipped {
		if i == maxSkippedListed {
			fmt.Fprintf(&b, "\n  ... and %d more", len(skipped)-maxSkippedListed)
			break
		}
		var skip *export.SkipError
		if errors.As(err, &skip) {
			fmt.Fprintf(&b, "\n  %s", skip.Path)
			continue
		}
		fmt.Fprintf(&b, "\n  %v", err)
	}
	return b.String()
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
