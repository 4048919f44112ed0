// Package app implements the lazycollect terminal UI.
package app

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycollect/internal/app/screen"
	"github.com/chmouel/lazycollect/internal/app/services"
	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/export"
	"github.com/chmouel/lazycollect/internal/log"
	"github.com/chmouel/lazycollect/internal/selection"
	"github.com/chmouel/lazycollect/internal/theme"
)

// Model is the Bubble Tea model of the file picker.
//
// The selection is only replaced through selection.Update from inside
// Update, so every change to it happens on the program goroutine.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme
	ctx    context.Context
	cancel context.CancelFunc

	sel     selection.State
	scanned bool
	rows    []row
	cursor  int
	offset  int

	filterInput   textinput.Model
	filterQuery   string
	showingFilter bool

	screens *screen.Manager

	scanGen    int
	scanning   bool
	scanCancel context.CancelFunc
	scanFound  *atomic.Int64

	watch         *services.TreeWatchService
	rescanPending bool

	exporting bool
	clipboard *export.Clipboard
	status    string

	windowWidth  int
	windowHeight int
	quitting     bool
}

// NewModel creates the model for cfg. cfg.Root defaults to the working
// directory.
func NewModel(cfg *config.AppConfig) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg.Root == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.Root = wd
		}
	}
	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}

	ctx, cancel := context.WithCancel(context.Background())

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter files..."
	filterInput.Prompt = ""
	filterInput.CharLimit = 256
	filterInput.Width = 50

	return &Model{
		config:      cfg,
		theme:       theme.GetTheme(cfg.Theme),
		ctx:         ctx,
		cancel:      cancel,
		filterInput: filterInput,
		screens:     screen.NewManager(),
		watch:       services.NewTreeWatchService(cfg, log.Printf),
		clipboard:   export.NewClipboard(os.Stderr),
	}
}

// Init starts the initial scan and, when enabled, the tree watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.startScan(false),
		m.startTreeWatcher(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		if hs, ok := m.screens.Current().(*screen.HelpScreen); ok {
			hs.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scanDoneMsg:
		return m, m.handleScanDone(msg)

	case loadingTickMsg:
		return m, m.handleLoadingTick(msg)

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil

	case treeChangedMsg:
		return m, m.handleTreeChanged()

	case rescanDueMsg:
		return m, m.handleRescanDue()
	}

	if m.showingFilter {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Selection returns the current selection.
func (m *Model) Selection() selection.State {
	return m.sel
}

// Close releases the scan context and stops the watcher.
func (m *Model) Close() {
	m.cancelScan()
	m.stopTreeWatcher()
	m.cancel()
}

func (m *Model) dispatch(msg selection.Msg) {
	m.sel = selection.Update(m.sel, msg)
}

func (m *Model) projectName() string {
	return filepath.Base(m.config.Root)
}

func (m *Model) showMessage(severity screen.Severity, message string) {
	m.screens.Push(screen.NewMessageScreen(severity, message, m.theme))
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}
