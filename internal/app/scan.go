package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycollect/internal/app/screen"
	"github.com/chmouel/lazycollect/internal/log"
	"github.com/chmouel/lazycollect/internal/scanner"
	"github.com/chmouel/lazycollect/internal/selection"
)

const loadingTickInterval = 120 * time.Millisecond

// startScan walks the project in a command. Quiet scans, triggered by the
// watcher, do not open the loading screen.
func (m *Model) startScan(quiet bool) tea.Cmd {
	if m.scanning {
		return nil
	}
	m.scanGen++
	gen := m.scanGen

	ctx, cancel := context.WithCancel(m.ctx)
	found := &atomic.Int64{}
	m.scanning = true
	m.scanCancel = cancel
	m.scanFound = found

	opts := scanner.OptionsFromConfig(m.config)
	opts.Progress = func(n int) { found.Store(int64(n)) }

	scan := func() tea.Msg {
		res, err := scanner.Scan(ctx, opts)
		return scanDoneMsg{gen: gen, result: res, err: err}
	}
	if quiet {
		return scan
	}

	loading := screen.NewLoadingScreen(fmt.Sprintf("Scanning %s...", m.projectName()), m.theme, nil)
	loading.OnCancel = func() tea.Cmd {
		m.cancelScan()
		return nil
	}
	m.screens.Push(loading)
	return tea.Batch(scan, loadingTick(gen))
}

func loadingTick(gen int) tea.Cmd {
	return tea.Tick(loadingTickInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{gen: gen}
	})
}

func (m *Model) cancelScan() {
	if m.scanCancel != nil {
		m.scanCancel()
	}
}

func (m *Model) handleLoadingTick(msg loadingTickMsg) tea.Cmd {
	if msg.gen != m.scanGen || !m.scanning {
		return nil
	}
	if ls, ok := m.screens.Current().(*screen.LoadingScreen); ok {
		ls.Found = int(m.scanFound.Load())
		ls.Tick()
	}
	return loadingTick(msg.gen)
}

func (m *Model) handleScanDone(msg scanDoneMsg) tea.Cmd {
	if msg.gen != m.scanGen {
		return nil
	}
	m.scanning = false
	m.cancelScan()
	m.scanCancel = nil
	m.screens.Dismiss(screen.TypeLoading)

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			m.status = "Scan cancelled"
			return nil
		}
		log.Printf("app: scan failed: %v", msg.err)
		m.showMessage(screen.SeverityError, fmt.Sprintf("Scan failed: %v", msg.err))
		return nil
	}

	next := selection.New(msg.result.Categories, msg.result)
	if m.scanned {
		next = selection.Carry(m.sel, next)
	}
	m.sel = next
	m.scanned = true
	m.rebuildRows()
	m.status = fmt.Sprintf("Found %d files", m.sel.Total())
	return nil
}
