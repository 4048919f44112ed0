package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycollect/internal/app/services"
	"github.com/chmouel/lazycollect/internal/log"
)

func (m *Model) startTreeWatcher() tea.Cmd {
	if m.watch == nil || m.watch.Started {
		return nil
	}
	started, err := m.watch.Start(m.config)
	if err != nil {
		log.Printf("app: auto refresh disabled: %v", err)
		return nil
	}
	if !started {
		return nil
	}
	return m.waitForTreeEvent()
}

func (m *Model) stopTreeWatcher() {
	if m.watch == nil || !m.watch.Started {
		return
	}
	m.watch.Stop()
}

func (m *Model) waitForTreeEvent() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	events := m.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return treeChangedMsg{}
	}
}

// handleTreeChanged re-arms the watcher and schedules one rescan after the
// debounce window, however many events arrive meanwhile.
func (m *Model) handleTreeChanged() tea.Cmd {
	m.watch.ResetWaiting()
	cmds := []tea.Cmd{m.waitForTreeEvent()}
	if !m.rescanPending {
		m.rescanPending = true
		cmds = append(cmds, rescanAfter(services.TreeWatchDebounce))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleRescanDue() tea.Cmd {
	if m.scanning {
		return rescanAfter(services.TreeWatchDebounce)
	}
	m.rescanPending = false
	return m.startScan(true)
}

func rescanAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return rescanDueMsg{}
	})
}
