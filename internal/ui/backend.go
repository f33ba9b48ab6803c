package ui

import (
	"fmt"

	"github.com/atomicstack/history-timeline/internal/backend"
	"github.com/atomicstack/history-timeline/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded catalog. A failed reload keeps the
// current catalog and reports the error on the status line.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		events.Catalog.Error(evt.Err)
		m.errMsg = fmt.Sprintf("catalog reload failed: %v", evt.Err)
		return nil
	}
	if evt.Catalog == nil {
		return nil
	}
	m.cancelMotion()
	m.timeline.Reload(evt.Catalog)
	m.resetSwatches()
	m.relayout()
	m.errMsg = ""
	m.infoMsg = fmt.Sprintf("reloaded %d events", evt.Catalog.Len())
	events.Catalog.Reload(evt.Catalog.Source(), evt.Catalog.Len())
	return m.alignActive(false)
}
