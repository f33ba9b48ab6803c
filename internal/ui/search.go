package ui

import (
	"strings"

	"github.com/atomicstack/history-timeline/internal/logging/events"
	uistate "github.com/atomicstack/history-timeline/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// startSearch opens the find prompt, remembering the cursor so Esc can put it
// back.
func (m *Model) startSearch() tea.Cmd {
	m.cancelMotion()
	m.searching = true
	m.searchOrigin = m.timeline.ActiveIndex()
	m.errMsg = ""
	m.infoMsg = ""
	m.search.SetValue("")
	return m.search.Focus()
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.endSearch()
		events.Nav.SearchCancel(m.searchOrigin)
		return m.selectIndex(m.searchOrigin, "search-cancel")
	case "enter":
		m.endSearch()
		events.Nav.Search(m.search.Value(), m.timeline.ActiveIndex())
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	query := strings.TrimSpace(m.search.Value())
	target := m.searchOrigin
	if query != "" {
		target = uistate.BestMatchIndex(m.timeline.WorkingSet(), query)
	}
	if target < 0 || target == m.timeline.ActiveIndex() {
		return cmd
	}
	return tea.Batch(cmd, m.selectIndex(target, "search"))
}

func (m *Model) endSearch() {
	m.searching = false
	m.search.Blur()
}
