package ui

import (
	"github.com/atomicstack/history-timeline/internal/catalog"
	"github.com/atomicstack/history-timeline/internal/logging/events"
	uistate "github.com/atomicstack/history-timeline/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	switch key := keyMsg.String(); key {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		m.errMsg = ""
		m.infoMsg = ""
		return nil
	case "up", "k":
		return m.step(uistate.Up)
	case "down", "j":
		return m.step(uistate.Down)
	case "left", "h":
		return m.changeTab(uistate.Left)
	case "right", "l":
		return m.changeTab(uistate.Right)
	case "home", "g":
		m.cancelMotion()
		if m.timeline.MoveHome() {
			m.traceCursor("home")
		}
		return m.alignActive(false)
	case "end", "G":
		m.cancelMotion()
		if m.timeline.MoveEnd() {
			m.traceCursor("end")
		}
		return m.alignActive(false)
	case "pgup":
		return m.userScroll(-m.bodyHeight())
	case "pgdown", " ":
		return m.userScroll(m.bodyHeight())
	case "/":
		return m.startSearch()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			ids := catalog.Categories()
			if n := int(key[0] - '1'); n < len(ids) {
				return m.selectCategory(ids[n])
			}
		}
	}
	return nil
}

// step moves the cursor one event and jumps the viewport to it.
func (m *Model) step(dir uistate.Direction) tea.Cmd {
	m.cancelMotion()
	if m.timeline.MoveRelative(dir) {
		m.traceCursor(dir.String())
	}
	return m.alignActive(false)
}

func (m *Model) changeTab(dir uistate.Direction) tea.Cmd {
	from := m.timeline.Category()
	if to := m.timeline.ChangeTab(dir); to == from {
		return nil
	}
	return m.categoryChanged(from)
}

// selectCategory switches the working set. Selecting the current category
// does nothing.
func (m *Model) selectCategory(c catalog.CategoryID) tea.Cmd {
	from := m.timeline.Category()
	if !m.timeline.SelectCategory(c) {
		return nil
	}
	return m.categoryChanged(from)
}

// categoryChanged rebuilds the layout for the new working set and schedules
// the deferred alignment to its first event.
func (m *Model) categoryChanged(from catalog.CategoryID) tea.Cmd {
	m.cancelMotion()
	m.resetSwatches()
	m.relayout()
	gen := m.timeline.Generation()
	events.Nav.Category(string(from), string(m.timeline.Category()), gen)
	m.pendingAlign = gen
	return deferredAlignCmd(gen, m.alignDelay)
}

// selectIndex points the cursor at a working-set index and smooth-scrolls
// to it.
func (m *Model) selectIndex(index int, source string) tea.Cmd {
	m.cancelMotion()
	if m.timeline.Select(index) {
		m.traceCursor(source)
	}
	return m.alignActive(true)
}

func (m *Model) traceCursor(source string) {
	events.Nav.Cursor(string(m.timeline.Category()), m.timeline.ActiveIndex(), source)
}
