package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg hit-tests presses against the same geometry the view draws:
// tabs on the first row, then the rail and the sections in the body.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.searching {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		return m.userScroll(-wheelStep)
	case tea.MouseButtonWheelDown:
		return m.userScroll(wheelStep)
	case tea.MouseButtonLeft:
		if mouse.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	if mouse.Y == 0 {
		if !m.viewport.TabsVisible() {
			return nil
		}
		if category, ok := m.tabAt(mouse.X); ok {
			return m.selectCategory(category)
		}
		return nil
	}

	row := mouse.Y - headerRows
	if row < 0 || row >= m.bodyHeight() || m.timeline.Len() == 0 {
		return nil
	}
	if mouse.X < m.railWidth() {
		if index, ok := m.railRows()[row]; ok {
			return m.selectIndex(index, "rail")
		}
		return nil
	}
	if index := m.viewport.SectionAtRow(row); index >= 0 {
		return m.selectIndex(index, "click")
	}
	return nil
}
