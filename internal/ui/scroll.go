package ui

import (
	"time"

	"github.com/atomicstack/history-timeline/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// alignDueMsg fires after the category-change delay. It is only honoured
// while its generation is still the pending one.
type alignDueMsg struct {
	generation int
}

// scrollFrameMsg advances the smooth scroll identified by token.
type scrollFrameMsg struct {
	token int
}

type animation struct {
	token  int
	index  int
	active bool
}

func deferredAlignCmd(generation int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return alignDueMsg{generation: generation}
	})
}

func (m *Model) frameCmd(token int) tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{token: token}
	})
}

// cancelMotion drops any in-flight smooth scroll and pending deferred
// alignment. Every direct cursor write goes through here first.
func (m *Model) cancelMotion() {
	m.anim.active = false
	m.pendingAlign = 0
}

// alignActive brings the active cursor's section to the middle of the body,
// either at once or as a series of frames. Programmatic offset changes never
// feed back into the cursor.
func (m *Model) alignActive(smooth bool) tea.Cmd {
	if m.timeline.Len() == 0 {
		return nil
	}
	index := m.timeline.ActiveIndex()
	target, ok := m.viewport.AlignOffset(index)
	if !ok {
		return nil
	}
	events.Scroll.Align(index, target, smooth)
	m.animSeq++
	if !smooth || m.viewport.Offset() == target {
		m.anim = animation{}
		m.viewport.ScrollTo(target)
		return nil
	}
	m.anim = animation{token: m.animSeq, index: index, active: true}
	return m.frameCmd(m.anim.token)
}

func (m *Model) handleScrollFrameMsg(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(scrollFrameMsg)
	if !ok {
		return nil
	}
	if !m.anim.active || frame.token != m.anim.token {
		events.Scroll.Stale("frame", frame.token)
		return nil
	}
	target, ok := m.viewport.AlignOffset(m.anim.index)
	if !ok {
		m.anim.active = false
		return nil
	}
	current := m.viewport.Offset()
	delta := (target - current) / 3
	if delta == 0 {
		delta = target - current
		switch {
		case delta > 0:
			delta = 1
		case delta < 0:
			delta = -1
		}
	}
	m.viewport.ScrollTo(current + delta)
	if m.viewport.Offset() != target {
		return m.frameCmd(m.anim.token)
	}
	m.settle()
	return nil
}

// settle ends the animation and checks that the centred section is the one
// the cursor points at.
func (m *Model) settle() {
	m.anim.active = false
	index := m.anim.index
	offset := m.viewport.Offset()
	if derived := m.viewport.CurrentIndex(); derived != index {
		events.Scroll.Divergence(index, derived, offset)
		return
	}
	events.Scroll.Settle(index, offset)
}

func (m *Model) handleAlignDueMsg(msg tea.Msg) tea.Cmd {
	due, ok := msg.(alignDueMsg)
	if !ok {
		return nil
	}
	if due.generation == 0 || due.generation != m.pendingAlign || due.generation != m.timeline.Generation() {
		events.Scroll.Stale("align", due.generation)
		return nil
	}
	m.pendingAlign = 0
	return m.alignActive(true)
}

// userScroll moves the viewport on behalf of the user and lets the centred
// section take over the cursor.
func (m *Model) userScroll(delta int) tea.Cmd {
	m.cancelMotion()
	m.viewport.ScrollBy(delta)
	derived := m.viewport.CurrentIndex()
	events.Scroll.User(m.viewport.Offset(), delta, derived)
	if m.timeline.Len() > 0 && derived != m.timeline.ActiveIndex() {
		if m.timeline.Select(derived) {
			m.traceCursor("scroll")
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.applySize()
	events.App.Resize(m.width, m.height, m.viewport.Compact())
	// Resizing never moves the cursor; the viewport follows it.
	m.anim.active = false
	return m.alignActive(false)
}
