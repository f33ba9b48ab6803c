package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/history-timeline/internal/assets"
	"github.com/atomicstack/history-timeline/internal/backend"
	"github.com/atomicstack/history-timeline/internal/catalog"
	"github.com/atomicstack/history-timeline/internal/theme"
	uistate "github.com/atomicstack/history-timeline/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth         = 80
	defaultHeight        = 24
	defaultAlignDelay    = 100 * time.Millisecond
	defaultFrameInterval = 16 * time.Millisecond
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog         *catalog.Catalog
	Resolver        *assets.Resolver
	Watcher         *backend.Watcher
	Width           int
	Height          int
	ShowFooter      bool
	CompactWidth    int
	AlignDelay      time.Duration
	FrameInterval   time.Duration
	InitialCategory catalog.CategoryID
}

// Model implements the Bubble Tea model for the timeline.
type Model struct {
	timeline *uistate.Timeline
	viewport *uistate.Viewport
	sections []sectionLayout
	swatches map[int]assets.Asset

	resolver *assets.Resolver
	backend  *backend.Watcher

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	alignDelay    time.Duration
	frameInterval time.Duration
	pendingAlign  int
	anim          animation
	animSeq       int

	search       textinput.Model
	searching    bool
	searchOrigin int

	errMsg  string
	infoMsg string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the timeline UI for a loaded catalog.
func NewModel(opts Options) *Model {
	cat := opts.Catalog
	if cat == nil {
		cat, _ = catalog.New(nil)
	}
	m := &Model{
		timeline:      uistate.NewTimeline(cat, opts.InitialCategory),
		viewport:      uistate.NewViewport(opts.CompactWidth),
		swatches:      make(map[int]assets.Asset),
		resolver:      opts.Resolver,
		backend:       opts.Watcher,
		width:         defaultWidth,
		height:        defaultHeight,
		showFooter:    opts.ShowFooter,
		alignDelay:    opts.AlignDelay,
		frameInterval: opts.FrameInterval,
	}
	if m.alignDelay <= 0 {
		m.alignDelay = defaultAlignDelay
	}
	if m.frameInterval <= 0 {
		m.frameInterval = defaultFrameInterval
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.search = newSearchInput()
	m.applySize()
	m.registerHandlers()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "find event"
	ti.PromptStyle = styles.FilterPrompt.Copy()
	ti.TextStyle = styles.Filter.Copy()
	ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	ti.Cursor.Style = styles.Cursor.Copy()
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.assetCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.searching {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(alignDueMsg{}):       m.handleAlignDueMsg,
		reflect.TypeOf(scrollFrameMsg{}):    m.handleScrollFrameMsg,
		reflect.TypeOf(assetsResolvedMsg{}): m.handleAssetsResolvedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate hands any image references that entered the asset window
// during this update to the resolver.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.assetCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Timeline exposes the navigation state.
func (m *Model) Timeline() *uistate.Timeline {
	return m.timeline
}

// Viewport exposes the scroll geometry.
func (m *Model) Viewport() *uistate.Viewport {
	return m.viewport
}

func (m *Model) bodyHeight() int {
	body := m.height - headerRows - bottomRows
	if body < 1 {
		return 1
	}
	return body
}
