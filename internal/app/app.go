package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/history-timeline/internal/assets"
	"github.com/atomicstack/history-timeline/internal/backend"
	"github.com/atomicstack/history-timeline/internal/catalog"
	"github.com/atomicstack/history-timeline/internal/logging/events"
	"github.com/atomicstack/history-timeline/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadInterval = 500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	CatalogPath   string
	Category      catalog.CategoryID
	Width         int
	Height        int
	ShowFooter    bool
	CompactWidth  int
	AlignDelay    time.Duration
	FrameInterval time.Duration
	Watch         bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	events.Catalog.Loaded(cat.Source(), cat.Len())

	var watcher *backend.Watcher
	if cfg.Watch && strings.TrimSpace(cfg.CatalogPath) != "" {
		watcher, err = backend.NewWatcher(cfg.CatalogPath, reloadInterval)
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Catalog:         cat,
		Resolver:        assets.NewResolver(cat.BaseDir()),
		Watcher:         watcher,
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		CompactWidth:    cfg.CompactWidth,
		AlignDelay:      cfg.AlignDelay,
		FrameInterval:   cfg.FrameInterval,
		InitialCategory: cfg.Category,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
