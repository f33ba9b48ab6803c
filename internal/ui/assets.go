package ui

import (
	"context"
	"sort"

	"github.com/atomicstack/history-timeline/internal/assets"
	"github.com/atomicstack/history-timeline/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// assetsResolvedMsg carries resolved swatches for one generation.
type assetsResolvedMsg struct {
	generation int
	assets     map[int]assets.Asset
	err        error
}

// assetCmd resolves the image references that entered the asset window since
// the last call. It returns nil when nothing is new.
func (m *Model) assetCmd() tea.Cmd {
	fresh := m.timeline.TakeFreshAssets()
	if len(fresh) == 0 || m.resolver == nil {
		return nil
	}
	gen := m.timeline.Generation()
	indices := make([]int, 0, len(fresh))
	for i := range fresh {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	events.Asset.Queue(gen, indices)
	resolver := m.resolver
	return func() tea.Msg {
		resolved, err := resolver.ResolveAll(context.Background(), fresh)
		return assetsResolvedMsg{generation: gen, assets: resolved, err: err}
	}
}

func (m *Model) handleAssetsResolvedMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(assetsResolvedMsg)
	if !ok {
		return nil
	}
	if res.generation != m.timeline.Generation() {
		events.Asset.Stale(res.generation, m.timeline.Generation())
		return nil
	}
	// Failed references are logged and left without a swatch.
	events.Asset.Error(res.err)
	for index, asset := range res.assets {
		if _, loaded := m.timeline.Asset(index); !loaded {
			continue
		}
		m.swatches[index] = asset
	}
	events.Asset.Resolved(res.generation, len(res.assets))
	return nil
}

func (m *Model) resetSwatches() {
	m.swatches = make(map[int]assets.Asset)
}
