package state

import (
	"strings"

	"github.com/atomicstack/history-timeline/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterEvents returns the working set for a category: every event for All,
// otherwise the events tagged with c in catalog order. The result never
// aliases the input.
func FilterEvents(events []catalog.Event, c catalog.CategoryID) []catalog.Event {
	if c == catalog.All {
		return CloneEvents(events)
	}
	filtered := make([]catalog.Event, 0, len(events))
	for _, event := range events {
		if event.Category == c {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// CountByCategory returns the working set size of every category.
func CountByCategory(events []catalog.Event) map[catalog.CategoryID]int {
	counts := make(map[catalog.CategoryID]int, len(catalog.Categories()))
	for _, id := range catalog.Categories() {
		counts[id] = 0
	}
	counts[catalog.All] = len(events)
	for _, event := range events {
		if event.Category != catalog.All {
			counts[event.Category]++
		}
	}
	return counts
}

// CloneEvents produces a shallow copy of the provided events.
func CloneEvents(events []catalog.Event) []catalog.Event {
	dup := make([]catalog.Event, len(events))
	copy(dup, events)
	return dup
}

// BestMatchIndex returns the index of the event whose title best matches the
// query, or -1 when nothing matches.
func BestMatchIndex(events []catalog.Event, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(events) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, event := range events {
		if strings.EqualFold(event.Title, trimmed) || event.YearLabel() == trimmed {
			return i
		}
	}
	for i, event := range events {
		if strings.HasPrefix(strings.ToLower(event.Title), lower) {
			return i
		}
	}
	for i, event := range events {
		if strings.Contains(strings.ToLower(event.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(events))
	for i, event := range events {
		titles[i] = event.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(events) {
		return -1
	}
	return best.OriginalIndex
}
