// Package ui contains the Bubble Tea program that renders the history
// timeline. The Model type focuses on message orchestration, while dedicated
// helpers own navigation, scrolling, pointer input, search, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys in navigation.go, mouse in mouse.go, timers in scroll.go).
//   - Every handler reads and writes the single state.Timeline held by the
//     model, so no handler ever observes a stale category or cursor.
//
// State ownership:
//   - internal/ui/state.Timeline owns the selected category, the working set,
//     the per-category cursors and the asset window.
//   - internal/ui/state.Viewport owns the scroll geometry. Only user scrolls
//     (wheel and page keys) derive the cursor from it; alignment writes the
//     offset without feeding back.
//
// Deferred work:
//   - A category change schedules an alignDueMsg tagged with the timeline
//     generation. Any direct cursor write or later category change clears the
//     pending generation, so the late tick is dropped.
//   - Smooth scrolling is a chain of scrollFrameMsg ticks carrying an animation
//     token; user input invalidates the token.
//   - Asset batches resolve in a tea.Cmd and are discarded when their
//     generation is no longer current.
//   - A backend.Watcher streams catalog reloads; Update waits for those events
//     and hands them to applyBackendEvent.
package ui
