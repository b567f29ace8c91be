// Package observability provides hooks for diagnostics around search runs
// and board edits.
//
// This package enables optional instrumentation without adding hard
// dependencies on a specific logging or metrics backend. The entry point
// registers hooks at startup; the session package calls them as runs
// progress and as the user edits the board.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The per-dequeue console diagnostics of a run (cell and distance) are
// emitted through [SearchHooks.OnStep]; the CLI registers an
// implementation that writes them to the debug log.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    observability.SetEditHooks(&myEditHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnRunStart(ctx, runID, dim, start, end)
//	// ... step the search ...
//	observability.Search().OnRunComplete(ctx, runID, found, steps, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from search runs.
type SearchHooks interface {
	// OnRunStart is called once a run passed its preconditions.
	OnRunStart(ctx context.Context, runID string, dimension int, start, end grid.Pos)

	// OnStep is called after every unit of search work: a dequeue while
	// exploring or a marked cell while tracing. distance is the cell's hop
	// count from the start.
	OnStep(ctx context.Context, runID string, phase string, cell grid.Pos, distance int)

	// OnRunComplete is called when a run ends: found, exhausted, cancelled or failed.
	OnRunComplete(ctx context.Context, runID string, found bool, steps int, duration time.Duration, err error)
}

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from board edits.
type EditHooks interface {
	// OnEdit records an applied edit such as "start", "end", "obstacle" or "reset".
	OnEdit(ctx context.Context, action string, cell grid.Pos)

	// OnRejected records an input event that was refused.
	OnRejected(ctx context.Context, action string, err error)

	// OnClear records a full board rebuild.
	OnClear(ctx context.Context, dimension int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnRunStart(context.Context, string, int, grid.Pos, grid.Pos)          {}
func (NoopSearchHooks) OnStep(context.Context, string, string, grid.Pos, int)                {}
func (NoopSearchHooks) OnRunComplete(context.Context, string, bool, int, time.Duration, error) {}

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnEdit(context.Context, string, grid.Pos)  {}
func (NoopEditHooks) OnRejected(context.Context, string, error) {}
func (NoopEditHooks) OnClear(context.Context, int)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	editHooks   EditHooks   = NoopEditHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any run.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetEditHooks registers custom edit hooks.
// This should be called once at application startup before any edit.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	editHooks = NoopEditHooks{}
}
