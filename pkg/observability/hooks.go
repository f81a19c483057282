// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about network loading and route searches.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, so the network and route packages stay free
// of any logging or metrics imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Load().OnLoadStart(ctx, path)
//	n, err := lines.Load(path, opts)
//	observability.Load().OnLoadComplete(ctx, path, n.Len(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from reading a lines source and building its
// state graph.
type LoadHooks interface {
	// OnLoadStart is called before a lines source is read.
	OnLoadStart(ctx context.Context, source string)

	// OnLoadComplete is called after a lines source was read and validated.
	OnLoadComplete(ctx context.Context, source string, lineCount int, duration time.Duration, err error)

	// OnGraphBuilt is called once the state graph of a network exists.
	OnGraphBuilt(ctx context.Context, states, edges int, duration time.Duration)
}

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from route searches.
type SearchHooks interface {
	// OnSearchStart is called before a search between two stations.
	OnSearchStart(ctx context.Context, start, end string)

	// OnSearchComplete reports the outcome of a search. hops is -1 when no
	// route was found.
	OnSearchComplete(ctx context.Context, start, end, status string, hops int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoadStart(context.Context, string)                                {}
func (NoopLoadHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopLoadHooks) OnGraphBuilt(context.Context, int, int, time.Duration)              {}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, string) {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, string, string, int, time.Duration) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks   LoadHooks   = NoopLoadHooks{}
	searchHooks SearchHooks = NoopSearchHooks{}
	hooksMu     sync.RWMutex
)

// SetLoadHooks registers custom load hooks.
// This should be called once at application startup before any network is loaded.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
	searchHooks = NoopSearchHooks{}
}
