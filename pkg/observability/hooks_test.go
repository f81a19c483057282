package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Load hooks
	l := NoopLoadHooks{}
	l.OnLoadStart(ctx, "./lines")
	l.OnLoadComplete(ctx, "./lines", 8, time.Millisecond, nil)
	l.OnGraphBuilt(ctx, 160, 420, time.Millisecond)

	// Search hooks
	s := NoopSearchHooks{}
	s.OnSearchStart(ctx, "Espanya", "Sagrada Família")
	s.OnSearchComplete(ctx, "Espanya", "Sagrada Família", "found", 9, time.Microsecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Load() should return NoopLoadHooks by default")
	}
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Search() should return NoopSearchHooks by default")
	}

	// Set custom hooks
	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Load() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	customSearch := &testSearchHooks{}
	SetSearchHooks(customSearch)
	if Search() != customSearch {
		t.Error("SetSearchHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Reset() should restore NoopLoadHooks")
	}
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset() should restore NoopSearchHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSearchHooks{}
	SetSearchHooks(custom)

	// Setting nil should be ignored
	SetSearchHooks(nil)

	if Search() != custom {
		t.Error("SetSearchHooks(nil) should be ignored")
	}

	Reset()
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testSearchHooks{}
	SetSearchHooks(h)

	ctx := context.Background()
	Search().OnSearchStart(ctx, "A", "C")
	Search().OnSearchComplete(ctx, "A", "C", "found", 2, time.Microsecond)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.completed != 1 || h.lastStatus != "found" {
		t.Errorf("completed=%d lastStatus=%q", h.completed, h.lastStatus)
	}
}

// Test implementations
type testLoadHooks struct{ NoopLoadHooks }

type testSearchHooks struct {
	NoopSearchHooks
	mu         sync.Mutex
	completed  int
	lastStatus string
}

func (h *testSearchHooks) OnSearchComplete(_ context.Context, _, _, status string, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
	h.lastStatus = status
}
