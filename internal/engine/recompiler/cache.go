// Package recompiler keeps built client assets in step with their sources.
// It owns the shared modification-time cache and the staleness gate that
// rebuilds on the request path.
package recompiler

import (
	"errors"
	"sync"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
)

// cache is the state shared by every Handle.
type cache struct {
	store  ports.SnapshotStore
	logger ports.Logger

	// mu guards snapshot. The gate holds it across compare, replace and rebuild.
	mu       sync.Mutex
	snapshot domain.Snapshot

	refMu sync.Mutex
	refs  int
}

// Handle is one owner of the shared modification-time cache. The cache is
// saved exactly once, when the last handle is closed.
type Handle struct {
	c *cache

	closeOnce sync.Once
	closed    bool
	closeErr  error
	mu        sync.Mutex
}

// LoadCache reads the persisted snapshot and returns the first owner handle.
// A missing cache file starts empty. A malformed one is logged and also starts
// empty. Any other read failure is returned.
func LoadCache(store ports.SnapshotStore, logger ports.Logger) (*Handle, error) {
	snapshot, err := store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrCacheCorrupt) {
			return nil, err
		}
		logger.Error(err)
		snapshot = nil
	}
	if snapshot == nil {
		snapshot = domain.NewSnapshot()
	}

	c := &cache{
		store:    store,
		logger:   logger,
		snapshot: snapshot,
		refs:     1,
	}
	return &Handle{c: c}, nil
}

// Share returns a new owner handle for the same cache.
func (h *Handle) Share() (*Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, domain.ErrCacheClosed
	}

	h.c.refMu.Lock()
	h.c.refs++
	h.c.refMu.Unlock()

	return &Handle{c: h.c}, nil
}

// Snapshot returns a copy of the accepted snapshot.
func (h *Handle) Snapshot() domain.Snapshot {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	return h.c.snapshot.Clone()
}

// Close releases this owner. The release that drops the owner count to zero
// persists the snapshot. Closing a handle more than once is a no-op.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()

		h.c.refMu.Lock()
		h.c.refs--
		last := h.c.refs == 0
		h.c.refMu.Unlock()

		if !last {
			return
		}

		h.c.mu.Lock()
		defer h.c.mu.Unlock()
		if err := h.c.store.Save(h.c.snapshot); err != nil {
			h.closeErr = zerr.Wrap(err, "failed to persist mod time cache")
		}
	})
	return h.closeErr
}
