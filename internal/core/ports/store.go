package ports

import "github.com/k4g4/Personal-Page/internal/core/domain"

// SnapshotStore persists the accepted modification-time snapshot between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load returns the persisted snapshot. A missing file yields an empty
	// snapshot and no error. A malformed file yields an empty snapshot together
	// with an error joined to domain.ErrCacheCorrupt.
	Load() (domain.Snapshot, error)

	// Save writes the snapshot, replacing any previous contents.
	Save(snapshot domain.Snapshot) error
}

// SnapshotStoreFactory opens a SnapshotStore for a cache file path.
type SnapshotStoreFactory interface {
	Open(path string) SnapshotStore
}
