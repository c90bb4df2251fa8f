// Package cachefile persists the modification-time snapshot as a JSON file.
package cachefile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore using a flat JSON object that maps
// absolute paths to Unix-second timestamps.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at the given path.
// The file is not touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot from disk.
func (s *Store) Load() (domain.Snapshot, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewSnapshot(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return domain.NewSnapshot(), nil
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.NewSnapshot(), errors.Join(
			domain.ErrCacheCorrupt,
			zerr.With(zerr.Wrap(err, "failed to unmarshal mod time cache"), "path", s.path),
		)
	}
	if snapshot == nil {
		// A literal "null" decodes to a nil map.
		return domain.NewSnapshot(), nil
	}

	return snapshot, nil
}

// Save writes the snapshot as indented JSON, creating parent directories as needed.
func (s *Store) Save(snapshot domain.Snapshot) error {
	if snapshot == nil {
		snapshot = domain.NewSnapshot()
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Factory implements ports.SnapshotStoreFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a Store for path.
func (f *Factory) Open(path string) ports.SnapshotStore {
	return NewStore(path)
}
