package domain

import (
	"encoding/binary"
	"fmt"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// FileTimestamp is a single scanned file: its absolute path and its
// modification time in seconds since the Unix epoch.
type FileTimestamp struct {
	Path    string
	ModTime int64
}

// Snapshot maps absolute file paths to their modification time in seconds
// since the Unix epoch. It holds exactly one entry per regular file found
// under a scan root.
type Snapshot map[string]int64

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot {
	return make(Snapshot)
}

// Record stores ts in the snapshot, overwriting any prior entry for the same path.
func (s Snapshot) Record(ts FileTimestamp) {
	s[ts.Path] = ts.ModTime
}

// Equal reports whether s and other hold the same key set with the same
// timestamp for every key. A nil snapshot equals an empty one.
func (s Snapshot) Equal(other Snapshot) bool {
	return maps.Equal(s, other)
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return NewSnapshot()
	}
	return maps.Clone(s)
}

// Paths returns the snapshot's paths in lexical order.
func (s Snapshot) Paths() []string {
	return slices.Sorted(maps.Keys(s))
}

// SnapshotDiff lists the paths that differ between two snapshots.
type SnapshotDiff struct {
	Added    []string
	Removed  []string
	Modified []string
}

// Empty reports whether the diff contains no changes.
func (d SnapshotDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// String summarizes the diff as counts.
func (d SnapshotDiff) String() string {
	return fmt.Sprintf("%d added, %d removed, %d modified", len(d.Added), len(d.Removed), len(d.Modified))
}

// Diff compares s (the previous snapshot) against next and returns the
// sorted paths that were added, removed, or modified.
func (s Snapshot) Diff(next Snapshot) SnapshotDiff {
	var d SnapshotDiff
	for path, mtime := range next {
		prev, ok := s[path]
		switch {
		case !ok:
			d.Added = append(d.Added, path)
		case prev != mtime:
			d.Modified = append(d.Modified, path)
		}
	}
	for path := range s {
		if _, ok := next[path]; !ok {
			d.Removed = append(d.Removed, path)
		}
	}
	slices.Sort(d.Added)
	slices.Sort(d.Removed)
	slices.Sort(d.Modified)
	return d
}

// Digest returns an order-independent XXHash fingerprint of the snapshot.
// Equal snapshots always have equal digests; it is meant for logs and
// display, never as a substitute for Equal.
func (s Snapshot) Digest() string {
	hasher := xxhash.New()
	var buf [8]byte
	for _, path := range s.Paths() {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(s[path])) //nolint:gosec // bit pattern only
		_, _ = hasher.Write(buf[:])
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
