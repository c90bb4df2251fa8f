package domain_test

import (
	"testing"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Equal(t *testing.T) {
	base := domain.Snapshot{
		"/src/a.tsx": 100,
		"/src/b.tsx": 200,
		"/src/c.css": 300,
	}

	tests := []struct {
		name  string
		other domain.Snapshot
		equal bool
	}{
		{
			name:  "Identical",
			other: domain.Snapshot{"/src/c.css": 300, "/src/a.tsx": 100, "/src/b.tsx": 200},
			equal: true,
		},
		{
			name:  "Added File",
			other: domain.Snapshot{"/src/a.tsx": 100, "/src/b.tsx": 200, "/src/c.css": 300, "/src/d.ts": 1},
			equal: false,
		},
		{
			name:  "Removed File",
			other: domain.Snapshot{"/src/a.tsx": 100, "/src/b.tsx": 200},
			equal: false,
		},
		{
			name:  "Modified Timestamp",
			other: domain.Snapshot{"/src/a.tsx": 100, "/src/b.tsx": 201, "/src/c.css": 300},
			equal: false,
		},
		{
			name:  "Renamed File",
			other: domain.Snapshot{"/src/a.tsx": 100, "/src/b2.tsx": 200, "/src/c.css": 300},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, base.Equal(tt.other))
			assert.Equal(t, tt.equal, tt.other.Equal(base))
		})
	}
}

func TestSnapshot_EqualReflexive(t *testing.T) {
	snapshots := []domain.Snapshot{
		nil,
		domain.NewSnapshot(),
		{"/a": 1},
		{"/a": 1, "/b": 2, "/c/d/e": 3},
	}
	for _, s := range snapshots {
		assert.True(t, s.Equal(s))
		assert.True(t, s.Equal(s.Clone()))
	}
}

func TestSnapshot_NilEqualsEmpty(t *testing.T) {
	var nilSnapshot domain.Snapshot
	assert.True(t, nilSnapshot.Equal(domain.NewSnapshot()))
}

func TestSnapshot_Record_Overwrites(t *testing.T) {
	s := domain.NewSnapshot()
	s.Record(domain.FileTimestamp{Path: "/a", ModTime: 1})
	s.Record(domain.FileTimestamp{Path: "/a", ModTime: 2})

	require.Len(t, s, 1)
	assert.Equal(t, int64(2), s["/a"])
}

func TestSnapshot_Diff(t *testing.T) {
	prev := domain.Snapshot{"/a": 1, "/b": 2, "/c": 3}
	next := domain.Snapshot{"/a": 1, "/b": 5, "/d": 4}

	d := prev.Diff(next)

	assert.Equal(t, []string{"/d"}, d.Added)
	assert.Equal(t, []string{"/c"}, d.Removed)
	assert.Equal(t, []string{"/b"}, d.Modified)
	assert.False(t, d.Empty())
	assert.Equal(t, "1 added, 1 removed, 1 modified", d.String())

	assert.True(t, next.Diff(next.Clone()).Empty())
}

func TestSnapshot_Digest(t *testing.T) {
	a := domain.Snapshot{"/a": 1, "/b": 2}
	b := domain.Snapshot{"/b": 2, "/a": 1}
	c := domain.Snapshot{"/a": 1, "/b": 3}

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
	assert.Len(t, a.Digest(), 16)
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	orig := domain.Snapshot{"/a": 1}
	clone := orig.Clone()
	clone["/a"] = 2

	assert.Equal(t, int64(1), orig["/a"])
}
