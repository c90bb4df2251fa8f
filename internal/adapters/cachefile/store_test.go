package cachefile_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/k4g4/Personal-Page/internal/adapters/cachefile"
	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pageserver", "mod_times.json")
	store := cachefile.NewStore(path)

	snapshot := domain.Snapshot{
		"/src/index.ts":  1_700_000_000,
		"/src/input.css": 1_700_000_060,
		"/src/App.tsx":   -5,
	}
	require.NoError(t, store.Save(snapshot))

	got, err := cachefile.NewStore(path).Load()
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(got))
}

func TestStore_Save_PrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod_times.json")
	store := cachefile.NewStore(path)

	require.NoError(t, store.Save(domain.Snapshot{"/a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"/a\": 1\n}", string(data))
}

func TestStore_Save_NilSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod_times.json")
	require.NoError(t, cachefile.NewStore(path).Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		want        domain.Snapshot
		wantCorrupt bool
	}{
		{name: "Missing", content: nil, want: domain.Snapshot{}},
		{name: "Empty", content: ptr(""), want: domain.Snapshot{}},
		{name: "Null", content: ptr("null"), want: domain.Snapshot{}},
		{name: "Valid", content: ptr(`{"/x": 42}`), want: domain.Snapshot{"/x": 42}},
		{name: "NotJSON", content: ptr("not json"), want: domain.Snapshot{}, wantCorrupt: true},
		{name: "WrongShape", content: ptr(`["/x", 42]`), want: domain.Snapshot{}, wantCorrupt: true},
		{name: "FractionalTime", content: ptr(`{"/x": 1.5}`), want: domain.Snapshot{}, wantCorrupt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mod_times.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			got, err := cachefile.NewStore(path).Load()
			if tt.wantCorrupt {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrCacheCorrupt))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Load_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory read semantics differ on windows")
	}

	// A directory at the cache path is neither missing nor malformed.
	path := t.TempDir()
	_, err := cachefile.NewStore(path).Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCacheCorrupt))
	assert.Contains(t, err.Error(), domain.ErrCacheReadFailed.Error())
}

func TestStore_Save_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := cachefile.NewStore(filepath.Join(blocker, "mod_times.json")).Save(domain.Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheCreateFailed.Error())
}

func TestFactory_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store := cachefile.NewFactory().Open(path)

	require.NoError(t, store.Save(domain.Snapshot{"/y": 7}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]int64
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]int64{"/y": 7}, raw)
}

func ptr(s string) *string { return &s }
