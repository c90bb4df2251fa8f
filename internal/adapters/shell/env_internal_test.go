package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		stepEnv  map[string]string
		expected []string
	}{
		{
			name:     "System Only",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "Step Adds",
			sysEnv:   []string{"PATH=/bin"},
			stepEnv:  map[string]string{"NODE_ENV": "development"},
			expected: []string{"NODE_ENV=development", "PATH=/bin"},
		},
		{
			name:     "Step Overrides",
			sysEnv:   []string{"NODE_ENV=production", "PATH=/bin"},
			stepEnv:  map[string]string{"NODE_ENV": "development"},
			expected: []string{"NODE_ENV=development", "PATH=/bin"},
		},
		{
			name:     "Malformed Entries Dropped",
			sysEnv:   []string{"NOEQUALS", "=value", "A=b=c"},
			expected: []string{"A=b=c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.stepEnv))
		})
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not meaningful on windows")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "bun")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // Test executable
	plain := filepath.Join(dir, "notes")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o600))

	got, err := lookPath("bun", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("notes", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("bun", []string{"HOME=/tmp"})
	require.Error(t, err)
}
