package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding pageserver state.
	StateDirName = ".pageserver"

	// ModTimesFileName is the name of the persisted modification-time cache.
	ModTimesFileName = "mod_times.json"

	// ConfigFileName is the name of the server configuration file.
	ConfigFileName = "pageserver.yaml"

	// EnvPrefix is the prefix of environment variables that override configuration.
	EnvPrefix = "PAGESERVER_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultModTimesPath returns the default path of the modification-time cache.
// It joins .pageserver and mod_times.json.
func DefaultModTimesPath() string {
	return filepath.Join(StateDirName, ModTimesFileName)
}
