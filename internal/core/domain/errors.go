package domain

import "go.trai.ch/zerr"

var (
	// ErrScanFailed is returned when the source tree cannot be scanned.
	ErrScanFailed = zerr.New("failed to scan source tree")

	// ErrDirReadFailed is returned when a directory cannot be opened or listed.
	ErrDirReadFailed = zerr.New("failed to read directory")

	// ErrFileInfoFailed is returned when a directory entry's metadata cannot be read.
	ErrFileInfoFailed = zerr.New("failed to read file metadata")

	// ErrCacheReadFailed is returned when the modification-time cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read mod time cache")

	// ErrCacheCorrupt is returned when the modification-time cache is not valid JSON.
	ErrCacheCorrupt = zerr.New("mod time cache is malformed")

	// ErrCacheMarshalFailed is returned when the modification-time cache cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal mod time cache")

	// ErrCacheWriteFailed is returned when the modification-time cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write mod time cache")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create mod time cache directory")

	// ErrCacheClosed is returned when a released cache handle is used.
	ErrCacheClosed = zerr.New("mod time cache handle is closed")

	// ErrEmptyCommand is returned when a build step or watcher has no command.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrStepLaunchFailed is returned when a build step's executable cannot be started.
	ErrStepLaunchFailed = zerr.New("failed to launch build step")

	// ErrStepFailed is returned when a build step exits with a non-zero status.
	ErrStepFailed = zerr.New("build step failed")

	// ErrSpawnFailed is returned when a watch-mode process cannot be started.
	ErrSpawnFailed = zerr.New("failed to spawn watcher")

	// ErrStopFailed is returned when a watch-mode process cannot be terminated.
	ErrStopFailed = zerr.New("failed to stop watcher")

	// ErrSupervisorStarted is returned when Start is called on a running supervisor.
	ErrSupervisorStarted = zerr.New("supervisor already started")

	// ErrSupervisorClosed is returned when Start is called after Close.
	ErrSupervisorClosed = zerr.New("supervisor is closed")

	// ErrStreamReadFailed is returned when a supervised output stream fails mid-read.
	ErrStreamReadFailed = zerr.New("failed to read process output")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to apply environment overrides")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrDuplicateWatcher is returned when two watchers are given the same name.
	ErrDuplicateWatcher = zerr.New("duplicate watcher name")

	// ErrInvalidStrategy is returned when the dev strategy is neither "gate" nor "watch".
	ErrInvalidStrategy = zerr.New("invalid strategy, expected 'gate' or 'watch'")

	// ErrBuildFailed is returned by a one-off build when any step fails.
	ErrBuildFailed = zerr.New("one or more build steps failed")

	// ErrServerFailed is returned when the HTTP server stops with an error.
	ErrServerFailed = zerr.New("http server failed")
)
