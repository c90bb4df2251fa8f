package domain

import "time"

// Config is the fully resolved server configuration.
type Config struct {
	// Addr is the host:port the HTTP server listens on.
	Addr string
	// Dev enables one of the recompiler strategies.
	Dev bool
	// Strategy selects the dev-mode recompiler.
	Strategy Strategy
	// Backpressure makes the gate answer 503 instead of waiting while another
	// request holds the cache.
	Backpressure bool
	// MinScanInterval rate-limits gate scans. Zero scans on every request.
	MinScanInterval time.Duration
	// SrcDir is the source tree whose modification times decide staleness.
	SrcDir string
	// DistDir holds the built assets served over HTTP.
	DistDir string
	// CacheFile is the persisted modification-time cache.
	CacheFile string
	// Exclude lists directory names the scan does not descend into.
	Exclude []string
	// Steps are run in order whenever the gate finds the tree stale.
	Steps []BuildStep
	// Watchers are started in watch mode by the supervisor.
	Watchers []WatchSpec
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// ShutdownTimeout bounds graceful HTTP shutdown and child termination.
	ShutdownTimeout time.Duration
}

// Mode resolves the recompiler arrangement the configuration selects.
func (c *Config) Mode() Mode {
	if !c.Dev {
		return ModeProduction
	}
	if c.Strategy == StrategyWatch {
		return ModeWatch
	}
	return ModeGate
}

// Exclusions returns the configured exclusion set, falling back to the defaults.
func (c *Config) Exclusions() Exclusions {
	if len(c.Exclude) == 0 {
		return NewExclusions(DefaultExcludedDirs...)
	}
	return NewExclusions(c.Exclude...)
}
