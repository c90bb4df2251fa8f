package config

import "time"

// Pagefile represents the structure of the pageserver.yaml configuration file.
type Pagefile struct {
	Addr            string        `yaml:"addr"`
	Dev             bool          `yaml:"dev"`
	Strategy        string        `yaml:"strategy"`
	Gate            GateDTO       `yaml:"gate"`
	Paths           PathsDTO      `yaml:"paths"`
	Exclude         []string      `yaml:"exclude"`
	Steps           []CommandDTO  `yaml:"steps"`
	Watchers        []CommandDTO  `yaml:"watchers"`
	Log             LogDTO        `yaml:"log"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GateDTO configures the staleness gate.
type GateDTO struct {
	Backpressure    bool          `yaml:"backpressure"`
	MinScanInterval time.Duration `yaml:"min_scan_interval"`
}

// PathsDTO locates the client project. Relative paths are resolved against
// the working directory.
type PathsDTO struct {
	Client    string `yaml:"client"`
	Src       string `yaml:"src"`
	Dist      string `yaml:"dist"`
	CacheFile string `yaml:"cache_file"`
}

// CommandDTO is a build step or watcher definition.
type CommandDTO struct {
	Name        string            `yaml:"name"`
	Cmd         []string          `yaml:"cmd"`
	Dir         string            `yaml:"dir"`
	Environment map[string]string `yaml:"environment"`
}

// LogDTO configures log output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// envOverrides lists every setting that can be overridden from the
// environment. Variable names carry the PAGESERVER_ prefix.
type envOverrides struct {
	Addr            string        `env:"ADDR"`
	Dev             bool          `env:"DEV"`
	Strategy        string        `env:"STRATEGY"`
	Backpressure    bool          `env:"BACKPRESSURE"`
	MinScanInterval time.Duration `env:"MIN_SCAN_INTERVAL"`
	ClientDir       string        `env:"CLIENT_DIR"`
	SrcDir          string        `env:"SRC_DIR"`
	DistDir         string        `env:"DIST_DIR"`
	CacheFile       string        `env:"CACHE_FILE"`
	Exclude         []string      `env:"EXCLUDE" envSeparator:","`
	LogJSON         bool          `env:"LOG_JSON"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}
