// Package config loads the server configuration from pageserver.yaml and
// PAGESERVER_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger  ports.Logger
	environ func() []string
}

// NewLoader creates a Loader that reads overrides from the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, environ: os.Environ}
}

// WithEnviron replaces the environment the loader reads overrides from.
func (l *Loader) WithEnviron(environ []string) *Loader {
	l.environ = func() []string { return environ }
	return l
}

// Load reads the configuration at path. An empty path selects pageserver.yaml
// in the working directory, which may be absent; an explicit path must exist.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	file := defaultPagefile()
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		l.logger.Info("no " + domain.ConfigFileName + " found, using defaults")
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := applyEnv(&file, l.environ()); err != nil {
		return nil, err
	}

	return toDomain(&file)
}

func applyEnv(file *Pagefile, environ []string) error {
	overrides := envOverrides{
		Addr:            file.Addr,
		Dev:             file.Dev,
		Strategy:        file.Strategy,
		Backpressure:    file.Gate.Backpressure,
		MinScanInterval: file.Gate.MinScanInterval,
		ClientDir:       file.Paths.Client,
		SrcDir:          file.Paths.Src,
		DistDir:         file.Paths.Dist,
		CacheFile:       file.Paths.CacheFile,
		Exclude:         file.Exclude,
		LogJSON:         file.Log.JSON,
		ShutdownTimeout: file.ShutdownTimeout,
	}

	err := env.ParseWithOptions(&overrides, env.Options{
		Environment: env.ToMap(environ),
		Prefix:      domain.EnvPrefix,
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	file.Addr = overrides.Addr
	file.Dev = overrides.Dev
	file.Strategy = overrides.Strategy
	file.Gate.Backpressure = overrides.Backpressure
	file.Gate.MinScanInterval = overrides.MinScanInterval
	file.Paths.Client = overrides.ClientDir
	file.Paths.Src = overrides.SrcDir
	file.Paths.Dist = overrides.DistDir
	file.Paths.CacheFile = overrides.CacheFile
	file.Exclude = overrides.Exclude
	file.Log.JSON = overrides.LogJSON
	file.ShutdownTimeout = overrides.ShutdownTimeout
	return nil
}

//nolint:cyclop // flat validation of independent fields
func toDomain(file *Pagefile) (*domain.Config, error) {
	strategy, err := domain.ParseStrategy(file.Strategy)
	if err != nil {
		return nil, err
	}
	if file.Gate.MinScanInterval < 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "min_scan_interval", file.Gate.MinScanInterval.String())
	}
	if file.ShutdownTimeout < 0 {
		return nil, zerr.With(domain.ErrInvalidConfig, "shutdown_timeout", file.ShutdownTimeout.String())
	}

	cfg := &domain.Config{
		Addr:            orDefault(file.Addr, DefaultAddr),
		Dev:             file.Dev,
		Strategy:        strategy,
		Backpressure:    file.Gate.Backpressure,
		MinScanInterval: file.Gate.MinScanInterval,
		SrcDir:          orDefault(file.Paths.Src, filepath.Join(DefaultClientDir, "src")),
		DistDir:         orDefault(file.Paths.Dist, filepath.Join(DefaultClientDir, "dist")),
		CacheFile:       orDefault(file.Paths.CacheFile, domain.DefaultModTimesPath()),
		Exclude:         file.Exclude,
		LogJSON:         file.Log.JSON,
		ShutdownTimeout: file.ShutdownTimeout,
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	clientDir := orDefault(file.Paths.Client, DefaultClientDir)
	outDir := outDirFor(clientDir, cfg.DistDir)

	if len(file.Steps) == 0 {
		cfg.Steps = defaultSteps(clientDir, outDir)
	} else {
		for _, dto := range file.Steps {
			if len(dto.Cmd) == 0 {
				return nil, zerr.With(domain.ErrEmptyCommand, "step", dto.Name)
			}
			cfg.Steps = append(cfg.Steps, domain.BuildStep{
				Name:        nameFor(dto),
				Command:     dto.Cmd,
				WorkingDir:  orDefault(dto.Dir, clientDir),
				Environment: dto.Environment,
			})
		}
	}

	if len(file.Watchers) == 0 {
		cfg.Watchers = defaultWatchers(clientDir, outDir)
	} else {
		names := make(map[string]struct{}, len(file.Watchers))
		for _, dto := range file.Watchers {
			if len(dto.Cmd) == 0 {
				return nil, zerr.With(domain.ErrEmptyCommand, "watcher", dto.Name)
			}
			name, err := watcherName(dto, names)
			if err != nil {
				return nil, err
			}
			cfg.Watchers = append(cfg.Watchers, domain.WatchSpec{
				Name:        name,
				Command:     dto.Cmd,
				WorkingDir:  orDefault(dto.Dir, clientDir),
				Environment: dto.Environment,
			})
		}
	}

	return cfg, nil
}

func nameFor(dto CommandDTO) string {
	if dto.Name != "" {
		return dto.Name
	}
	return filepath.Base(dto.Cmd[0])
}

// watcherName keeps output labels unambiguous. Explicit names must be unique;
// a name derived from the executable gets a numeric suffix when taken.
func watcherName(dto CommandDTO, taken map[string]struct{}) (string, error) {
	if dto.Name != "" {
		if _, dup := taken[dto.Name]; dup {
			return "", zerr.With(domain.ErrDuplicateWatcher, "watcher", dto.Name)
		}
		taken[dto.Name] = struct{}{}
		return dto.Name, nil
	}

	base := nameFor(dto)
	name := base
	for i := 2; ; i++ {
		if _, dup := taken[name]; !dup {
			break
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
	taken[name] = struct{}{}
	return name, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
