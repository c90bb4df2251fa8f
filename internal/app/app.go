// Package app implements the application layer for pageserver.
package app

import (
	"net"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"github.com/k4g4/Personal-Page/internal/engine/recompiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	scanner      ports.Scanner
	stores       ports.SnapshotStoreFactory
	runner       ports.BuildRunner
	spawner      ports.ProcessSpawner
	tracer       ports.Tracer
	onListen     func(net.Addr)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	scanner ports.Scanner,
	stores ports.SnapshotStoreFactory,
	runner ports.BuildRunner,
	spawner ports.ProcessSpawner,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		scanner:      scanner,
		stores:       stores,
		runner:       runner,
		spawner:      spawner,
		tracer:       tracer,
	}
}

// WithListenHook registers fn to be called with the bound address once the
// server is listening. This is primarily used for testing with port 0.
func (a *App) WithListenHook(fn func(net.Addr)) *App {
	a.onListen = fn
	return a
}

// Options are shared by every command.
type Options struct {
	// ConfigPath is the config file to load. Empty means pageserver.yaml if present.
	ConfigPath string
	// LogJSON forces JSON log output regardless of the config file.
	LogJSON bool
}

// jsonToggler is implemented by loggers that can switch to JSON output.
type jsonToggler interface {
	SetJSON(enable bool)
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.LogJSON {
		cfg.LogJSON = true
	}
	if cfg.LogJSON {
		if t, ok := a.logger.(jsonToggler); ok {
			t.SetJSON(true)
		}
	}
	return cfg, nil
}

func (a *App) openGate(cfg *domain.Config) (*recompiler.Gate, error) {
	handle, err := recompiler.LoadCache(a.stores.Open(cfg.CacheFile), a.logger)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load mod time cache"), "path", cfg.CacheFile)
	}

	return recompiler.NewGate(handle, a.scanner, a.runner, a.logger, recompiler.GateOptions{
		Root:            cfg.SrcDir,
		Exclude:         cfg.Exclusions(),
		Steps:           cfg.Steps,
		MinScanInterval: cfg.MinScanInterval,
		Tracer:          a.tracer,
	}), nil
}
