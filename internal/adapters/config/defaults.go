package config

import (
	"path/filepath"
	"time"

	"github.com/k4g4/Personal-Page/internal/core/domain"
)

const (
	// DefaultAddr is the address the server listens on.
	DefaultAddr = "localhost:3000"
	// DefaultClientDir is the client project the build tools run in.
	DefaultClientDir = "client"
	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	nodeEnvDevelopment = "development"
)

// defaultPagefile returns the configuration used when no file exists.
func defaultPagefile() Pagefile {
	return Pagefile{
		Addr:     DefaultAddr,
		Strategy: string(domain.StrategyGate),
		Paths: PathsDTO{
			Client:    DefaultClientDir,
			Src:       filepath.Join(DefaultClientDir, "src"),
			Dist:      filepath.Join(DefaultClientDir, "dist"),
			CacheFile: domain.DefaultModTimesPath(),
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// defaultSteps compiles the stylesheet, then bundles the client into dist.
func defaultSteps(clientDir, outDir string) []domain.BuildStep {
	env := map[string]string{"NODE_ENV": nodeEnvDevelopment}
	return []domain.BuildStep{
		{
			Name:        "tailwind",
			Command:     []string{"bun", "tailwindcss", "-i", "input.css", "-o", "index.css"},
			WorkingDir:  clientDir,
			Environment: env,
		},
		{
			Name: "vite",
			Command: []string{
				"bun", "vite", "build",
				"--outDir", outDir,
				"--emptyOutDir", "--minify",
				"--mode", nodeEnvDevelopment,
			},
			WorkingDir:  clientDir,
			Environment: env,
		},
	}
}

// defaultWatchers runs the same tools as defaultSteps in their watch mode.
func defaultWatchers(clientDir, outDir string) []domain.WatchSpec {
	steps := defaultSteps(clientDir, outDir)
	watchers := make([]domain.WatchSpec, 0, len(steps))
	for _, step := range steps {
		cmd := append([]string{}, step.Command...)
		cmd = append(cmd, "--watch")
		watchers = append(watchers, domain.WatchSpec{
			Name:        step.Name,
			Command:     cmd,
			WorkingDir:  step.WorkingDir,
			Environment: step.Environment,
		})
	}
	return watchers
}

// outDirFor returns dist relative to the client directory when possible,
// since vite resolves --outDir against its project root.
func outDirFor(clientDir, distDir string) string {
	rel, err := filepath.Rel(clientDir, distDir)
	if err != nil {
		abs, absErr := filepath.Abs(distDir)
		if absErr != nil {
			return distDir
		}
		return abs
	}
	return rel
}
