// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/k4g4/Personal-Page/internal/adapters/cachefile"
	_ "github.com/k4g4/Personal-Page/internal/adapters/config"
	_ "github.com/k4g4/Personal-Page/internal/adapters/fs"
	_ "github.com/k4g4/Personal-Page/internal/adapters/logger"
	_ "github.com/k4g4/Personal-Page/internal/adapters/shell"
	_ "github.com/k4g4/Personal-Page/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/k4g4/Personal-Page/internal/app"
)
