package app

import (
	"context"

	"github.com/k4g4/Personal-Page/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Shutdown flushes telemetry before exit. It may be nil.
	Shutdown func(context.Context) error
}
