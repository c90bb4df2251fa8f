package ports

import (
	"context"
	"io"

	"github.com/k4g4/Personal-Page/internal/core/domain"
)

// WatchProcess is a running watch-mode build tool and its two output streams.
type WatchProcess interface {
	// Name returns the tool name from the spec it was spawned from.
	Name() string
	// Stdout returns the process's standard output stream.
	Stdout() io.Reader
	// Stderr returns the process's standard error stream.
	Stderr() io.Reader
	// Stop terminates the process and reaps it. It is safe to call more than once.
	Stop(ctx context.Context) error
}

// ProcessSpawner starts watch-mode build tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=spawner.go -destination=mocks/mock_spawner.go -package=mocks
type ProcessSpawner interface {
	// Spawn starts the process described by spec. The process is configured so
	// that it does not outlive the host.
	Spawn(ctx context.Context, spec domain.WatchSpec) (WatchProcess, error)
}
