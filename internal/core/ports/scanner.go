// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/k4g4/Personal-Page/internal/core/domain"
)

// Scanner produces modification-time snapshots of a directory tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks root depth-first and records every regular file's modification
	// time, keyed by absolute path. Directories whose name is excluded are not
	// entered. It fails if any directory cannot be read or any entry's metadata
	// cannot be obtained.
	Scan(ctx context.Context, root string, exclude domain.Exclusions) (domain.Snapshot, error)
}
