package ports

import (
	"context"

	"github.com/k4g4/Personal-Page/internal/core/domain"
)

// BuildRunner runs build steps to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type BuildRunner interface {
	// Run executes steps sequentially in the given order and returns one outcome
	// per step. A step that fails to launch or exits non-zero does not stop the
	// remaining steps.
	Run(ctx context.Context, steps []domain.BuildStep) []domain.BuildOutcome
}
