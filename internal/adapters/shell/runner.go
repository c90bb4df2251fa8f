// Package shell runs external build tools, either to completion or in watch mode.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.BuildRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner that reports step output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes steps one after another. Output is captured per stream and
// logged once the step finishes: stdout at info and stderr at error, whatever
// the exit status. A failing step never prevents the next one from running.
func (r *Runner) Run(ctx context.Context, steps []domain.BuildStep) []domain.BuildOutcome {
	outcomes := make([]domain.BuildOutcome, 0, len(steps))
	for _, step := range steps {
		outcome := r.runStep(ctx, step)
		if outcome.Err != nil {
			r.logger.Error(outcome.Err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (r *Runner) runStep(ctx context.Context, step domain.BuildStep) domain.BuildOutcome {
	outcome := domain.BuildOutcome{Step: step.Name}
	r.logger.Info("running " + step.Name + "...")

	if len(step.Command) == 0 {
		outcome.Err = zerr.With(domain.ErrEmptyCommand, "step", step.Name)
		return outcome
	}
	if err := ctx.Err(); err != nil {
		outcome.Err = zerr.With(zerr.Wrap(err, domain.ErrStepLaunchFailed.Error()), "step", step.Name)
		return outcome
	}

	var stdout, stderr bytes.Buffer
	cmd := command(step.Command, step.WorkingDir, resolveEnvironment(os.Environ(), step.Environment))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		outcome.Err = zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrStepLaunchFailed.Error()), "step", step.Name),
			"command", step.String(),
		)
		return outcome
	}

	stop := context.AfterFunc(ctx, func() { _ = cmd.Process.Kill() })
	waitErr := cmd.Wait()
	stop()

	outcome.Stdout = stdout.String()
	outcome.Stderr = stderr.String()
	r.logOutput(outcome)

	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		outcome.Err = zerr.With(
			zerr.With(zerr.Wrap(waitErr, domain.ErrStepFailed.Error()), "step", step.Name),
			"exit_code", exitCode,
		)
	}

	return outcome
}

func (r *Runner) logOutput(outcome domain.BuildOutcome) {
	if out := strings.TrimRight(outcome.Stdout, "\r\n"); out != "" {
		r.logger.Info(out)
	}
	if out := strings.TrimRight(outcome.Stderr, "\r\n"); out != "" {
		r.logger.Error(zerr.New(out))
	}
}
