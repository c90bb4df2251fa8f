package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Options
	// Force runs the build steps even if the source tree is unchanged.
	Force bool
}

// Build runs the staleness check once outside the HTTP path and persists the
// cache. It fails if any build step failed.
func (a *App) Build(ctx context.Context, opts BuildOptions) (err error) {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	gate, err := a.openGate(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, gate.Close())
	}()

	rebuilt, outcomes, err := gate.Rebuild(ctx, opts.Force)
	if err != nil {
		return err
	}
	if !rebuilt {
		a.logger.Info("assets are up to date")
		return nil
	}

	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			return zerr.With(domain.ErrBuildFailed, "step", outcome.Step)
		}
	}
	a.logger.Info(fmt.Sprintf("built %d steps", len(outcomes)))
	return nil
}

// SnapshotReport is the JSON document printed by Snapshot.
type SnapshotReport struct {
	Root   string          `json:"root"`
	Digest string          `json:"digest"`
	Files  domain.Snapshot `json:"files"`
}

// Snapshot scans the configured source tree and writes the result to w.
func (a *App) Snapshot(ctx context.Context, w io.Writer, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	snapshot, err := a.scanner.Scan(ctx, cfg.SrcDir, cfg.Exclusions())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SnapshotReport{
		Root:   cfg.SrcDir,
		Digest: snapshot.Digest(),
		Files:  snapshot,
	})
}
