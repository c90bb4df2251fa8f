package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/engine/supervisor"
	"github.com/k4g4/Personal-Page/internal/server"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Options
	// Dev overrides the configured dev flag when non-nil.
	Dev *bool
	// Addr overrides the listen address when non-empty.
	Addr string
	// Strategy overrides the dev strategy when non-empty.
	Strategy string
}

// Serve runs the HTTP server until ctx is cancelled, then drains it and
// tears down the recompiler that was in use.
//
//nolint:cyclop // orchestration function
func (a *App) Serve(ctx context.Context, opts ServeOptions) (err error) {
	// 1. Resolve configuration
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}
	if err := applyServeOptions(cfg, opts); err != nil {
		return err
	}

	// 2. Install exactly one recompiler strategy
	var assets server.Middleware
	mode := cfg.Mode()
	switch mode {
	case domain.ModeGate:
		gate, gateErr := a.openGate(cfg)
		if gateErr != nil {
			return gateErr
		}
		defer func() {
			err = errors.Join(err, gate.Close())
		}()

		assets = gate.Middleware
		if cfg.Backpressure {
			assets = gate.TryMiddleware
		}
	case domain.ModeWatch:
		sup := supervisor.New(a.spawner, a.logger, cfg.Watchers)
		if err := sup.Start(ctx); err != nil {
			return err
		}
		defer func() {
			stopCtx, cancel := shutdownContext(ctx, cfg.ShutdownTimeout)
			defer cancel()
			err = errors.Join(err, sup.Close(stopCtx))
		}()
	case domain.ModeProduction:
	}

	// 3. Listen
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", cfg.Addr)
	}

	srv := &http.Server{
		Handler:           server.NewRouter(cfg.DistDir, assets),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	a.logger.Info(fmt.Sprintf("serving %s on http://%s in %s mode", cfg.DistDir, ln.Addr(), mode))
	if a.onListen != nil {
		a.onListen(ln.Addr())
	}

	// 4. Serve until cancelled, then drain
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := shutdownContext(ctx, cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("server stopped")
	return nil
}

func applyServeOptions(cfg *domain.Config, opts ServeOptions) error {
	if opts.Dev != nil {
		cfg.Dev = *opts.Dev
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.Strategy != "" {
		strategy, err := domain.ParseStrategy(opts.Strategy)
		if err != nil {
			return err
		}
		cfg.Strategy = strategy
	}
	return nil
}

// shutdownContext outlives ctx, which is already done when teardown starts.
func shutdownContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if timeout <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, timeout)
}
