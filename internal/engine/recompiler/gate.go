package recompiler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"golang.org/x/time/rate"
)

// RetryAfterSeconds is advertised to clients turned away while a rebuild runs.
const RetryAfterSeconds = "1"

// GateOptions configures a Gate.
type GateOptions struct {
	// Root is the source tree to scan.
	Root string
	// Exclude lists directory names the scan skips.
	Exclude domain.Exclusions
	// Steps run, in order, whenever the tree is found stale.
	Steps []domain.BuildStep
	// MinScanInterval limits how often the tree is scanned. Zero scans on every check.
	MinScanInterval time.Duration
	// Tracer, if set, records one span per rebuild.
	Tracer ports.Tracer
}

// Gate decides on each request whether the built assets are stale and
// rebuilds them before the request is forwarded.
type Gate struct {
	cache   *Handle
	scanner ports.Scanner
	runner  ports.BuildRunner
	logger  ports.Logger
	opts    GateOptions
	limiter *rate.Limiter
}

// NewGate creates a Gate over cache. The gate takes ownership of the handle
// and releases it in Close.
func NewGate(
	cache *Handle,
	scanner ports.Scanner,
	runner ports.BuildRunner,
	logger ports.Logger,
	opts GateOptions,
) *Gate {
	g := &Gate{
		cache:   cache,
		scanner: scanner,
		runner:  runner,
		logger:  logger,
		opts:    opts,
	}
	if opts.MinScanInterval > 0 {
		g.limiter = rate.NewLimiter(rate.Every(opts.MinScanInterval), 1)
	}
	return g
}

// Check scans the source tree and, if it differs from the cache, replaces the
// cache and runs every build step before returning. It reports whether a
// rebuild ran. Concurrent callers wait for an in-progress rebuild.
func (g *Gate) Check(ctx context.Context) bool {
	rebuilt, _ := g.check(ctx, func() bool {
		g.cache.c.mu.Lock()
		return true
	})
	return rebuilt
}

// TryCheck behaves like Check but gives up instead of waiting when another
// caller holds the cache. acquired is false in that case.
func (g *Gate) TryCheck(ctx context.Context) (rebuilt, acquired bool) {
	return g.check(ctx, g.cache.c.mu.TryLock)
}

// Ready reports whether the cache is free, i.e. no rebuild is in progress.
func (g *Gate) Ready() bool {
	if !g.cache.c.mu.TryLock() {
		return false
	}
	g.cache.c.mu.Unlock()
	return true
}

func (g *Gate) check(ctx context.Context, lock func() bool) (rebuilt, acquired bool) {
	if g.limiter != nil && !g.limiter.Allow() {
		return false, true
	}

	current, err := g.scanner.Scan(ctx, g.opts.Root, g.opts.Exclude)
	if err != nil {
		g.logger.Error(err)
		return false, true
	}

	if !lock() {
		return false, false
	}
	defer g.cache.c.mu.Unlock()

	previous := g.cache.c.snapshot
	if previous.Equal(current) {
		return false, true
	}

	// The build outlives a cancelled request; its output is wanted either way.
	g.replaceAndBuild(context.WithoutCancel(ctx), previous, current)
	return true, true
}

// Rebuild is Check for callers outside the request path. It ignores
// MinScanInterval, returns scan errors instead of logging them and reports
// every step outcome. With force set the steps run even if nothing changed.
func (g *Gate) Rebuild(ctx context.Context, force bool) (rebuilt bool, outcomes []domain.BuildOutcome, err error) {
	current, err := g.scanner.Scan(ctx, g.opts.Root, g.opts.Exclude)
	if err != nil {
		return false, nil, err
	}

	g.cache.c.mu.Lock()
	defer g.cache.c.mu.Unlock()

	previous := g.cache.c.snapshot
	if !force && previous.Equal(current) {
		return false, nil, nil
	}
	return true, g.replaceAndBuild(ctx, previous, current), nil
}

// replaceAndBuild must be called with the cache lock held.
func (g *Gate) replaceAndBuild(ctx context.Context, previous, current domain.Snapshot) []domain.BuildOutcome {
	g.cache.c.snapshot = current

	diff := previous.Diff(current)
	digest := current.Digest()
	g.logger.Info(fmt.Sprintf("source tree changed (%s), digest %s", diff, digest))

	ctx, span := g.startSpan(ctx, "rebuild")
	defer span.End()
	span.SetAttribute("digest", digest)
	span.SetAttribute("files", len(current))
	span.SetAttribute("added", len(diff.Added))
	span.SetAttribute("removed", len(diff.Removed))
	span.SetAttribute("modified", len(diff.Modified))

	outcomes := g.runner.Run(ctx, g.opts.Steps)

	failed := 0
	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			failed++
		}
	}
	span.SetAttribute("steps", len(outcomes))
	span.SetAttribute("steps_failed", failed)
	if failed > 0 {
		g.logger.Warn(fmt.Sprintf("rebuild finished with %d of %d steps failing", failed, len(outcomes)))
	}
	return outcomes
}

func (g *Gate) startSpan(ctx context.Context, name string) (context.Context, ports.Span) {
	if g.opts.Tracer == nil {
		return ctx, noSpan{}
	}
	return g.opts.Tracer.Start(ctx, name)
}

type noSpan struct{}

func (noSpan) End()                     {}
func (noSpan) RecordError(error)        {}
func (noSpan) SetAttribute(string, any) {}

// Middleware is the blocking variant: every request is checked, then forwarded.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.Check(r.Context())
		next.ServeHTTP(w, r)
	})
}

// TryMiddleware is the backpressure variant: a request arriving while a
// rebuild holds the cache is answered with 503 and Retry-After.
func (g *Gate) TryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A rebuild already in progress turns the request away before it scans.
		if !g.Ready() {
			unavailable(w)
			return
		}
		if _, acquired := g.TryCheck(r.Context()); !acquired {
			unavailable(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unavailable(w http.ResponseWriter) {
	w.Header().Set("Retry-After", RetryAfterSeconds)
	http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
}

// Close releases the gate's cache handle.
func (g *Gate) Close() error {
	return g.cache.Close()
}
