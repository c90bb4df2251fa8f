// Package supervisor runs the build tools in their own watch mode for the
// lifetime of the server and relays their output to the log.
package supervisor

import (
	"context"
	"errors"
	"sync"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
)

type state uint8

const (
	stateStopped state = iota
	stateRunning
	stateClosed
)

// Supervisor owns a set of watch-mode processes.
type Supervisor struct {
	spawner ports.ProcessSpawner
	logger  ports.Logger
	specs   []domain.WatchSpec

	mu     sync.Mutex
	state  state
	procs  []ports.WatchProcess
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped Supervisor for specs.
func New(spawner ports.ProcessSpawner, logger ports.Logger, specs []domain.WatchSpec) *Supervisor {
	return &Supervisor{
		spawner: spawner,
		logger:  logger,
		specs:   specs,
		done:    make(chan struct{}),
	}
}

// Start spawns every watcher and begins relaying their output. A watcher that
// fails to spawn is logged and the rest still start.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateRunning:
		return domain.ErrSupervisorStarted
	case stateClosed:
		return domain.ErrSupervisorClosed
	}

	sources := make([]Source, 0, 2*len(s.specs))
	for _, spec := range s.specs {
		proc, err := s.spawner.Spawn(ctx, spec)
		if err != nil {
			s.logger.Error(err)
			continue
		}
		s.logger.Info("started " + spec.Name + " in watch mode")
		s.procs = append(s.procs, proc)
		sources = append(sources,
			Source{Name: proc.Name(), Kind: domain.StreamStdout, Reader: proc.Stdout()},
			Source{Name: proc.Name(), Kind: domain.StreamStderr, Reader: proc.Stderr()},
		)
	}

	muxCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = stateRunning

	go func() {
		defer close(s.done)
		if err := Multiplex(muxCtx, sources, s.logger); err == nil {
			s.logger.Warn("all watcher output streams have closed")
		}
	}()

	return nil
}

// Done is closed once output relaying has stopped.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Close stops relaying output and terminates every watcher. It is safe to
// call more than once and before Start.
func (s *Supervisor) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = stateClosed
	if prev != stateRunning {
		return nil
	}

	s.cancel()

	var errs []error
	for _, proc := range s.procs {
		if err := proc.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.procs = nil

	select {
	case <-s.done:
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}

	return errors.Join(errs...)
}
