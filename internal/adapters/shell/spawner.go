package shell

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultStopGrace is how long a watcher gets to exit after SIGTERM before it is killed.
const DefaultStopGrace = 5 * time.Second

// Spawner implements ports.ProcessSpawner. Each watcher runs in its own
// process group so that the tools it forks are terminated with it.
type Spawner struct {
	grace time.Duration
}

// NewSpawner creates a Spawner. A non-positive grace selects DefaultStopGrace.
func NewSpawner(grace time.Duration) *Spawner {
	if grace <= 0 {
		grace = DefaultStopGrace
	}
	return &Spawner{grace: grace}
}

// Spawn starts the watcher described by spec.
func (s *Spawner) Spawn(ctx context.Context, spec domain.WatchSpec) (ports.WatchProcess, error) {
	if len(spec.Command) == 0 {
		return nil, zerr.With(domain.ErrEmptyCommand, "watcher", spec.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "watcher", spec.Name)
	}

	cmd := command(spec.Command, spec.WorkingDir, resolveEnvironment(os.Environ(), spec.Environment))
	cmd.SysProcAttr = newSysProcAttr()
	cmd.WaitDelay = s.grace

	// io.Pipe keeps every line the child wrote readable after it exits:
	// Wait only returns once the copy into the pipe has been consumed.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	if err := startProcess(cmd); err != nil {
		_ = stdoutR.Close()
		_ = stderrR.Close()
		return nil, zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "watcher", spec.Name),
			"command", spec.Command[0],
		)
	}

	p := &watchProcess{
		name:   spec.Name,
		pid:    cmd.Process.Pid,
		kill:   cmd.Process.Kill,
		stdout: stdoutR,
		stderr: stderrR,
		grace:  s.grace,
		done:   make(chan struct{}),
	}

	go func() {
		_ = cmd.Wait()
		_ = stdoutW.Close()
		_ = stderrW.Close()
		close(p.done)
	}()

	return p, nil
}

type watchProcess struct {
	name   string
	pid    int
	kill   func() error
	stdout *io.PipeReader
	stderr *io.PipeReader
	grace  time.Duration

	done chan struct{}

	stopOnce sync.Once
	stopErr  error
}

func (p *watchProcess) Name() string      { return p.name }
func (p *watchProcess) Stdout() io.Reader { return p.stdout }
func (p *watchProcess) Stderr() io.Reader { return p.stderr }

// Stop closes both streams, asks the process group to terminate and kills it
// if it has not exited within the grace period or before ctx is done.
func (p *watchProcess) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		// Unblocks the copy goroutines if nobody is reading anymore.
		_ = p.stdout.Close()
		_ = p.stderr.Close()

		select {
		case <-p.done:
			return
		default:
		}

		if err := terminateGroup(p.pid, p.kill); err != nil {
			p.stopErr = zerr.With(zerr.Wrap(err, domain.ErrStopFailed.Error()), "watcher", p.name)
		}

		timer := time.NewTimer(p.grace)
		defer timer.Stop()

		select {
		case <-p.done:
			return
		case <-timer.C:
		case <-ctx.Done():
		}

		if err := killGroup(p.pid, p.kill); err != nil {
			p.stopErr = zerr.With(zerr.Wrap(err, domain.ErrStopFailed.Error()), "watcher", p.name)
		}
		<-p.done
	})
	return p.stopErr
}
