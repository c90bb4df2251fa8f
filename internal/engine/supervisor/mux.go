package supervisor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single output line. Longer lines end the stream with an error.
const maxLineSize = 1 << 20

// Source is one output stream of a supervised process.
type Source struct {
	Name   string
	Kind   domain.StreamKind
	Reader io.Reader
}

func (s Source) label() string {
	return domain.Line{Source: s.Name, Kind: s.Kind}.Label()
}

type event struct {
	source int
	line   domain.Line
	ended  bool
	err    error
}

// Multiplex reads every source line by line and writes each line to logger as
// it arrives, labeled with its origin. Stdout lines are logged at info and
// stderr lines at error. Empty lines are dropped. A stream that ends or fails
// leaves the live set while the others keep going. Multiplex returns when no
// stream is live or ctx is done.
func Multiplex(ctx context.Context, sources []Source, logger ports.Logger) error {
	events := make(chan event)
	// Labels may repeat across watchers, so sources are tracked by position.
	live := make(map[int]struct{}, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		live[i] = struct{}{}
		g.Go(func() error {
			readLines(ctx, i, src, events)
			return nil
		})
	}

	for len(live) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !ev.ended {
				emit(logger, ev.line)
				continue
			}
			delete(live, ev.source)
			if ev.err != nil {
				logger.Error(ev.err)
			}
		}
	}

	return g.Wait()
}

func readLines(ctx context.Context, index int, src Source, events chan<- event) {
	send := func(ev event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	scanner := bufio.NewScanner(src.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		if !send(event{source: index, line: domain.Line{Source: src.Name, Kind: src.Kind, Text: text}}) {
			return
		}
	}

	end := event{source: index, ended: true}
	if err := scanner.Err(); err != nil && !isClosed(err) {
		end.err = zerr.With(zerr.Wrap(err, domain.ErrStreamReadFailed.Error()), "stream", src.label())
	}
	send(end)
}

// isClosed reports whether err only signals that the stream was closed during teardown.
func isClosed(err error) bool {
	return errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed)
}

func emit(logger ports.Logger, line domain.Line) {
	if line.Kind == domain.StreamStderr {
		logger.Error(zerr.New(line.String()))
		return
	}
	logger.Info(line.String())
}
