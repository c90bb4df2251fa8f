package supervisor_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports/mocks"
	"github.com/k4g4/Personal-Page/internal/engine/supervisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func errorWithMessage(substr string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		err, ok := x.(error)
		return ok && strings.Contains(err.Error(), substr)
	})
}

// failingReader yields data once, then a read error.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	return 0, r.err
}

func TestMultiplex_LabelsAndOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		logger.EXPECT().Info("[vite:stdout] building for development..."),
		logger.EXPECT().Info("[vite:stdout] built in 210ms"),
		logger.EXPECT().Info("[vite:stdout] watching for file changes..."),
	)

	err := supervisor.Multiplex(context.Background(), []supervisor.Source{{
		Name:   "vite",
		Kind:   domain.StreamStdout,
		Reader: strings.NewReader("building for development...\r\n\nbuilt in 210ms\n\nwatching for file changes..."),
	}}, logger)
	require.NoError(t, err)
}

func TestMultiplex_StderrAtErrorLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Error(errorWithMessage("[tailwind:stderr] unknown utility class")).Times(1)
	logger.EXPECT().Info("[tailwind:stdout] Done in 45ms").Times(1)

	err := supervisor.Multiplex(context.Background(), []supervisor.Source{
		{Name: "tailwind", Kind: domain.StreamStdout, Reader: strings.NewReader("Done in 45ms\n")},
		{Name: "tailwind", Kind: domain.StreamStderr, Reader: strings.NewReader("unknown utility class\n")},
	}, logger)
	require.NoError(t, err)
}

func TestMultiplex_FailedStreamIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Info("[vite:stdout] partial").Times(1)
	logger.EXPECT().Error(errorWithMessage(domain.ErrStreamReadFailed.Error())).Times(1)
	logger.EXPECT().Info("[tailwind:stdout] still here").Times(1)

	err := supervisor.Multiplex(context.Background(), []supervisor.Source{
		{Name: "vite", Kind: domain.StreamStdout, Reader: &failingReader{data: []byte("partial\n"), err: errors.New("bad descriptor")}},
		{Name: "tailwind", Kind: domain.StreamStdout, Reader: strings.NewReader("still here\n")},
	}, logger)
	require.NoError(t, err)
}

func TestMultiplex_ClosedStreamIsQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	r, w := io.Pipe()
	require.NoError(t, r.Close())
	_ = w

	err := supervisor.Multiplex(context.Background(), []supervisor.Source{
		{Name: "vite", Kind: domain.StreamStdout, Reader: r},
	}, logger)
	require.NoError(t, err)
}

func TestMultiplex_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- supervisor.Multiplex(ctx, []supervisor.Source{
			{Name: "vite", Kind: domain.StreamStdout, Reader: r},
		}, logger)
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Multiplex did not return after cancel")
	}
}

func TestMultiplex_SharedNameKeepsEveryStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	r, w := io.Pipe()
	firstSeen := make(chan struct{})
	logger.EXPECT().Info("[bun:stdout] first").Do(func(string) { close(firstSeen) }).Times(1)
	logger.EXPECT().Info("[bun:stdout] late line from second bun").Times(1)

	go func() {
		<-firstSeen
		_, _ = io.WriteString(w, "late line from second bun\n")
		_ = w.Close()
	}()

	done := make(chan error, 1)
	go func() {
		done <- supervisor.Multiplex(context.Background(), []supervisor.Source{
			{Name: "bun", Kind: domain.StreamStdout, Reader: strings.NewReader("first\n")},
			{Name: "bun", Kind: domain.StreamStderr, Reader: strings.NewReader("")},
			{Name: "bun", Kind: domain.StreamStderr, Reader: strings.NewReader("")},
			{Name: "bun", Kind: domain.StreamStdout, Reader: r},
		}, logger)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Multiplex did not return after every stream ended")
	}
}

func TestMultiplex_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	assert.NoError(t, supervisor.Multiplex(context.Background(), nil, logger))
}
