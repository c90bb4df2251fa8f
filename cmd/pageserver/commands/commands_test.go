package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/k4g4/Personal-Page/cmd/pageserver/commands"
	"github.com/k4g4/Personal-Page/internal/app"
	"github.com/k4g4/Personal-Page/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	serveFunc    func(ctx context.Context, opts app.ServeOptions) error
	buildFunc    func(ctx context.Context, opts app.BuildOptions) error
	snapshotFunc func(ctx context.Context, w io.Writer, opts app.Options) error
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Snapshot(ctx context.Context, w io.Writer, opts app.Options) error {
	if m.snapshotFunc != nil {
		return m.snapshotFunc(ctx, w, opts)
	}
	return nil
}

func TestCommands_Serve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ServeOptions
		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"serve", "--dev", "--addr", "0.0.0.0:8080", "--strategy", "watch",
			"--config", "site.yaml", "--log-json",
		})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, captured.Dev)
		assert.True(t, *captured.Dev)
		assert.Equal(t, "0.0.0.0:8080", captured.Addr)
		assert.Equal(t, "watch", captured.Strategy)
		assert.Equal(t, "site.yaml", captured.ConfigPath)
		assert.True(t, captured.LogJSON)
	})

	t.Run("leaves dev to config when unset", func(t *testing.T) {
		var captured app.ServeOptions
		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Nil(t, captured.Dev)
		assert.Empty(t, captured.Addr)
		assert.Empty(t, captured.ConfigPath)
	})

	t.Run("explicit --dev=false is passed through", func(t *testing.T) {
		var captured app.ServeOptions
		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve", "--dev=false"})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, captured.Dev)
		assert.False(t, *captured.Dev)
	})

	t.Run("returns error on serve failure", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(_ context.Context, _ app.ServeOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"serve", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Build(t *testing.T) {
	var captured app.BuildOptions
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"build", "-f", "-c", "site.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.Force)
	assert.Equal(t, "site.yaml", captured.ConfigPath)
}

func TestCommands_Snapshot(t *testing.T) {
	mock := &mockApp{
		snapshotFunc: func(_ context.Context, w io.Writer, _ app.Options) error {
			_, err := io.WriteString(w, `{"digest":"0000000000000000"}`)
			return err
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"snapshot"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.JSONEq(t, `{"digest":"0000000000000000"}`, buf.String())
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), "pageserver version")
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
