package shell_test

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/k4g4/Personal-Page/internal/adapters/shell"
	"github.com/k4g4/Personal-Page/internal/core/domain"
	"github.com/k4g4/Personal-Page/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func errorWithMessage(substr string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		err, ok := x.(error)
		return ok && strings.Contains(err.Error(), substr)
	})
}

func TestRunner_Run_LogsOutputPerStream(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("running tailwind..."),
		mockLogger.EXPECT().Info("line1\nline2"),
		mockLogger.EXPECT().Error(errorWithMessage("warning: unused class")),
	)

	runner := shell.NewRunner(mockLogger)
	outcomes := runner.Run(context.Background(), []domain.BuildStep{{
		Name:    "tailwind",
		Command: []string{"sh", "-c", "echo line1; echo line2; echo 'warning: unused class' 1>&2"},
	}})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Succeeded())
	assert.Equal(t, "line1\nline2\n", outcomes[0].Stdout)
	assert.Equal(t, "warning: unused class\n", outcomes[0].Stderr)
}

func TestRunner_Run_Sequential(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	marker := filepath.Join(t.TempDir(), "order")
	runner := shell.NewRunner(mockLogger)
	outcomes := runner.Run(context.Background(), []domain.BuildStep{
		{Name: "css", Command: []string{"sh", "-c", "sleep 0.1; echo css >> " + marker}},
		{Name: "js", Command: []string{"sh", "-c", "echo js >> " + marker + "; cat " + marker}},
	})

	require.Len(t, outcomes, 2)
	assert.Equal(t, "css", outcomes[0].Step)
	assert.Equal(t, "js", outcomes[1].Step)
	assert.Equal(t, "css\njs\n", outcomes[1].Stdout)
}

func TestRunner_Run_LaunchFailureContinues(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("running vite..."),
		mockLogger.EXPECT().Error(errorWithMessage(domain.ErrStepLaunchFailed.Error())),
		mockLogger.EXPECT().Info("running after..."),
		mockLogger.EXPECT().Info("ok"),
	)

	runner := shell.NewRunner(mockLogger)
	outcomes := runner.Run(context.Background(), []domain.BuildStep{
		{Name: "vite", Command: []string{"pageserver-missing-tool-7d1f"}},
		{Name: "after", Command: []string{"sh", "-c", "echo ok"}},
	})

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Succeeded())
	assert.True(t, outcomes[1].Succeeded())
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("running lint...")
	mockLogger.EXPECT().Error(errorWithMessage("bad input"))
	mockLogger.EXPECT().Error(errorWithMessage(domain.ErrStepFailed.Error()))

	outcomes := shell.NewRunner(mockLogger).Run(context.Background(), []domain.BuildStep{
		{Name: "lint", Command: []string{"sh", "-c", "echo 'bad input' 1>&2; exit 3"}},
	})

	require.Len(t, outcomes, 1)
	require.Error(t, outcomes[0].Err)
	assert.Equal(t, "bad input\n", outcomes[0].Stderr)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("running nothing...")
	mockLogger.EXPECT().Error(errorWithMessage(domain.ErrEmptyCommand.Error()))

	outcomes := shell.NewRunner(mockLogger).Run(context.Background(), []domain.BuildStep{{Name: "nothing"}})
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Succeeded())
}

func TestRunner_Run_EnvironmentAndWorkingDir(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	outcomes := shell.NewRunner(mockLogger).Run(context.Background(), []domain.BuildStep{{
		Name:        "env",
		Command:     []string{"sh", "-c", `printf '%s %s' "$NODE_ENV" "$(pwd -P)"`},
		WorkingDir:  dir,
		Environment: map[string]string{"NODE_ENV": "development"},
	}})

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, "development "+resolved, outcomes[0].Stdout)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(2)
	mockLogger.EXPECT().Error(errorWithMessage(domain.ErrStepLaunchFailed.Error())).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := shell.NewRunner(mockLogger).Run(ctx, []domain.BuildStep{
		{Name: "a", Command: []string{"sh", "-c", "true"}},
		{Name: "b", Command: []string{"sh", "-c", "true"}},
	})
	require.Len(t, outcomes, 2)
}
