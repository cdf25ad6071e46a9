package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqlock/internal/app"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.loader, m.executor, mocks.NewMockFileSystem(ctrl), m.logger).
		WithWorkingDir("/work")

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that failures are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newProvider(t)
	m.loader.EXPECT().Load("/work").Return(nil, errors.New("load failed"))
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"lock", "pkgA/requirements.in"}, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_TestRunnerStatus verifies that the test runner's status becomes the exit
// status without logging a failure the runner already printed.
func TestRun_TestRunnerStatus(t *testing.T) {
	provider, m := newProvider(t)
	m.loader.EXPECT().Load("/work").Return(domain.DefaultConfig(), nil)
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).Times(0)
	m.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zerr.Wrap(domain.NewStatusError(3, errors.New("exit status 3")), "pytest failed"))

	exitCode := run(context.Background(), []string{"pytest-cov"}, io.Discard, provider)
	assert.Equal(t, 3, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	provider, m := newProvider(t)

	blockCh := make(chan struct{})
	m.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Config, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"lock", "pkgA/requirements.in"}, io.Discard, provider)
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

func TestReported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "drift", err: &domain.DriftError{Dir: "pkgA"}, want: true},
		{
			name: "failing test run",
			err:  errors.Join(domain.ErrTestRunFailed, domain.NewStatusError(1, nil)),
			want: true,
		},
		{name: "test runner never started", err: errors.Join(domain.ErrTestRunFailed, errors.New("not found"))},
		{name: "incomplete pair", err: zerr.Wrap(domain.ErrIncompletePair, "pkgC")},
		{
			name: "resolver status",
			err:  errors.Join(domain.ErrAdapterFailure, domain.NewStatusError(2, nil)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reported(tt.err))
		})
	}
}
