package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/adapters/logger"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		log        func(*logger.Logger)
		goldenName string
	}{
		{name: "info", log: func(l *logger.Logger) { l.Info("some message") }, goldenName: "info_basic"},
		{name: "warn", log: func(l *logger.Logger) { l.Warn("some warning") }, goldenName: "warn_basic"},
		{name: "debug hidden", log: func(l *logger.Logger) { l.Debug("pkgA: using lock from disk") }, goldenName: "debug_hidden"},
		{
			name:       "debug verbose",
			verbose:    true,
			log:        func(l *logger.Logger) { l.Debug("pkgA: using lock from disk") },
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name: "incomplete pair",
			err: zerr.With(zerr.With(
				zerr.Wrap(domain.ErrIncompletePair, `directory "pkgC" has no Lock file`),
				"dir", "pkgC"), "role", "Lock"),
			goldenName: "error_incomplete_pair",
		},
		{
			name: "adapter failure",
			err: zerr.Wrap(
				errors.Join(domain.ErrAdapterFailure, domain.NewStatusError(2, errors.New("exit status 2"))),
				"failed to regenerate pkgA/requirements-lock.txt",
			),
			goldenName: "error_adapter_failure",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			goldenName: "error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("checking")
	lg.Error(zerr.Wrap(domain.ErrLockDrift, "pkgA"))

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"msg":"checking"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"msg":"pkgA"`)
	assert.Contains(t, out, `"msg":"lock file is out of date"`)
}

func TestLogger_SetOutputPreservesMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Debug("still json")

	require.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestLogger_SetColor(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetColor(true)
	lg.Info("colored")

	assert.Contains(t, buf.String(), "\x1b[")
}
