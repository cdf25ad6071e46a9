package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "status error", err: domain.NewStatusError(2, nil), want: 2},
		{
			name: "status joined with sentinel",
			err:  errors.Join(domain.ErrAdapterFailure, domain.NewStatusError(3, errors.New("exit status 3"))),
			want: 3,
		},
		{
			name: "status wrapped by zerr",
			err:  zerr.Wrap(domain.NewStatusError(4, nil), "resolving pkgA"),
			want: 4,
		},
		{name: "non-positive status", err: domain.NewStatusError(-1, nil), want: 1},
		{name: "drift", err: &domain.DriftError{Dir: "pkgA"}, want: 1},
		{name: "incomplete pair", err: zerr.Wrap(domain.ErrIncompletePair, "pkgC"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExitCode(tt.err))
		})
	}
}

func TestStatusError(t *testing.T) {
	cause := errors.New("exit status 2")
	err := domain.NewStatusError(2, cause)

	assert.Equal(t, "exit status 2", err.Error())
	assert.Equal(t, "exit status 2", err.Message())
	require.ErrorIs(t, err, cause)

	bare := domain.NewStatusError(5, nil)
	assert.Equal(t, "exit status 5", bare.Error())
}

func TestDriftError(t *testing.T) {
	err := &domain.DriftError{
		Dir:         "pkgA",
		Declaration: "pkgA/requirements.in",
		LockPath:    "pkgA/requirements-lock.txt",
		Committed:   domain.Manifest{"a==1"},
		Resolved:    domain.Manifest{"a==2"},
	}

	require.ErrorIs(t, err, domain.ErrLockDrift)
	assert.Equal(t,
		"pkgA/requirements-lock.txt does not match a fresh resolution of pkgA/requirements.in: lock file is out of date",
		err.Error())

	var drift *domain.DriftError
	wrapped := fmt.Errorf("run: %w", err)
	require.ErrorAs(t, wrapped, &drift)
	assert.Equal(t, "pkgA", drift.Dir)
}
