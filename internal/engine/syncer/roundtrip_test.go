package syncer_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/adapters/fs"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/core/ports/mocks"
	"go.trai.ch/reqlock/internal/engine/syncer"
	"go.uber.org/mock/gomock"
)

// pinningResolver is a deterministic stand-in for the resolution engine: every
// declared name is pinned to version 1.0, sorted.
type pinningResolver struct{}

func (pinningResolver) Compile(_ context.Context, req domain.CompileRequest, diag io.Writer) error {
	data, err := os.ReadFile(req.Declaration)
	if err != nil {
		return err
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s==1.0\n", name)
		if req.GenerateHashes {
			fmt.Fprintf(&b, "    --hash=sha256:%x\n", name)
		}
	}

	if req.DryRun {
		_, err = io.WriteString(diag, b.String()+domain.DryRunTrailer+"\n")
		return err
	}
	return os.WriteFile(req.Output, []byte(b.String()), domain.PrivateFilePerm)
}

func newRoundTripSyncer(t *testing.T) *syncer.Syncer {
	t.Helper()
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) { return len(p), nil }).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return syncer.NewSyncer(fs.NewOSFS(), pinningResolver{}, tracer, logger)
}

func writeProject(t *testing.T, lock string) (decl, lockPath string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "pkgA")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	decl = filepath.Join(dir, domain.RequirementsInFile)
	lockPath = filepath.Join(dir, domain.RequirementsLockFile)
	require.NoError(t, os.WriteFile(decl, []byte("requests\nclick\n"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(lockPath, []byte(lock), domain.PrivateFilePerm))
	return decl, lockPath
}

func TestSyncer_WriteIsIdempotent(t *testing.T) {
	decl, lockPath := writeProject(t, "stale==0.1\n")
	s := newRoundTripSyncer(t)
	opts := domain.LockOptions{GenerateHashes: true}

	require.NoError(t, s.Run(context.Background(), []string{decl}, opts))
	first, err := os.ReadFile(lockPath)
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), []string{decl}, opts))
	second, err := os.ReadFile(lockPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "click==1.0")
}

func TestSyncer_WriteThenCheckPasses(t *testing.T) {
	for _, hashes := range []bool{false, true} {
		t.Run(fmt.Sprintf("generate hashes %t", hashes), func(t *testing.T) {
			decl, lockPath := writeProject(t, "stale==0.1\n")
			s := newRoundTripSyncer(t)

			err := s.Run(context.Background(), []string{decl}, domain.LockOptions{GenerateHashes: hashes, CheckOnly: true})
			require.ErrorIs(t, err, domain.ErrLockDrift, "stale lock is detected before regeneration")

			require.NoError(t, s.Run(context.Background(), []string{decl}, domain.LockOptions{GenerateHashes: hashes}))

			before, err := os.ReadFile(lockPath)
			require.NoError(t, err)

			require.NoError(t, s.Run(context.Background(), []string{decl, lockPath},
				domain.LockOptions{GenerateHashes: hashes, CheckOnly: true}))

			after, err := os.ReadFile(lockPath)
			require.NoError(t, err)
			assert.Equal(t, before, after, "check mode never writes")
		})
	}
}
