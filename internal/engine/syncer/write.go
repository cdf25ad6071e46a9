package syncer

import (
	"context"
	"io"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// write regenerates the lock of every directory whose declaration was among the
// changed files. Directories that only had their lock changed are left alone.
func (s *Syncer) write(ctx context.Context, set *domain.PairSet, opts domain.LockOptions) error {
	for _, pair := range set.Pairs() {
		if !pair.Declared() {
			s.logger.Debug(pair.Dir + ": declaration unchanged, not regenerating")
			continue
		}
		if err := s.writePair(ctx, pair, opts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) writePair(ctx context.Context, pair *domain.Pair, opts domain.LockOptions) error {
	ctx, span := s.startSpan(ctx, pair, domain.ModeWrite)
	defer span.End()

	req := domain.CompileRequest{
		Declaration:    pair.Declaration(),
		Output:         pair.Lock(),
		GenerateHashes: opts.GenerateHashes,
	}
	if err := s.resolver.Compile(ctx, req, io.MultiWriter(span, s.diag)); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "failed to regenerate "+pair.Lock()), "dir", pair.Dir)
	}
	return nil
}
