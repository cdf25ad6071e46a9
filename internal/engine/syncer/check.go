package syncer

import (
	"bytes"
	"context"
	"errors"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// check verifies every pair against a dry-run resolution and fails on the first
// directory whose committed lock differs. It never writes.
func (s *Syncer) check(ctx context.Context, set *domain.PairSet, opts domain.LockOptions) error {
	for _, pair := range set.Pairs() {
		if err := s.checkPair(ctx, pair, opts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) checkPair(ctx context.Context, pair *domain.Pair, opts domain.LockOptions) error {
	ctx, span := s.startSpan(ctx, pair, domain.ModeCheck)
	defer span.End()

	var captured bytes.Buffer
	req := domain.CompileRequest{
		Declaration:    pair.Declaration(),
		Output:         pair.Lock(),
		GenerateHashes: opts.GenerateHashes,
		DryRun:         true,
	}
	if err := s.resolver.Compile(ctx, req, &captured); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "failed to resolve "+pair.Declaration()), "dir", pair.Dir)
	}
	resolved := domain.ParseManifest(captured.String()).StripTrailer()
	span.SetAttribute(domain.SpanAttrResolvedDigest, resolved.Digest())

	data, err := s.fs.ReadFile(pair.Lock())
	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrLockReadFailed, err), "cannot read "+pair.Lock()), "path", pair.Lock())
	}
	committed := domain.ParseManifest(string(data))

	if committed.Equal(resolved) {
		s.logger.Debug(pair.Dir + ": lock is up to date (" + committed.Digest() + ")")
		return nil
	}

	drift := &domain.DriftError{
		Dir:         pair.Dir,
		Declaration: pair.Declaration(),
		LockPath:    pair.Lock(),
		Committed:   committed,
		Resolved:    resolved,
	}
	span.RecordError(drift)
	return drift
}
