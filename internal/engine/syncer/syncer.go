// Package syncer keeps requirement lock files in sync with their declarations.
package syncer

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/engine/pairing"
)

// Syncer runs one lock pass over the changed files: classify, assemble, complete,
// validate, then regenerate or verify each directory in turn.
type Syncer struct {
	fs        ports.FileSystem
	resolver  ports.Resolver
	tracer    ports.Tracer
	logger    ports.Logger
	completer *pairing.Completer

	diag     io.Writer
	sortDirs bool
}

// NewSyncer creates a new Syncer with the given dependencies.
func NewSyncer(
	fsys ports.FileSystem,
	resolver ports.Resolver,
	tracer ports.Tracer,
	logger ports.Logger,
) *Syncer {
	return &Syncer{
		fs:        fsys,
		resolver:  resolver,
		tracer:    tracer,
		logger:    logger,
		completer: pairing.NewCompleter(fsys, logger),
		diag:      io.Discard,
	}
}

// WithDiagnostics sets where resolver output goes in write mode.
func (s *Syncer) WithDiagnostics(w io.Writer) *Syncer {
	if w == nil {
		w = io.Discard
	}
	s.diag = w
	return s
}

// WithSortedDirectories makes validation and processing iterate directories in
// lexical order instead of input order.
func (s *Syncer) WithSortedDirectories(sorted bool) *Syncer {
	s.sortDirs = sorted
	return s
}

// Run processes the changed paths. The first failure aborts the run.
func (s *Syncer) Run(ctx context.Context, paths []string, opts domain.LockOptions) error {
	set, err := pairing.Assemble(paths)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		s.logger.Debug("no requirement files among the changed paths")
		return nil
	}

	s.completer.Complete(set)
	if s.sortDirs {
		set = set.Sorted()
	}

	if err := pairing.Validate(set); err != nil {
		return err
	}

	s.tracer.EmitPlan(ctx, set.Dirs())

	if opts.CheckOnly {
		return s.check(ctx, set, opts)
	}
	return s.write(ctx, set, opts)
}

func (s *Syncer) startSpan(ctx context.Context, pair *domain.Pair, mode string) (context.Context, ports.Span) {
	s.logger.Debug(fmt.Sprintf("%s: %s %s against %s", pair.Dir, mode, pair.Lock(), pair.Declaration()))
	return s.tracer.Start(ctx, pair.Dir,
		ports.WithAttribute(domain.SpanAttrDir, pair.Dir),
		ports.WithAttribute(domain.SpanAttrMode, mode),
		ports.WithAttribute(domain.SpanAttrDeclaration, pair.Declaration()),
		ports.WithAttribute(domain.SpanAttrLock, pair.Lock()),
	)
}
