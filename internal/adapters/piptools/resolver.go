// Package piptools adapts the pip-compile command line to ports.Resolver.
package piptools

import (
	"context"
	"errors"
	"io"
	"maps"
	"slices"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
)

const (
	flagOutput         = "-o"
	flagGenerateHashes = "--generate-hashes"
	flagDryRun         = "--dry-run"
)

// Resolver implements ports.Resolver by running pip-compile through an executor.
type Resolver struct {
	executor ports.Executor
	command  []string
	args     []string
	env      map[string]string
}

var _ ports.Resolver = (*Resolver)(nil)

// NewResolver creates a Resolver invoking the configured command.
func NewResolver(executor ports.Executor, cfg domain.ResolverConfig) *Resolver {
	return &Resolver{
		executor: executor,
		command:  slices.Clone(cfg.Command),
		args:     slices.Clone(cfg.Args),
		env:      maps.Clone(cfg.Env),
	}
}

// Compile runs one resolution. pip-compile reports on stderr, including the dry-run
// manifest, so stderr is streamed to diag. Stdout only reaches the debug log.
func (r *Resolver) Compile(ctx context.Context, req domain.CompileRequest, diag io.Writer) error {
	cmd := domain.Command{
		Args: r.Args(req),
		Env:  r.env,
	}

	if err := r.executor.Execute(ctx, cmd, io.Discard, diag); err != nil {
		return errors.Join(domain.ErrAdapterFailure, err)
	}
	return nil
}

// Args builds the argv for req.
func (r *Resolver) Args(req domain.CompileRequest) []string {
	argv := make([]string, 0, len(r.command)+len(r.args)+5)
	argv = append(argv, r.command...)
	argv = append(argv, r.args...)
	argv = append(argv, flagOutput, req.Output)
	if req.GenerateHashes {
		argv = append(argv, flagGenerateHashes)
	}
	if req.DryRun {
		argv = append(argv, flagDryRun)
	}
	return append(argv, req.Declaration)
}
