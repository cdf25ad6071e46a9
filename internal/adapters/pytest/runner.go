// Package pytest runs a Python test suite under coverage enforcement.
package pytest

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strconv"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.TestRunner on top of an executor.
type Runner struct {
	executor ports.Executor
	command  []string
	stdout   io.Writer
	stderr   io.Writer
}

var _ ports.TestRunner = (*Runner)(nil)

// NewRunner creates a Runner invoking the configured test command.
// Output is streamed to the process's own stdout and stderr.
func NewRunner(executor ports.Executor, cfg domain.TestRunnerConfig) *Runner {
	return &Runner{
		executor: executor,
		command:  slices.Clone(cfg.Command),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput redirects the test runner's output streams.
func (r *Runner) WithOutput(stdout, stderr io.Writer) *Runner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes the suite. A failing run returns an error carrying the runner's exit status.
func (r *Runner) Run(ctx context.Context, opts domain.CoverageOptions) error {
	if opts.MinCoverage < 0 || opts.MinCoverage > 100 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidCoverage, "invalid coverage threshold"), "min_coverage", opts.MinCoverage)
	}

	cmd := domain.Command{Args: r.Args(opts)}
	if err := r.executor.Execute(ctx, cmd, r.stdout, r.stderr); err != nil {
		return errors.Join(domain.ErrTestRunFailed, err)
	}
	return nil
}

// Args builds the argv for opts. Empty source or test paths fall back to the current directory.
func (r *Runner) Args(opts domain.CoverageOptions) []string {
	src := opts.SrcPath
	if src == "" {
		src = "."
	}
	tests := opts.TestPaths
	if len(tests) == 0 {
		tests = []string{"."}
	}

	argv := make([]string, 0, len(r.command)+9+len(tests))
	argv = append(argv, r.command...)
	argv = append(argv,
		"--cov", src,
		"--cov-report", "term-missing",
		"--disable-pytest-warnings",
		"-v",
		"--cov-fail-under", strconv.Itoa(opts.MinCoverage),
	)
	return append(argv, tests...)
}
