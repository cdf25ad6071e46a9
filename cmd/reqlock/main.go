// Package main is the entry point for the reqlock pre-commit gate.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqlock/cmd/reqlock/commands"
	"go.trai.ch/reqlock/internal/app"
	"go.trai.ch/reqlock/internal/core/domain"
	_ "go.trai.ch/reqlock/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.App.WithOutput(os.Stdout, stderr)
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if !reported(err) {
			components.Logger.Error(err)
		}
		return domain.ExitCode(err)
	}
	return 0
}

// reported tells whether the user has already seen the failure: the drift
// report for a stale lock, or the test runner's own output for a failing suite.
func reported(err error) bool {
	if errors.Is(err, domain.ErrLockDrift) {
		return true
	}
	var status *domain.StatusError
	return errors.Is(err, domain.ErrTestRunFailed) && errors.As(err, &status)
}
