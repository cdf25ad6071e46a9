// Package app implements the application layer for reqlock.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/reqlock/internal/adapters/detector"
	"go.trai.ch/reqlock/internal/adapters/linear"
	"go.trai.ch/reqlock/internal/adapters/piptools"
	"go.trai.ch/reqlock/internal/adapters/pytest"
	"go.trai.ch/reqlock/internal/adapters/report"
	"go.trai.ch/reqlock/internal/adapters/telemetry"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/engine/syncer"
	"go.trai.ch/reqlock/internal/ui/output"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Log formats accepted by Configure.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Color modes accepted by Configure.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// outputConfigurer is implemented by loggers whose presentation can change at runtime.
type outputConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
	SetColor(enable bool)
}

// OutputOptions controls how the application reports progress and errors.
type OutputOptions struct {
	LogFormat string
	Verbose   bool
	Color     string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	fs           ports.FileSystem
	logger       ports.Logger

	stdout  io.Writer
	stderr  io.Writer
	getwd   func() (string, error)
	verbose bool
	color   detector.ColorMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	fsys ports.FileSystem,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		fs:           fsys,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getwd:        os.Getwd,
		color:        detector.ModeAuto,
	}
}

// WithOutput redirects the streams used for progress, reports and test runner output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkingDir pins the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Configure applies the output options to the app and its logger.
func (a *App) Configure(opts OutputOptions) error {
	switch opts.LogFormat {
	case "", LogFormatPretty, LogFormatJSON:
	default:
		return zerr.With(zerr.New("unknown log format"), "log_format", opts.LogFormat)
	}

	switch opts.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return zerr.With(zerr.New("unknown color mode"), "color", opts.Color)
	}

	a.verbose = opts.Verbose
	a.color = detector.ResolveMode(detector.DetectEnvironment(), opts.Color)

	if l, ok := a.logger.(outputConfigurer); ok {
		l.SetColor(a.color.Enabled())
		l.SetVerbose(opts.Verbose)
		l.SetJSON(opts.LogFormat == LogFormatJSON)
	}
	return nil
}

// Lock regenerates or verifies the lock files paired with the changed filenames.
func (a *App) Lock(ctx context.Context, filenames []string, opts domain.LockOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	// Resolver output reaches stderr exactly once: through the progress renderer
	// when verbose, directly otherwise.
	var tracer ports.Tracer = telemetry.NewNoOpTracer()
	var renderer ports.Renderer
	diag := a.stderr
	if a.verbose {
		renderer = linear.NewRenderer(a.stderr, a.colorProfile())
		otelTracer := telemetry.NewOTelTracer(renderer)
		defer func() {
			_ = otelTracer.Shutdown(ctx)
		}()
		tracer = otelTracer
		diag = io.Discard
	}

	s := syncer.NewSyncer(a.fs, piptools.NewResolver(a.executor, cfg.Resolver), tracer, a.logger).
		WithDiagnostics(diag).
		WithSortedDirectories(cfg.Check.SortDirectories)

	g, gctx := errgroup.WithContext(ctx)

	if renderer != nil {
		g.Go(func() error {
			if err := renderer.Start(gctx); err != nil {
				return err
			}
			return renderer.Wait()
		})
	}

	g.Go(func() error {
		if renderer != nil {
			defer func() {
				_ = renderer.Stop()
			}()
		}
		return s.Run(gctx, filenames, opts)
	})

	err = g.Wait()

	var drift *domain.DriftError
	if errors.As(err, &drift) {
		var reporter ports.DriftReporter = report.NewReporter(a.stderr, a.colorProfile())
		if rerr := reporter.ReportDrift(drift); rerr != nil {
			a.logger.Warn(fmt.Sprintf("failed to render drift report: %v", rerr))
		}
	}
	return err
}

// TestCoverage runs the configured test runner with coverage enforcement.
func (a *App) TestCoverage(ctx context.Context, opts domain.CoverageOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	a.logger.Debug(fmt.Sprintf("coverage: src=%s tests=%s min=%d",
		opts.SrcPath, strings.Join(opts.TestPaths, ","), opts.MinCoverage))

	var runner ports.TestRunner = pytest.NewRunner(a.executor, cfg.TestRunner).WithOutput(a.stdout, a.stderr)
	return runner.Run(ctx, opts)
}

func (a *App) loadConfig() (*domain.Config, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) colorProfile() func() termenv.Profile {
	if a.color == detector.ModeAuto {
		return output.ColorProfile
	}
	return output.ColorProfileFor(a.color.Enabled())
}
