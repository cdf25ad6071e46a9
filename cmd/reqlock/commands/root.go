// Package commands implements the CLI commands for reqlock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reqlock/internal/app"
	"go.trai.ch/reqlock/internal/build"
	"go.trai.ch/reqlock/internal/core/domain"
)

// CLI represents the command line interface for reqlock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	logFormat string
	verbose   bool
	color     string
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.OutputOptions) error
	Lock(ctx context.Context, filenames []string, opts domain.LockOptions) error
	TestCoverage(ctx context.Context, opts domain.CoverageOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "reqlock",
		Short:         "Keep Python requirement lock files in sync with their declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Configure(app.OutputOptions{
				LogFormat: c.logFormat,
				Verbose:   c.verbose,
				Color:     c.color,
			})
		},
	}

	// Persistent flags first so -v is taken before the version flag is set up.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.logFormat, "log-format", app.LogFormatPretty, "Log format: pretty or json")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Show per-directory progress and debug logs")
	flags.StringVar(&c.color, "color", app.ColorAuto, "Color output: auto, always or never")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newPytestCovCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(spreadTestPaths(args))
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
