package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/reqlock/internal/core/domain"
)

func (c *CLI) newPytestCovCmd() *cobra.Command {
	var opts domain.CoverageOptions

	cmd := &cobra.Command{
		Use:   "pytest-cov [filenames...]",
		Short: "Run the test suite and fail below a minimum coverage",
		Long: `Runs the configured test runner with coverage enforcement and exits with its
status. Filenames are accepted for hook compatibility and ignored.

--test_paths takes every value up to the next flag, so both
"--test_paths tests/unit tests/int" and "--test_paths tests/unit,tests/int" work.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.TestCoverage(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.SrcPath, "src_path", ".", "Source path measured for coverage")
	cmd.Flags().StringSliceVar(&opts.TestPaths, "test_paths", []string{"."}, "Test paths, comma separated or listed after the flag")
	cmd.Flags().IntVar(&opts.MinCoverage, "min_coverage", domain.DefaultMinCoverage, "Minimum test coverage")
	return cmd
}

const flagTestPaths = "--test_paths"

// spreadTestPaths rewrites "--test_paths a b c" into one flag per value so the
// flag accepts a list of values after it, as hook configurations write it.
// Collection stops at the next token that looks like a flag.
func spreadTestPaths(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return append(out, args[i:]...)
		}
		if args[i] != flagTestPaths {
			out = append(out, args[i])
			continue
		}

		out = append(out, args[i])
		values := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			if values > 0 {
				out = append(out, flagTestPaths)
			}
			out = append(out, args[i])
			values++
		}
	}
	return out
}
