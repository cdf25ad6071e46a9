package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reqlock/internal/core/domain"
)

func (c *CLI) newLockCmd() *cobra.Command {
	var opts domain.LockOptions

	cmd := &cobra.Command{
		Use:   "lock [filenames...]",
		Short: "Regenerate or verify the lock files paired with the changed requirement files",
		Long: `Pairs every changed requirements.in, requirements.txt or requirements-lock.txt
with its counterpart in the same directory, then regenerates each lock whose
declaration changed. With --check-only nothing is written and the run fails
when a committed lock differs from a fresh resolution.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Lock(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.GenerateHashes, "generate-hashes", false, "Include package hashes in the lock files")
	cmd.Flags().BoolVar(&opts.CheckOnly, "check-only", false, "Verify the lock files without writing them")
	return cmd
}
