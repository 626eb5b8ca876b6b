package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdview/internal/cleanup"
)

// newSweepCmd is the detached cleanup child. The scheduler re-execs this
// binary with "sweep" so the deletion survives the parent's exit; users
// never run it by hand.
func newSweepCmd() *cobra.Command {
	var delay time.Duration
	var dir string
	cmd := &cobra.Command{
		Use:    "sweep <path> [path ...]",
		Short:  "Delete files after a delay",
		Hidden: true,
		Args:   cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup.Sweep(delay, dir, args)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", cleanup.DefaultDelay, "how long to wait before deleting")
	cmd.Flags().StringVar(&dir, "rmdir", "", "directory to remove once the files are gone")
	return cmd
}
