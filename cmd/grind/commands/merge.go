package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <input-dir> <output-file>",
		Short: "Merge downloaded result files into a single report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ignoreFlaky, _ := cmd.Flags().GetBool("ignore-flaky")
			return c.app.Merge(cmd.Context(), args[0], args[1], ignoreFlaky)
		},
	}

	cmd.Flags().Bool("ignore-flaky", false, "Drop failures for tests that also passed in another execution")
	return cmd
}
