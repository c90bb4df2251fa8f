package commands

import "github.com/spf13/cobra"

func (c *CLI) newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the modification times of the client sources as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Snapshot(cmd.Context(), cmd.OutOrStdout(), globalOptions(cmd))
		},
	}
}
