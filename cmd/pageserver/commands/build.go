package commands

import (
	"github.com/k4g4/Personal-Page/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild the client if its sources changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				Options: globalOptions(cmd),
				Force:   force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even if nothing changed")
	return cmd
}
