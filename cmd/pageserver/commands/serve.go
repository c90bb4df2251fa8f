package commands

import (
	"github.com/k4g4/Personal-Page/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API and the built client",
		Long: `Serve the API under /api and the built client from the dist directory.

In dev mode the client is kept fresh by one of two strategies:
  gate   rescan the sources on each request and rebuild before answering
  watch  run the build tools in their own watch mode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.ServeOptions{Options: globalOptions(cmd)}
			if cmd.Flags().Changed("dev") {
				dev, _ := cmd.Flags().GetBool("dev")
				opts.Dev = &dev
			}
			opts.Addr, _ = cmd.Flags().GetString("addr")
			opts.Strategy, _ = cmd.Flags().GetString("strategy")
			return c.app.Serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("dev", "d", false, "Rebuild client assets as their sources change")
	cmd.Flags().StringP("addr", "a", "", "Listen address (default from config, localhost:3000)")
	cmd.Flags().StringP("strategy", "s", "", "Dev strategy: gate or watch")
	return cmd
}
