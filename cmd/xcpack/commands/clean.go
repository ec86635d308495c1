package commands

import (
	"github.com/spf13/cobra"
	"github.com/xcpack/xcpack/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [package-dir]",
		Short: "Remove generated bundles and staging directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			staging, _ := cmd.Flags().GetBool("staging")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}
			switch {
			case all:
				opts.Output = true
				opts.Staging = true
			case staging:
				opts.Staging = true
			default:
				opts.Output = true
			}

			return c.app.Clean(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().BoolP("staging", "s", false, "Clean the staging directory instead of the output directory")
	cmd.Flags().BoolP("all", "a", false, "Clean both output and staging directories")

	return cmd
}
