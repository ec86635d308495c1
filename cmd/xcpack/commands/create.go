package commands

import (
	"github.com/spf13/cobra"
	"github.com/xcpack/xcpack/internal/app"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [package-dir]",
		Short: "Build XCFramework bundles and a rewritten manifest for a package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			platforms, _ := cmd.Flags().GetStringSlice("platform")
			configuration, _ := cmd.Flags().GetString("configuration")
			output, _ := cmd.Flags().GetString("output")
			staging, _ := cmd.Flags().GetString("staging")
			parallel, _ := cmd.Flags().GetInt("parallel")
			zip, _ := cmd.Flags().GetBool("zip")
			urlBase, _ := cmd.Flags().GetString("url-base")
			tag, _ := cmd.Flags().GetString("tag")
			targets, _ := cmd.Flags().GetStringSlice("target")

			return c.app.Run(cmd.Context(), root, app.RunOptions{
				Platforms:     platforms,
				Configuration: configuration,
				Output:        output,
				Staging:       staging,
				Parallelism:   parallel,
				Zip:           zip,
				URLBase:       urlBase,
				Tag:           tag,
				Targets:       targets,
			})
		},
	}

	cmd.Flags().StringSliceP("platform", "p", nil, "Platform to build for (ios, macos, tvos, watchos, visionos); repeatable")
	cmd.Flags().StringP("configuration", "c", "", "Build configuration: debug or release")
	cmd.Flags().StringP("output", "o", "", "Output directory for bundles and the generated manifest")
	cmd.Flags().String("staging", "", "Staging root holding prebuilt dependency checkouts")
	cmd.Flags().Int("parallel", 0, "Maximum concurrent target builds")
	cmd.Flags().Bool("zip", false, "Archive each bundle and compute its checksum")
	cmd.Flags().String("url-base", "", "Release download URL base (enables remote-reference manifest output)")
	cmd.Flags().String("tag", "", "Release tag used in remote bundle URLs")
	cmd.Flags().StringSliceP("target", "t", nil, "Restrict the build to the named targets; repeatable")

	return cmd
}
