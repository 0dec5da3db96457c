package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"obsportable.dev/pkg/obsportable/internal/domain"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

const rewriteLongDescription = `Copy the media referenced by the given scene collection files into an
assets directory and rewrite the references in place.

With --dry-run nothing is copied or written; a unified diff of every scene
file is printed instead.`

var rewriteAssetsFlag string
var rewriteDryRunFlag bool
var rewriteParallelFlag int

// rewriteCmd represents the rewrite command.
var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite --assets <dir> <scene.json>...",
		Short: "Migrate the media of scene files into an assets directory",
		Long:  rewriteLongDescription,
		Args:  cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := cmd.Flags().GetString(assetsFlagName)
			if err != nil {
				return err
			}

			dryRun, err := cmd.Flags().GetBool(dryRunFlagName)
			if err != nil {
				return err
			}

			_, err = workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				Documents: parsePaths(args),
				AssetsDir: m.Path(assets),
				Threads:   viper.GetInt(runParallelConfigKey),
				DryRun:    dryRun,
			})

			return err
		},
	}

	configureRewriteFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func configureRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rewriteAssetsFlag, assetsFlagName, "a", "", "directory the media files are copied into")
	cobra.CheckErr(cmd.MarkFlagRequired(assetsFlagName))
	cmd.Flags().BoolVarP(&rewriteDryRunFlag, dryRunFlagName, "n", false, "print the changes without copying or writing anything")
	cmd.Flags().IntVarP(&rewriteParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of scene files processed in parallel")
}
