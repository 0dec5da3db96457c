package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"obsportable.dev/pkg/obsportable/internal/domain"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

const buildLongDescription = `Build a portable OBS bundle inside <destination>/obs_portable.

The OBS installation, profiles, scene collections and ini files are copied
into the bundle, global.ini is switched to portable locations, and every
media file referenced by a scene is copied into the assets directory.`

var buildInstallDirFlag string
var buildAppDataDirFlag string
var buildAssetsDirFlag string
var buildParallelFlag int

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <destination>",
		Short: "Build a portable OBS bundle",
		Long:  buildLongDescription,
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindBuildFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Build(cmd.Context(), domain.BuildArgs{
				Destination:   m.Path(args[0]),
				InstallDir:    m.Path(viper.GetString(installDirConfigKey)),
				AppDataDir:    m.Path(viper.GetString(appDataDirConfigKey)),
				AssetsDirName: viper.GetString(assetsDirNameConfigKey),
				Threads:       viper.GetInt(runParallelConfigKey),
			})

			return err
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&buildInstallDirFlag, installDirFlagName, viper.GetString(installDirConfigKey), "OBS Studio installation directory")
	cmd.Flags().StringVar(&buildAppDataDirFlag, appDataDirFlagName, viper.GetString(appDataDirConfigKey), "OBS Studio profile directory holding basic/ and global.ini")
	cmd.Flags().StringVar(&buildAssetsDirFlag, assetsDirFlagName, viper.GetString(assetsDirNameConfigKey), "name of the assets directory inside the bundle")
	cmd.Flags().IntVarP(&buildParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of scene files processed in parallel")
}

// bindBuildFlags binds at run time so keys shared with other commands read
// the flags of the command being executed.
func bindBuildFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(installDirFlagName), installDirConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(appDataDirFlagName), appDataDirConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(assetsDirFlagName), assetsDirNameConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
