// Package cmd provides the root command and CLI setup for obs-portable.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"obsportable.dev/pkg/obsportable/internal/adapter"
	"obsportable.dev/pkg/obsportable/internal/controller"
	"obsportable.dev/pkg/obsportable/internal/domain"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

var fsAdapter adapter.FSAdapter
var codec adapter.DocumentCodec
var iniPatcher domain.IniPatcher
var workflow domain.Workflow
var ui controller.UI

// verboseFlag switches the log file to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	codec = adapter.NewJSONCodec()
	iniPatcher = domain.NewIniPatcher()
	workflow = domain.NewWorkflow(fsAdapter, codec, ui, iniPatcher)
}

const rootLongDescription = `obs-portable turns a local OBS Studio installation into a portable bundle
that can be carried on a USB drive or synced to another machine.

Every media file referenced by an absolute path in a scene collection is
copied into the bundle's assets directory and the reference is rewritten to
a relative one, so scenes keep working wherever the bundle is unpacked.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "obs-portable",
		Short: "Build portable OBS Studio bundles",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			warnConfigError(cmd, configErr)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug output to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// warnConfigError reports an unreadable config file; defaults stay in effect.
func warnConfigError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	slog.Warn("Ignoring config file", "error", err)
	cmd.PrintErrln("warning:", err)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
