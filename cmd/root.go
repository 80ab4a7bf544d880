// Package cmd provides the root command and CLI setup for sequence.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sequence.dev/pkg/sequence/internal/adapter"
	"sequence.dev/pkg/sequence/internal/controller"
	"sequence.dev/pkg/sequence/internal/domain"
)

var levelStore adapter.LevelStore
var ui domain.UI
var workflow domain.Workflow

// levelFilesFlag is a root-level flag listing extra level files.
var levelFilesFlag []string

// noBuiltinFlag hides the levels shipped with the binary.
var noBuiltinFlag bool

// verboseFlag switches the log file to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	levelStore = adapter.NewYAMLLevelStore()
	workflow = domain.NewWorkflow(levelStore, ui, nil)
}

const levelFilesHelp = `Level files are YAML documents of the form:

  levels:
    - name: Tutorial
      grid_size: 4
      nodes:
        1: [0, 0]
        2: [0, 3]
        3: [3, 3]`

const rootLongDescription = `Sequence is a number-connecting puzzle: draw a single path across the
grid that visits every numbered node in ascending order, one adjacent
cell at a time, without crossing itself.

` + levelFilesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence",
		Short: "Number-connecting path puzzle",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&levelFilesFlag, levelsFlagName, "l", viper.GetStringSlice(levelFilesKey), "additional level file (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(levelsFlagName), levelFilesKey)

	cmd.PersistentFlags().BoolVar(&noBuiltinFlag, noBuiltinFlagName, viper.GetBool(noBuiltinKey), "do not include the built-in levels")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noBuiltinFlagName), noBuiltinKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
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

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{
		Files:   viper.GetStringSlice(levelFilesKey),
		Builtin: !viper.GetBool(noBuiltinKey),
	}
}
