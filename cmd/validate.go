package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sequence.dev/pkg/sequence/internal/adapter"
	"sequence.dev/pkg/sequence/internal/domain"
)

var validateParallelFlag int

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check level files for structural errors",
		Long: `Check that every level has nodes numbered 1..K without gaps, that all
nodes lie on the grid and that no two nodes share a cell.

Files given as arguments are checked together with --levels files.

` + levelFilesHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sourceArgs()
			source.Files = adapter.SortedPaths(append(source.Files, args...))

			return workflow.Validate(cmd.Context(), domain.ValidateArgs{
				SourceArgs: source,
				Parallel:   viper.GetInt(validateParallelKey),
			})
		},
	}

	configureValidateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func configureValidateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&validateParallelFlag, parallelFlagName, "p", viper.GetInt(validateParallelKey), "number of level files validated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), validateParallelKey)
}
