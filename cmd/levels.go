package cmd

import (
	"github.com/spf13/cobra"

	"sequence.dev/pkg/sequence/internal/domain"
)

const exportFlagName = "export"

// levelsCmd represents the levels command.
var levelsCmd = newLevelsCmd()

func newLevelsCmd() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List available levels",
		Long: `List the built-in levels and those loaded from level files, with their validity.

With --export the listed levels are also written to a single level file,
which is a convenient starting point for a custom catalog:

  sequence levels --export my-levels.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Levels(cmd.Context(), domain.LevelsArgs{
				SourceArgs: sourceArgs(),
				Export:     exportPath,
			})
		},
	}

	cmd.Flags().StringVarP(&exportPath, exportFlagName, "o", "", "write the listed levels to this YAML file")

	return cmd
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
