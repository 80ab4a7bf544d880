package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sequence.dev/pkg/sequence/internal/domain"
)

var playLevelFlag string

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Long: `Start an interactive game. Move the cursor with the arrow keys or hjkl,
press space to touch a cell, d to draw while moving, u to undo, r to
reset, n/p to change level and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Play(cmd.Context(), domain.PlayArgs{
				SourceArgs: sourceArgs(),
				Level:      viper.GetString(playLevelKey),
			})
		},
	}

	configurePlayFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func configurePlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&playLevelFlag, levelFlagName, "L", viper.GetString(playLevelKey), "level id, name or 1-based number to start with")
	bindFlagToConfig(cmd.Flags().Lookup(levelFlagName), playLevelKey)
}
