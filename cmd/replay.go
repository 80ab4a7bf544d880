package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

var replayLevelFlag string
var replayDragFlag bool

// replayCmd represents the replay command.
var replayCmd = newReplayCmd()

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [row,col...]",
		Short: "Apply a list of moves to a level",
		Long: `Apply moves to a level one by one and report how the path reacts to each.

Moves are cells written as row,col (zero-based), e.g.:

  sequence replay --level Tutorial 0,0 0,1 0,2 0,3

With --drag, moves behave like dragging a finger: touching an earlier
cell of the path cuts the path back to it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := m.ParsePositions(args)
			if err != nil {
				return fmt.Errorf("parse moves: %w", err)
			}

			return workflow.Replay(cmd.Context(), domain.ReplayArgs{
				SourceArgs: sourceArgs(),
				Level:      viper.GetString(replayLevelKey),
				Moves:      moves,
				Drag:       viper.GetBool(replayDragKey),
			})
		},
	}

	configureReplayFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func configureReplayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&replayLevelFlag, levelFlagName, "L", viper.GetString(replayLevelKey), "level id, name or 1-based number")
	bindFlagToConfig(cmd.Flags().Lookup(levelFlagName), replayLevelKey)

	cmd.Flags().BoolVar(&replayDragFlag, dragFlagName, viper.GetBool(replayDragKey), "treat moves as drag samples")
	bindFlagToConfig(cmd.Flags().Lookup(dragFlagName), replayDragKey)
}
