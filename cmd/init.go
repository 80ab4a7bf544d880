package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sequence.dev/pkg/sequence/internal/domain"
)

const (
	withLevelsFlagName    = "with-levels"
	defaultLevelsFileName = "levels.yaml"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var withLevels bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default sequence.yaml configuration file",
		Long: `Create a sequence.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.

With --with-levels the built-in levels are also copied to levels.yaml and
the configuration switches to that file, so the catalog can be edited.
Existing files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := filepath.Join(configFolderPath, configFileName)
			levelsPath := filepath.Join(configFolderPath, defaultLevelsFileName)

			if withLevels {
				if _, err := os.Stat(levelsPath); err == nil {
					return fmt.Errorf("level file %s already exists", levelsPath)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check level file: %w", err)
				}

				viper.Set(levelFilesKey, []string{levelsPath})
				viper.Set(noBuiltinKey, true)
			}

			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			if !withLevels {
				return nil
			}

			if err := levelStore.Save(cmd.Context(), levelsPath, domain.DefaultLevels()); err != nil {
				return fmt.Errorf("failed to write level file: %w", err)
			}

			cmd.Printf("Wrote %s and %s\n", configPath, levelsPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&withLevels, withLevelsFlagName, false, "also write the built-in levels to "+defaultLevelsFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
