package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

type buildInfo struct {
	Version   string
	GoVersion string
	Revision  string
	Modified  bool
}

func readBuildInfo() buildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildInfo{Version: unknownVersion}
	}

	bi := buildInfo{Version: info.Main.Version, GoVersion: info.GoVersion}
	if bi.Version == "" {
		bi.Version = unknownVersion
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			bi.Revision = setting.Value
		case "vcs.modified":
			bi.Modified = setting.Value == "true"
		}
	}

	return bi
}

func (b buildInfo) lines() []string {
	lines := []string{fmt.Sprintf("sequence version\t%s", b.Version)}

	if b.GoVersion != "" {
		lines = append(lines, fmt.Sprintf("go version\t%s", b.GoVersion))
	}

	if b.Revision != "" {
		revision := b.Revision
		if b.Modified {
			revision += " (modified)"
		}

		lines = append(lines, fmt.Sprintf("revision\t%s", revision))
	}

	return lines
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, Go version and VCS revision of this binary.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range readBuildInfo().lines() {
				cmd.Println(line)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
