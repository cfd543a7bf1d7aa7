package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildVersion is stamped by release builds:
// -ldflags "-X cairocov.dev/pkg/cairocov/cmd.buildVersion=v0.1.0".
var buildVersion string

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the cairo-coverage version",
		Long:  "Print the cairo-coverage release and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			for _, line := range versionLines(buildVersion, info, ok) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines prefers the stamped version over the module version recorded
// in the build info.
func versionLines(stamped string, info *debug.BuildInfo, ok bool) []string {
	version := stamped
	if version == "" && ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if version == "" {
		version = "unknown"
	}

	lines := []string{"cairo-coverage " + version}
	if ok && info.GoVersion != "" {
		lines = append(lines, "built with "+info.GoVersion)
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
