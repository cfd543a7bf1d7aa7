package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cairocov.dev/pkg/cairocov/internal/domain"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

var (
	cleanRootDirFlag  string
	cleanFileNameFlag string
)

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete coverage files",
		Long: `Recursively delete every file with the given name below the root directory.
Useful before a run, since reports are appended to existing files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Clean(cmd.Context(), domain.CleanArgs{
				RootDir:  m.Path(viper.GetString(cleanRootDirConfigKey)),
				FileName: viper.GetString(cleanFileNameConfigKey),
			})
		},
	}

	cmd.Flags().StringVarP(&cleanRootDirFlag, rootDirFlagName, "r", defaultCleanRootDir, "root directory to search")
	bindFlagToConfig(cmd.Flags().Lookup(rootDirFlagName), cleanRootDirConfigKey)

	cmd.Flags().StringVarP(&cleanFileNameFlag, filesToDeleteFlagName, "f", defaultOutput, "name of the files to delete")
	bindFlagToConfig(cmd.Flags().Lookup(filesToDeleteFlagName), cleanFileNameConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
