package cmd

import (
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cairocov.dev/pkg/cairocov/internal/domain"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

var (
	runOutputFlag      string
	runIncludeFlag     []string
	runProjectPathFlag string
	runTruncateFlag    bool
	runParallelFlag    int
)

const runLongDescription = `Generate an LCOV report from one or more trace files.

The report is appended to the output file, which is created when missing.
Statements of test functions are left out unless --include test-functions
is given. Code generated by macros is included by default.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <trace-file>...",
		Short: "Generate a coverage report from trace files",
		Long:  runLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, err := parseIncluded(viper.GetStringSlice(includeConfigKey))
			if err != nil {
				return err
			}

			projectPath := viper.GetString(projectPathConfigKey)
			if err := validateProjectPath(projectPath); err != nil {
				return err
			}

			return workflowFor(cmd).Run(cmd.Context(), domain.RunArgs{
				TraceFiles:  parsePaths(args),
				Output:      m.Path(viper.GetString(outputConfigKey)),
				Include:     include,
				ProjectPath: m.Path(projectPath),
				Truncate:    viper.GetBool(truncateConfigKey),
				Threads:     parallelism(viper.GetInt(runParallelConfigKey)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runOutputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "path to the output file")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringSliceVarP(&runIncludeFlag, includeFlagName, "i", defaultInclude,
		fmt.Sprintf("additional components in the report (%s)", joinIncluded(m.IncludedComponents)))
	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), includeConfigKey)

	cmd.Flags().StringVar(&runProjectPathFlag, projectPathFlagName, "",
		"path to the project directory, inferred from the trace data when omitted")
	bindFlagToConfig(cmd.Flags().Lookup(projectPathFlagName), projectPathConfigKey)

	cmd.Flags().BoolVar(&runTruncateFlag, truncateFlagName, defaultTruncate, "report every executed line with a hit count of 1")
	bindFlagToConfig(cmd.Flags().Lookup(truncateFlagName), truncateConfigKey)

	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel,
		"number of program artifacts processed in parallel (0 uses every CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}

// parseIncluded validates the included components. Values coming from the
// environment or the config file may hold several comma separated components.
func parseIncluded(values []string) ([]m.IncludedComponent, error) {
	included := make([]m.IncludedComponent, 0, len(values))

	for _, value := range splitComponents(values) {
		component := m.IncludedComponent(value)
		if !slices.Contains(m.IncludedComponents, component) {
			return nil, fmt.Errorf("invalid value %q for --%s, expected one of: %s",
				value, includeFlagName, joinIncluded(m.IncludedComponents))
		}

		if !slices.Contains(included, component) {
			included = append(included, component)
		}
	}

	return included, nil
}

func splitComponents(values []string) []string {
	var components []string

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				components = append(components, part)
			}
		}
	}

	return components
}

func joinIncluded(components []m.IncludedComponent) string {
	joined := ""

	for i, component := range components {
		if i > 0 {
			joined += ", "
		}

		joined += string(component)
	}

	return joined
}

func validateProjectPath(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("project path does not exist: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("project path is not a directory: %s", path)
	}

	return nil
}

func parallelism(configured int) uint {
	if configured <= 0 {
		return uint(runtime.NumCPU())
	}

	return uint(configured)
}
