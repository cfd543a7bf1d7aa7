// Package cmd provides the root command and CLI setup for cairo-coverage.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	"cairocov.dev/pkg/cairocov/internal/controller"
	"cairocov.dev/pkg/cairocov/internal/domain"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

// workflow overrides the workflow built from the configuration when set.
var workflow domain.Workflow

var verboseFlag bool
var logPathFlag string

const rootLongDescription = `cairo-coverage turns Cairo execution traces into an LCOV coverage report.

Trace files are produced by the test runner (for example snforge with
--save-trace-data). Each trace is mapped back to the Cairo source lines
that produced the executed code.

Running cairo-coverage with trace files and no subcommand is the same as
running "cairo-coverage run".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cairo-coverage",
		Short:         "Coverage reports for Cairo",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logPathFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logPathFlag, logFlagName, "", "path of the log file (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// workflowFor returns the workflow used by a command, wiring the local
// adapters from the current configuration unless an override is set.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	fsAdapter := adapter.NewLocalFSAdapter()
	runner := adapter.NewLocalCommandRunner(time.Duration(viper.GetInt(backendTimeoutKey)) * time.Second)

	return domain.NewWorkflow(domain.WorkflowDeps{
		FS:             fsAdapter,
		Traces:         adapter.NewLocalTraceLoader(fsAdapter, viper.GetInt(runParallelConfigKey)),
		Programs:       adapter.NewLocalProgramLoader(fsAdapter),
		Backend:        adapter.NewExecBackend(runner, viper.GetString(backendCommandKey), viper.GetStringSlice(backendArgsKey)...),
		ProjectLocator: adapter.NewLayoutProjectLocator(runner),
		IgnoreLoader:   adapter.NewLocalIgnoreLoader(fsAdapter),
		ReportStore:    adapter.NewLocalReportStore(),
		UI:             controller.NewSimpleUI(cmd),
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetArgs(withDefaultCommand(rootCmd, os.Args[1:]))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// withDefaultCommand prepends "run" when the arguments name no subcommand
// but carry positional trace files.
func withDefaultCommand(root *cobra.Command, args []string) []string {
	if found, _, err := root.Find(args); err == nil && found != root {
		return args
	}

	for _, arg := range args {
		if arg == "help" || arg == "completion" {
			return args
		}

		if !strings.HasPrefix(arg, "-") {
			return append([]string{runCmd.Name()}, args...)
		}
	}

	return args
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
