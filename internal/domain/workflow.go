package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	"cairocov.dev/pkg/cairocov/internal/controller"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

var (
	// ErrNothingToMerge is returned when no trace produced any coverage.
	ErrNothingToMerge = errors.New("no coverage data to merge, make sure the traces contain execution info")
	// ErrInvalidTraceFile is returned when a trace path is not an existing JSON file.
	ErrInvalidTraceFile = errors.New("invalid trace file")
)

// RunArgs contains the arguments for generating a coverage report.
type RunArgs struct {
	TraceFiles  []m.Path
	Output      m.Path
	Include     []m.IncludedComponent
	ProjectPath m.Path
	Truncate    bool
	Threads     uint
}

// CleanArgs contains the arguments for deleting generated reports.
type CleanArgs struct {
	RootDir  m.Path
	FileName string
}

// Workflow defines the coverage workflows exposed by the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Clean(ctx context.Context, args CleanArgs) error
}

// WorkflowDeps lists the collaborators of the workflow.
type WorkflowDeps struct {
	FS             adapter.FSAdapter
	Traces         adapter.TraceLoader
	Programs       adapter.ProgramLoader
	Backend        adapter.Backend
	ProjectLocator adapter.ProjectLocator
	IgnoreLoader   adapter.IgnoreLoader
	ReportStore    adapter.ReportStore
	UI             controller.UI
}

type workflow struct {
	WorkflowDeps
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(deps WorkflowDeps) Workflow {
	return &workflow{WorkflowDeps: deps}
}

// Run loads the traces, builds the coverage of every program artifact they
// ran, merges it and appends the LCOV report to the output.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.validateTraceFiles(args.TraceFiles); err != nil {
		return err
	}

	groups, err := w.Traces.LoadGrouped(ctx, args.TraceFiles)
	if err != nil {
		slog.Error("Failed to load call traces", "error", err)
		return fmt.Errorf("load traces: %w", err)
	}

	project, err := w.buildCoverage(ctx, args, groups)
	if err != nil {
		return err
	}

	if args.Truncate {
		project = TruncateToOne(project)
	}

	if err := w.ReportStore.AppendReport(args.Output, []byte(FormatLCOV(project))); err != nil {
		slog.Error("Failed to write coverage report", "output", args.Output, "error", err)
		return fmt.Errorf("write report: %w", err)
	}

	w.UI.DisplayReportWritten(ctx, args.Output)
	w.UI.DisplaySummary(ctx, SummarizeCoverage(project))

	return nil
}

func (w *workflow) validateTraceFiles(paths []m.Path) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no trace files provided", ErrInvalidTraceFile)
	}

	for _, path := range paths {
		info, err := w.FS.FileInfo(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTraceFile, path, err)
		}

		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s is not a file", ErrInvalidTraceFile, path)
		}

		if filepath.Ext(string(path)) != ".json" {
			return fmt.Errorf("%w: %s must have a .json extension", ErrInvalidTraceFile, path)
		}
	}

	return nil
}

func (w *workflow) buildCoverage(ctx context.Context, args RunArgs, groups []m.ExecutionGroup) (m.ProjectCoverage, error) {
	coverages := make([]m.ProjectCoverage, len(groups))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, executionGroup := range groups {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			coverage, err := w.processArtifact(groupCtx, args, executionGroup)
			if err != nil {
				slog.Error("Failed to process program", "artifact", executionGroup.SourceSierraPath, "error", err)
				return err
			}

			coverages[i] = coverage

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if len(coverages) == 0 {
		return nil, ErrNothingToMerge
	}

	merged := m.ProjectCoverage{}
	for _, coverage := range coverages {
		merged = MergeProjectCoverage(merged, coverage)
	}

	return merged, nil
}

func (w *workflow) processArtifact(ctx context.Context, args RunArgs, group m.ExecutionGroup) (m.ProjectCoverage, error) {
	artifact := group.SourceSierraPath

	program, err := w.Programs.Load(ctx, artifact)
	if err != nil {
		return nil, err
	}

	projectPath, err := w.resolveProjectPath(ctx, args.ProjectPath, artifact)
	if err != nil {
		return nil, err
	}

	ignoreMatcher, err := w.IgnoreLoader.LoadIgnoreMatcher(projectPath)
	if err != nil {
		return nil, err
	}

	debugMap, err := w.Backend.Compile(ctx, artifact)
	if err != nil {
		return nil, err
	}

	filter := NewStatementCategoryFilter(
		projectPath,
		args.Include,
		ignoreMatcher,
		program.TestExecutables,
		BuildOperationNames(program.Program, debugMap),
	)

	input := BuildCoverageInput(m.ExecutionData{
		CasmLevelInfos: group.CasmLevelInfos,
		Program:        program,
	}, debugMap, filter)

	slog.Debug("Built coverage input",
		"artifact", artifact,
		"project", projectPath,
		"traces", len(group.CasmLevelInfos),
		"statements", len(input.StatementInformationMap))

	return BuildProjectCoverage(input), nil
}

func (w *workflow) resolveProjectPath(ctx context.Context, explicit m.Path, artifact m.Path) (m.Path, error) {
	if explicit != "" {
		return explicit, nil
	}

	return w.ProjectLocator.FindProjectRoot(ctx, artifact)
}

// Clean deletes every file named args.FileName below args.RootDir.
func (w *workflow) Clean(ctx context.Context, args CleanArgs) error {
	var deleted []m.Path

	err := w.FS.Walk(args.RootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() || info.Name() != args.FileName {
			return nil
		}

		deleted = append(deleted, m.Path(path))

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk directory", "root", args.RootDir, "error", err)
		return fmt.Errorf("walk %s: %w", args.RootDir, err)
	}

	for _, path := range deleted {
		if err := w.FS.Remove(path); err != nil {
			slog.Error("Failed to delete file", "path", path, "error", err)
			return fmt.Errorf("delete %s: %w", path, err)
		}

		w.UI.DisplayDeletedFile(ctx, path)
	}

	w.UI.DisplayCleanupComplete(ctx)

	return nil
}

// SummarizeCoverage returns the per-file counters of the report, sorted by path.
func SummarizeCoverage(project m.ProjectCoverage) []m.FileSummary {
	summaries := make([]m.FileSummary, 0, len(project))

	for path, file := range project {
		summaries = append(summaries, m.FileSummary{
			Path:           path,
			LinesFound:     len(file.Flatten()),
			LinesHit:       file.ExecutedLines(),
			FunctionsFound: len(file),
			FunctionsHit:   file.ExecutedFunctions(),
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Path < summaries[j].Path })

	return summaries
}
