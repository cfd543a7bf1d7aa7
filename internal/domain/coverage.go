package domain

import (
	m "cairocov.dev/pkg/cairocov/internal/model"
	"cairocov.dev/pkg/cairocov/pkg"
)

// BuildCoverageInput correlates the traces of one artifact with its debug metadata.
func BuildCoverageInput(data m.ExecutionData, debugMap m.DebugMap, filter StatementFilter) m.CoverageInput {
	infos := BuildStatementInformationMap(
		data.Program.CoverageAnnotations,
		data.Program.ProfilerAnnotations,
		filter,
	)

	return m.CoverageInput{
		ExecutedStatementCount:  BuildExecutedStatementCount(data.CasmLevelInfos, debugMap, infos),
		StatementInformationMap: infos,
	}
}

// BuildProjectCoverage folds statement origins and hit counts into per-file,
// per-function line coverage. Every line of a retained statement is present,
// with count 0 when it was never executed.
func BuildProjectCoverage(input m.CoverageInput) m.ProjectCoverage {
	project := m.ProjectCoverage{}

	for idx, info := range input.StatementInformationMap {
		file, ok := project[info.SourcePath]
		if !ok {
			file = m.FileCoverage{}
			project[info.SourcePath] = file
		}

		function, ok := file[info.FunctionName]
		if !ok {
			function = m.FunctionCoverage{}
			file[info.FunctionName] = function
		}

		registerLineExecution(function, info.LineRange, input.ExecutedStatementCount[idx])
	}

	return project
}

func registerLineExecution(function m.FunctionCoverage, lines m.LineRange, executed int) {
	for _, line := range lines.Lines() {
		function[line] += executed
	}
}

// TruncateToOne returns a copy of the coverage with every count clamped to 1.
// Raw counts differ between compiler versions while hit-or-not does not.
func TruncateToOne(project m.ProjectCoverage) m.ProjectCoverage {
	truncated := make(m.ProjectCoverage, len(project))

	for path, file := range project {
		truncatedFile := make(m.FileCoverage, len(file))

		for name, function := range file {
			truncatedFunction := make(m.FunctionCoverage, len(function))
			for line, count := range function {
				truncatedFunction[line] = min(count, 1)
			}

			truncatedFile[name] = truncatedFunction
		}

		truncated[path] = truncatedFile
	}

	return truncated
}

// MergeProjectCoverage sums the coverage of two artifacts. The same source
// compiled into several artifacts is reported once.
func MergeProjectCoverage(a, b m.ProjectCoverage) m.ProjectCoverage {
	return pkg.MergeNested(a, b, mergeFileCoverage)
}

func mergeFileCoverage(a, b m.FileCoverage) m.FileCoverage {
	return pkg.MergeNested(a, b, pkg.MergeCounts[m.FunctionCoverage])
}
