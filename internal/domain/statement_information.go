package domain

import (
	m "cairocov.dev/pkg/cairocov/internal/model"
)

// BuildStatementInformationMap resolves the source origin of every statement
// accepted by the filter. Statements without an accepted candidate are left
// out of the map.
func BuildStatementInformationMap(
	coverage m.CoverageAnnotations,
	profiler m.ProfilerAnnotations,
	filter StatementFilter,
) m.StatementInformationMap {
	infos := make(m.StatementInformationMap, len(coverage.StatementsCodeLocations))

	for idx, locations := range coverage.StatementsCodeLocations {
		functionNames, ok := profiler.StatementsFunctions[idx]
		if !ok {
			continue
		}

		info, ok := resolveStatementInformation(idx, locations, functionNames, filter)
		if !ok {
			continue
		}

		infos[idx] = info
	}

	return infos
}

// resolveStatementInformation picks the first candidate accepted by the filter.
// Candidates are sorted by priority.
func resolveStatementInformation(
	idx m.StatementIndex,
	locations []m.CodeLocation,
	functionNames []string,
	filter StatementFilter,
) (m.StatementInformation, bool) {
	candidates := min(len(locations), len(functionNames))

	for i := range candidates {
		location, functionName := locations[i], functionNames[i]

		if !filter.ShouldInclude(idx, functionName, location.SourcePath) {
			continue
		}

		return m.StatementInformation{
			Index:        idx,
			FunctionName: functionName,
			SourcePath:   location.SourcePath.WithoutVirtualSegments(),
			LineRange:    location.Span.LineRange(),
		}, true
	}

	return m.StatementInformation{}, false
}
