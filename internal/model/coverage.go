// Package model defines the data structures for trace-to-source coverage.
package model

// StatementIndex identifies one Sierra statement within a compiled program.
type StatementIndex int

// StatementInformation is the source origin resolved for a retained statement.
type StatementInformation struct {
	Index        StatementIndex
	FunctionName string
	SourcePath   Path
	LineRange    LineRange
}

// SameLocation reports whether both statements resolve to the same function,
// file and line range. The statement index is not compared.
func (s StatementInformation) SameLocation(other StatementInformation) bool {
	return s.FunctionName == other.FunctionName &&
		s.SourcePath == other.SourcePath &&
		s.LineRange == other.LineRange
}

// StatementInformationMap maps retained statements to their source origin.
type StatementInformationMap map[StatementIndex]StatementInformation

// ExecutedStatementCount maps statements to the number of times they were hit.
type ExecutedStatementCount map[StatementIndex]int

// CoverageInput holds everything needed to build the coverage of one program artifact.
type CoverageInput struct {
	ExecutedStatementCount  ExecutedStatementCount
	StatementInformationMap StatementInformationMap
}

// FunctionCoverage maps source lines of one function to their hit count.
// A line with count 0 is known but never executed; a missing line is not measured.
type FunctionCoverage map[LineNumber]int

// WasExecuted reports whether any line of the function was hit.
func (f FunctionCoverage) WasExecuted() bool {
	for _, count := range f {
		if count > 0 {
			return true
		}
	}

	return false
}

// MaxExecutionCount returns the highest hit count among the function lines.
func (f FunctionCoverage) MaxExecutionCount() int {
	highest := 0
	for _, count := range f {
		highest = max(highest, count)
	}

	return highest
}

// StartsAt returns the lowest known line of the function, or 0 when empty.
func (f FunctionCoverage) StartsAt() LineNumber {
	var (
		first LineNumber
		found bool
	)

	for line := range f {
		if !found || line < first {
			first = line
			found = true
		}
	}

	return first
}

// FileCoverage maps function names to their coverage within one source file.
type FileCoverage map[string]FunctionCoverage

// ExecutedFunctions returns the number of functions with at least one hit line.
func (f FileCoverage) ExecutedFunctions() int {
	executed := 0

	for _, function := range f {
		if function.WasExecuted() {
			executed++
		}
	}

	return executed
}

// Flatten merges all functions of the file into a single line map, summing
// the counts of lines shared by several functions.
func (f FileCoverage) Flatten() FunctionCoverage {
	flat := FunctionCoverage{}

	for _, function := range f {
		for line, count := range function {
			flat[line] += count
		}
	}

	return flat
}

// ExecutedLines returns the number of file lines hit at least once.
func (f FileCoverage) ExecutedLines() int {
	executed := 0

	for _, count := range f.Flatten() {
		if count > 0 {
			executed++
		}
	}

	return executed
}

// ProjectCoverage maps source file paths to their coverage.
type ProjectCoverage map[Path]FileCoverage

// IncludedComponent is an optional category of statements added to the report.
type IncludedComponent string

const (
	// IncludeTestFunctions keeps statements of functions marked as tests.
	IncludeTestFunctions IncludedComponent = "test-functions"
	// IncludeMacros keeps statements generated by macro expansion.
	IncludeMacros IncludedComponent = "macros"
)

// IncludedComponents lists every accepted component value.
var IncludedComponents = []IncludedComponent{IncludeTestFunctions, IncludeMacros}

// FileSummary holds the hit and found counters of one file of a report.
type FileSummary struct {
	Path           Path
	LinesFound     int
	LinesHit       int
	FunctionsFound int
	FunctionsHit   int
}

// LinePercentage returns the share of hit lines, 100 for a file without lines.
func (s FileSummary) LinePercentage() float64 {
	if s.LinesFound == 0 {
		return 100
	}

	return float64(s.LinesHit) * 100 / float64(s.LinesFound)
}
