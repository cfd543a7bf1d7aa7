package domain

import (
	"slices"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

// StatementFilter decides whether a statement candidate counts toward coverage.
type StatementFilter interface {
	ShouldInclude(idx m.StatementIndex, functionName string, sourcePath m.Path) bool
}

// StatementCategoryFilter keeps user statements that are reliable, not ignored
// and, for tests and macros, explicitly included.
type StatementCategoryFilter struct {
	projectPath     m.Path
	includeTests    bool
	includeMacros   bool
	testFunctions   map[string]struct{}
	ignoreMatcher   adapter.IgnoreMatcher
	operationByStmt map[m.StatementIndex]string
}

// NewStatementCategoryFilter builds a filter for one program artifact.
func NewStatementCategoryFilter(
	projectPath m.Path,
	include []m.IncludedComponent,
	ignoreMatcher adapter.IgnoreMatcher,
	testFunctions []string,
	operationNames map[m.StatementIndex]string,
) *StatementCategoryFilter {
	tests := make(map[string]struct{}, len(testFunctions))
	for _, name := range testFunctions {
		tests[name] = struct{}{}
	}

	return &StatementCategoryFilter{
		projectPath:     projectPath,
		includeTests:    slices.Contains(include, m.IncludeTestFunctions),
		includeMacros:   slices.Contains(include, m.IncludeMacros),
		testFunctions:   tests,
		ignoreMatcher:   ignoreMatcher,
		operationByStmt: operationNames,
	}
}

// ShouldInclude implements StatementFilter.
func (f *StatementCategoryFilter) ShouldInclude(idx m.StatementIndex, functionName string, sourcePath m.Path) bool {
	return f.isAllowedCategory(functionName, sourcePath) &&
		f.isUserCode(sourcePath) &&
		f.isReliableOperation(idx) &&
		f.isNotIgnored(sourcePath)
}

func (f *StatementCategoryFilter) isAllowedCategory(functionName string, sourcePath m.Path) bool {
	if _, isTest := f.testFunctions[functionName]; isTest {
		return f.includeTests
	}

	if sourcePath.IsVirtual() {
		return f.includeMacros
	}

	return true
}

func (f *StatementCategoryFilter) isUserCode(sourcePath m.Path) bool {
	return sourcePath.Contains(f.projectPath)
}

func (f *StatementCategoryFilter) isReliableOperation(idx m.StatementIndex) bool {
	name, ok := f.operationByStmt[idx]
	if !ok {
		return true
	}

	return IsReliableOperation(name)
}

func (f *StatementCategoryFilter) isNotIgnored(sourcePath m.Path) bool {
	if f.ignoreMatcher == nil {
		return true
	}

	return !f.ignoreMatcher.IsIgnored(sourcePath)
}
