package domain

import (
	"fmt"
	"io"
	"sort"
	"strings"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// FormatLCOV renders the coverage as LCOV records, files and functions sorted
// by name and lines sorted by number.
func FormatLCOV(project m.ProjectCoverage) string {
	var b strings.Builder

	// strings.Builder never fails to write.
	_ = WriteLCOV(&b, project)

	return b.String()
}

// WriteLCOV writes the LCOV records of the coverage to w.
func WriteLCOV(w io.Writer, project m.ProjectCoverage) error {
	lw := &lcovWriter{w: w}

	for _, path := range sortedPaths(project) {
		file := project[path]

		lw.generalInformation(path)
		lw.functionDetails(file)
		lw.functionSummary(file)
		lw.lineExecution(file)
		lw.endOfRecord()

		if lw.err != nil {
			return fmt.Errorf("write lcov record for %s: %w", path, lw.err)
		}
	}

	return nil
}

type lcovWriter struct {
	w   io.Writer
	err error
}

func (lw *lcovWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}

	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// generalInformation writes TN (test name, always empty) and SF (source file).
func (lw *lcovWriter) generalInformation(path m.Path) {
	lw.printf("TN:\n")
	lw.printf("SF:%s\n", path)
}

// functionDetails writes FN (first line, name) and FNDA (hits, name) per function.
func (lw *lcovWriter) functionDetails(file m.FileCoverage) {
	for _, name := range sortedFunctionNames(file) {
		function := file[name]

		lw.printf("FN:%d,%s\n", function.StartsAt(), name)
		lw.printf("FNDA:%d,%s\n", function.MaxExecutionCount(), name)
	}
}

// functionSummary writes FNF (functions found) and FNH (functions hit).
func (lw *lcovWriter) functionSummary(file m.FileCoverage) {
	lw.printf("FNF:%d\n", len(file))
	lw.printf("FNH:%d\n", file.ExecutedFunctions())
}

// lineExecution writes DA (line, hits) per line, then LF (lines found) and LH (lines hit).
func (lw *lcovWriter) lineExecution(file m.FileCoverage) {
	lines := file.Flatten()

	for _, line := range sortedLines(lines) {
		lw.printf("DA:%d,%d\n", line, lines[line])
	}

	lw.printf("LF:%d\n", len(lines))
	lw.printf("LH:%d\n", file.ExecutedLines())
}

func (lw *lcovWriter) endOfRecord() {
	lw.printf("end_of_record\n")
}

func sortedPaths(project m.ProjectCoverage) []m.Path {
	paths := make([]m.Path, 0, len(project))
	for path := range project {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

func sortedFunctionNames(file m.FileCoverage) []string {
	names := make([]string, 0, len(file))
	for name := range file {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func sortedLines(function m.FunctionCoverage) []m.LineNumber {
	lines := make([]m.LineNumber, 0, len(function))
	for line := range function {
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })

	return lines
}
