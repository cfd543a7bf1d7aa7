package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

func TestBuildProjectCoverage_RegistersEveryLine(t *testing.T) {
	input := m.CoverageInput{
		StatementInformationMap: m.StatementInformationMap{
			0: {Index: 0, FunctionName: "pkg::f", SourcePath: "/p/src/lib.cairo", LineRange: m.LineRange{Start: 2, End: 4}},
			1: {Index: 1, FunctionName: "pkg::f", SourcePath: "/p/src/lib.cairo", LineRange: m.LineRange{Start: 4, End: 4}},
			2: {Index: 2, FunctionName: "pkg::g", SourcePath: "/p/src/other.cairo", LineRange: m.LineRange{Start: 9, End: 9}},
		},
		ExecutedStatementCount: m.ExecutedStatementCount{0: 2, 1: 3, 7: 100},
	}

	assert.Equal(t, m.ProjectCoverage{
		"/p/src/lib.cairo": {
			"pkg::f": {2: 2, 3: 2, 4: 5},
		},
		"/p/src/other.cairo": {
			"pkg::g": {9: 0},
		},
	}, BuildProjectCoverage(input))
}

func TestTruncateToOne(t *testing.T) {
	project := m.ProjectCoverage{
		"/p/src/lib.cairo": {"pkg::f": {1: 0, 2: 1, 3: 7}},
	}

	truncated := TruncateToOne(project)

	assert.Equal(t, m.ProjectCoverage{
		"/p/src/lib.cairo": {"pkg::f": {1: 0, 2: 1, 3: 1}},
	}, truncated)
	assert.Equal(t, truncated, TruncateToOne(truncated))
	assert.Equal(t, 7, project["/p/src/lib.cairo"]["pkg::f"][3], "input must not be modified")
}

func TestMergeProjectCoverage(t *testing.T) {
	a := m.ProjectCoverage{
		"/p/a.cairo": {"pkg::f": {1: 1, 2: 0}},
		"/p/b.cairo": {"pkg::g": {5: 2}},
	}
	b := m.ProjectCoverage{
		"/p/a.cairo": {"pkg::f": {2: 3}, "pkg::h": {9: 1}},
	}
	c := m.ProjectCoverage{
		"/p/c.cairo": {"pkg::k": {1: 0}},
		"/p/b.cairo": {"pkg::g": {5: 1, 6: 1}},
	}

	want := m.ProjectCoverage{
		"/p/a.cairo": {"pkg::f": {1: 1, 2: 3}, "pkg::h": {9: 1}},
		"/p/b.cairo": {"pkg::g": {5: 3, 6: 1}},
		"/p/c.cairo": {"pkg::k": {1: 0}},
	}

	t.Run("associative", func(t *testing.T) {
		assert.Equal(t, want, MergeProjectCoverage(MergeProjectCoverage(a, b), c))
		assert.Equal(t, want, MergeProjectCoverage(a, MergeProjectCoverage(b, c)))
	})

	t.Run("commutative", func(t *testing.T) {
		assert.Equal(t, MergeProjectCoverage(a, b), MergeProjectCoverage(b, a))
		assert.Equal(t, MergeProjectCoverage(b, c), MergeProjectCoverage(c, b))
	})

	t.Run("inputs untouched", func(t *testing.T) {
		MergeProjectCoverage(a, b)
		assert.Equal(t, m.FunctionCoverage{1: 1, 2: 0}, a["/p/a.cairo"]["pkg::f"])
	})

	t.Run("empty is identity", func(t *testing.T) {
		assert.Equal(t, a, MergeProjectCoverage(m.ProjectCoverage{}, a))
	})
}

func TestSummarizeCoverage(t *testing.T) {
	project := m.ProjectCoverage{
		"/p/b.cairo": {"pkg::g": {5: 0}},
		"/p/a.cairo": {"pkg::f": {1: 1, 2: 0}, "pkg::h": {2: 3, 9: 0}},
	}

	assert.Equal(t, []m.FileSummary{
		{Path: "/p/a.cairo", LinesFound: 3, LinesHit: 2, FunctionsFound: 2, FunctionsHit: 2},
		{Path: "/p/b.cairo", LinesFound: 1, LinesHit: 0, FunctionsFound: 1, FunctionsHit: 0},
	}, SummarizeCoverage(project))
}
