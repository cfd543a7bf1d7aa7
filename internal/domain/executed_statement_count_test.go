package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// uniformDebugMap gives statement i the code area [2i, 2i+2).
func uniformDebugMap(statements int) m.DebugMap {
	debugMap := m.DebugMap{}
	for i := range statements {
		debugMap.Statements = append(debugMap.Statements, m.StatementOffsets{
			Index:       m.StatementIndex(i),
			StartOffset: 2 * i,
			EndOffset:   2*i + 2,
		})
	}

	return debugMap
}

func trace(callHeader bool, pcs ...int) m.CasmLevelInfo {
	info := m.CasmLevelInfo{RunWithCallHeader: callHeader}
	for _, pc := range pcs {
		info.VMTrace = append(info.VMTrace, m.TraceEntry{PC: pc})
	}

	return info
}

func TestMapPCsToStatements(t *testing.T) {
	debugMap := uniformDebugMap(4)

	tests := []struct {
		name  string
		trace m.CasmLevelInfo
		want  []m.StatementIndex
	}{
		{"base pc", trace(false, 1, 2, 3, 8), []m.StatementIndex{0, 0, 1, 3}},
		{"below minimal pc dropped", trace(false, 0, 1), []m.StatementIndex{0}},
		{"past program end dropped", trace(false, 9, 100, 1), []m.StatementIndex{0}},
		{"call header shifts program", trace(true, 12, 14, 10), []m.StatementIndex{0, 1}},
		{"empty trace", trace(false), []m.StatementIndex{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPCsToStatements(tt.trace, debugMap))
		})
	}
}

func TestMapPCsToStatements_EmptyDebugMap(t *testing.T) {
	assert.Empty(t, MapPCsToStatements(trace(false, 1, 2, 3), m.DebugMap{}))
}

func TestBuildExecutedStatementCount_Deduplication(t *testing.T) {
	debugMap := uniformDebugMap(3)

	sameLine := m.StatementInformation{FunctionName: "pkg::f", SourcePath: "/p/src/lib.cairo", LineRange: m.LineRange{Start: 4, End: 4}}
	otherLine := m.StatementInformation{FunctionName: "pkg::f", SourcePath: "/p/src/lib.cairo", LineRange: m.LineRange{Start: 5, End: 5}}

	sameLineAgain := sameLine
	sameLineAgain.Index = 2

	infos := m.StatementInformationMap{0: sameLine, 1: otherLine, 2: sameLineAgain}

	t.Run("consecutive repeats count once", func(t *testing.T) {
		counts := BuildExecutedStatementCount([]m.CasmLevelInfo{trace(false, 1, 1, 1, 1, 1)}, debugMap, infos)
		assert.Equal(t, m.ExecutedStatementCount{0: 1}, counts)
	})

	t.Run("interleaved repeats count separately", func(t *testing.T) {
		counts := BuildExecutedStatementCount([]m.CasmLevelInfo{trace(false, 1, 3, 1, 3, 1, 3, 1, 3, 1)}, debugMap, infos)
		assert.Equal(t, m.ExecutedStatementCount{0: 5, 1: 4}, counts)
	})

	t.Run("different statements with the same location collapse", func(t *testing.T) {
		counts := BuildExecutedStatementCount([]m.CasmLevelInfo{trace(false, 1, 5, 1)}, debugMap, infos)
		assert.Equal(t, m.ExecutedStatementCount{0: 1}, counts)
	})

	// Collapsing is scoped to one run. Deduplicating the concatenation of
	// all runs of the artifact would merge these two hits into one.
	t.Run("runs are deduplicated independently", func(t *testing.T) {
		counts := BuildExecutedStatementCount([]m.CasmLevelInfo{trace(false, 1), trace(false, 1)}, debugMap, infos)
		assert.Equal(t, m.ExecutedStatementCount{0: 2}, counts)
	})
}

func TestBuildExecutedStatementCount_UnknownStatementsAreDistinct(t *testing.T) {
	counts := BuildExecutedStatementCount([]m.CasmLevelInfo{trace(false, 1, 1, 1)}, uniformDebugMap(1), m.StatementInformationMap{})
	assert.Equal(t, m.ExecutedStatementCount{0: 3}, counts)
}
