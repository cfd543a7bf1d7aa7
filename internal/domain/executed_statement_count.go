package domain

import (
	"sort"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// baseProgramCounter is the pc of the first program instruction when the
// trace was recorded without a call header.
const baseProgramCounter = 1

// BuildExecutedStatementCount replays every trace through the debug map and
// counts statement hits. Consecutive hits of statements resolving to the same
// source location within one trace count once.
func BuildExecutedStatementCount(
	casmLevelInfos []m.CasmLevelInfo,
	debugMap m.DebugMap,
	infos m.StatementInformationMap,
) m.ExecutedStatementCount {
	counts := m.ExecutedStatementCount{}

	for _, casmLevelInfo := range casmLevelInfos {
		executed := MapPCsToStatements(casmLevelInfo, debugMap)

		for _, idx := range deduplicate(executed, infos) {
			counts[idx]++
		}
	}

	return counts
}

// MapPCsToStatements resolves every executed pc of the trace to the statement
// whose code area contains it. Program counters outside the program code are
// dropped.
func MapPCsToStatements(casmLevelInfo m.CasmLevelInfo, debugMap m.DebugMap) []m.StatementIndex {
	minimalPC := realMinimalPC(casmLevelInfo)
	executed := make([]m.StatementIndex, 0, len(casmLevelInfo.VMTrace))

	for _, step := range casmLevelInfo.VMTrace {
		if step.PC < minimalPC {
			continue
		}

		idx, ok := statementAtOffset(debugMap, step.PC-minimalPC)
		if !ok {
			continue
		}

		executed = append(executed, idx)
	}

	return executed
}

// realMinimalPC returns the pc of the first program instruction. With a call
// header the program is placed right after the last executed header step.
func realMinimalPC(casmLevelInfo m.CasmLevelInfo) int {
	if casmLevelInfo.RunWithCallHeader && len(casmLevelInfo.VMTrace) > 0 {
		return casmLevelInfo.VMTrace[len(casmLevelInfo.VMTrace)-1].PC + 1
	}

	return baseProgramCounter
}

// statementAtOffset returns the last statement starting at or before offset.
func statementAtOffset(debugMap m.DebugMap, offset int) (m.StatementIndex, bool) {
	statements := debugMap.Statements
	if len(statements) == 0 {
		return 0, false
	}

	pos := sort.Search(len(statements), func(i int) bool {
		return statements[i].StartOffset > offset
	}) - 1
	if pos < 0 {
		return 0, false
	}

	if last := statements[len(statements)-1]; offset >= last.EndOffset {
		return 0, false
	}

	return statements[pos].Index, true
}

// deduplicate collapses runs of statements pointing to the same source location.
func deduplicate(executed []m.StatementIndex, infos m.StatementInformationMap) []m.StatementIndex {
	unique := make([]m.StatementIndex, 0, len(executed))

	for _, idx := range executed {
		if len(unique) == 0 || pointsToDifferentStatement(infos, unique[len(unique)-1], idx) {
			unique = append(unique, idx)
		}
	}

	return unique
}

// pointsToDifferentStatement treats statements without information as always distinct.
func pointsToDifferentStatement(infos m.StatementInformationMap, last, current m.StatementIndex) bool {
	lastInfo, lastKnown := infos[last]
	currentInfo, currentKnown := infos[current]

	if !lastKnown || !currentKnown {
		return true
	}

	return !lastInfo.SameLocation(currentInfo)
}
