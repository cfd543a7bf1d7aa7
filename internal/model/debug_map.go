package model

// StatementOffsets is the CASM code area produced for one Sierra statement.
type StatementOffsets struct {
	Index       StatementIndex
	StartOffset int
	EndOffset   int
	// Libfunc is the invoked libfunc as reported by the backend, if any.
	Libfunc string
}

// DebugMap correlates CASM code offsets to Sierra statements. Entries are
// sorted by start offset.
type DebugMap struct {
	Statements []StatementOffsets
}
