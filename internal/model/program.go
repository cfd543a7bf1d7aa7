package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingDebugInfo is returned when a program artifact carries no debug info.
var ErrMissingDebugInfo = errors.New("debug info not found")

// FunctionID identifies a Sierra function.
type FunctionID struct {
	ID        uint64  `json:"id"`
	DebugName *string `json:"debug_name,omitempty"`
}

// String returns the debug name, or `[id]` when the function has none.
func (f FunctionID) String() string {
	if f.DebugName != nil {
		return *f.DebugName
	}

	return "[" + strconv.FormatUint(f.ID, 10) + "]"
}

// LibfuncLongID is the concrete identity of a library function.
type LibfuncLongID struct {
	GenericID   string            `json:"generic_id"`
	GenericArgs []json.RawMessage `json:"generic_args"`
}

// LibfuncDeclaration binds a libfunc id to its long id.
type LibfuncDeclaration struct {
	ID     FunctionID    `json:"id"`
	LongID LibfuncLongID `json:"long_id"`
}

// Invocation is a statement calling a libfunc.
type Invocation struct {
	LibfuncID FunctionID `json:"libfunc_id"`
}

// Statement is either a libfunc invocation or a return.
type Statement struct {
	Invocation *Invocation     `json:"Invocation,omitempty"`
	Return     json.RawMessage `json:"Return,omitempty"`
}

// Program is the decoded body of a Sierra program.
type Program struct {
	LibfuncDeclarations []LibfuncDeclaration `json:"libfunc_declarations"`
	Statements          []Statement          `json:"statements"`
}

// DebugInfo is the compiler debug metadata attached to a program.
type DebugInfo struct {
	Annotations map[string]json.RawMessage `json:"annotations"`
	Executables map[string][]FunctionID    `json:"executables"`
}

// SierraProgram is a loaded program artifact. The artifact is either a plain
// versioned program or a contract class.
type SierraProgram interface {
	// Extract returns the decoded program body, nil when it cannot be decoded
	// locally, and the debug info.
	Extract() (*Program, DebugInfo, error)
}

// VersionedProgram is a plain Sierra program artifact.
type VersionedProgram struct {
	Version   int        `json:"version"`
	DebugInfo *DebugInfo `json:"debug_info"`
	Program
}

// Extract implements SierraProgram.
func (v *VersionedProgram) Extract() (*Program, DebugInfo, error) {
	if v.DebugInfo == nil {
		return nil, DebugInfo{}, fmt.Errorf("%w in program", ErrMissingDebugInfo)
	}

	program := v.Program

	return &program, *v.DebugInfo, nil
}

// ContractClass is a Starknet contract class artifact. Its program body is a
// compressed felt list that only the backend compiler decodes.
type ContractClass struct {
	SierraProgram          []string   `json:"sierra_program"`
	SierraProgramDebugInfo *DebugInfo `json:"sierra_program_debug_info"`
}

// Extract implements SierraProgram.
func (c *ContractClass) Extract() (*Program, DebugInfo, error) {
	if c.SierraProgramDebugInfo == nil {
		return nil, DebugInfo{}, fmt.Errorf("%w in contract", ErrMissingDebugInfo)
	}

	return nil, *c.SierraProgramDebugInfo, nil
}

// SourceCodeLocation is a 0-based position in a source file.
type SourceCodeLocation struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// SourceCodeSpan is a 0-based source span.
type SourceCodeSpan struct {
	Start SourceCodeLocation `json:"start"`
	End   SourceCodeLocation `json:"end"`
}

// LineRange converts the 0-based span into a 1-based line range.
func (s SourceCodeSpan) LineRange() LineRange {
	return LineRange{
		Start: LineNumber(s.Start.Line + 1),
		End:   LineNumber(s.End.Line + 1),
	}
}

// CodeLocation is one candidate source origin of a statement.
type CodeLocation struct {
	SourcePath Path
	Span       SourceCodeSpan
	IsMacro    *bool
}

// UnmarshalJSON decodes the `[path, span]` or `[path, span, is_macro]` tuple.
func (c *CodeLocation) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("code location: %w", err)
	}

	if len(tuple) < 2 {
		return fmt.Errorf("code location: expected at least 2 elements, got %d", len(tuple))
	}

	if err := json.Unmarshal(tuple[0], &c.SourcePath); err != nil {
		return fmt.Errorf("code location path: %w", err)
	}

	if err := json.Unmarshal(tuple[1], &c.Span); err != nil {
		return fmt.Errorf("code location span: %w", err)
	}

	c.IsMacro = nil

	if len(tuple) > 2 {
		if err := json.Unmarshal(tuple[2], &c.IsMacro); err != nil {
			return fmt.Errorf("code location macro flag: %w", err)
		}
	}

	return nil
}

// CoverageAnnotations lists candidate code locations per statement, by priority.
type CoverageAnnotations struct {
	StatementsCodeLocations map[StatementIndex][]CodeLocation `json:"statements_code_locations"`
}

// ProfilerAnnotations lists candidate function names per statement, in the
// same order as the code locations.
type ProfilerAnnotations struct {
	StatementsFunctions map[StatementIndex][]string `json:"statements_functions"`
}

// EnrichedProgram is a program artifact with its decoded debug metadata.
type EnrichedProgram struct {
	Path                Path
	Program             *Program
	TestExecutables     []string
	CoverageAnnotations CoverageAnnotations
	ProfilerAnnotations ProfilerAnnotations
}

// ExecutionData is everything loaded for one program artifact.
type ExecutionData struct {
	CasmLevelInfos []CasmLevelInfo
	Program        EnrichedProgram
}
