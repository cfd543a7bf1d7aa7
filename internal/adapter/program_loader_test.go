package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const programDebugInfo = `{
  "type_names": [],
  "libfunc_names": [],
  "user_func_names": [],
  "annotations": {
    "github.com/software-mansion/cairo-coverage": {
      "statements_code_locations": {
        "0": [["/project/src/lib.cairo", {"start": {"line": 1, "col": 4}, "end": {"line": 1, "col": 9}}, false]],
        "1": [["/project/src/lib.cairo[expanded]", {"start": {"line": 6, "col": 0}, "end": {"line": 7, "col": 1}}]]
      }
    },
    "github.com/software-mansion/cairo-profiler": {
      "statements_functions": {
        "0": ["pkg::increase_by_two"],
        "1": ["pkg::increase_by_one"]
      }
    }
  },
  "executables": {
    "snforge_internal_test_executable": [{"id": 4, "debug_name": "pkg::tests::test_it"}, {"id": 9}]
  }
}`

const versionedProgram = `{
  "version": 1,
  "type_declarations": [],
  "libfunc_declarations": [
    {"id": {"id": 0, "debug_name": "felt252_add"}, "long_id": {"generic_id": "felt252_add", "generic_args": []}}
  ],
  "statements": [
    {"Invocation": {"libfunc_id": {"id": 0}, "args": [], "branches": []}},
    {"Return": []}
  ],
  "funcs": [],
  "debug_info": ` + programDebugInfo + `
}`

const contractClass = `{
  "sierra_program": ["0x1", "0x2"],
  "sierra_program_debug_info": ` + programDebugInfo + `,
  "contract_class_version": "0.1.0",
  "entry_points_by_type": {},
  "abi": []
}`

func TestParseEnrichedProgram_VersionedProgram(t *testing.T) {
	program, err := ParseEnrichedProgram([]byte(versionedProgram))
	require.NoError(t, err)

	require.NotNil(t, program.Program)
	require.Len(t, program.Program.Statements, 2)
	assert.NotNil(t, program.Program.Statements[0].Invocation)
	assert.NotEmpty(t, program.Program.Statements[1].Return)

	assert.Equal(t, []string{"pkg::tests::test_it", "[9]"}, program.TestExecutables)

	locations := program.CoverageAnnotations.StatementsCodeLocations[0]
	require.Len(t, locations, 1)
	assert.Equal(t, m.Path("/project/src/lib.cairo"), locations[0].SourcePath)
	assert.Equal(t, m.LineRange{Start: 2, End: 2}, locations[0].Span.LineRange())
	require.NotNil(t, locations[0].IsMacro)
	assert.False(t, *locations[0].IsMacro)

	assert.Nil(t, program.CoverageAnnotations.StatementsCodeLocations[1][0].IsMacro)
	assert.Equal(t, []string{"pkg::increase_by_one"}, program.ProfilerAnnotations.StatementsFunctions[1])
}

func TestParseEnrichedProgram_ContractClass(t *testing.T) {
	program, err := ParseEnrichedProgram([]byte(contractClass))
	require.NoError(t, err)

	assert.Nil(t, program.Program)
	assert.Len(t, program.CoverageAnnotations.StatementsCodeLocations, 2)
	assert.Len(t, program.TestExecutables, 2)
}

func TestParseEnrichedProgram_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "program without debug info",
			input:   `{"version":1,"libfunc_declarations":[],"statements":[]}`,
			wantErr: m.ErrMissingDebugInfo,
		},
		{
			name:    "contract without debug info",
			input:   `{"sierra_program":["0x1"]}`,
			wantErr: m.ErrMissingDebugInfo,
		},
		{
			name:    "missing coverage annotations",
			input:   `{"version":1,"statements":[],"debug_info":{"annotations":{"github.com/software-mansion/cairo-profiler":{"statements_functions":{}}}}}`,
			wantErr: ErrMissingAnnotations,
		},
		{
			name:    "missing profiler annotations",
			input:   `{"version":1,"statements":[],"debug_info":{"annotations":{"github.com/software-mansion/cairo-coverage":{"statements_code_locations":{}}}}}`,
			wantErr: ErrMissingAnnotations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnrichedProgram([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseEnrichedProgram_MissingAnnotationsHint(t *testing.T) {
	_, err := ParseEnrichedProgram([]byte(`{"version":1,"statements":[],"debug_info":{"annotations":{}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unstable-add-statements-code-locations-debug-info = true")
}

func TestLocalProgramLoader_Load(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "pkg.sierra.json")
	writeTestFile(t, path, versionedProgram)

	loader := NewLocalProgramLoader(NewLocalFSAdapter())

	program, err := loader.Load(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, m.Path(path), program.Path)

	_, err = loader.Load(context.Background(), m.Path(filepath.Join(root, "missing.sierra.json")))
	require.Error(t, err)
}
