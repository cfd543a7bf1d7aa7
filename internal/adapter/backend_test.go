package adapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	adaptermocks "cairocov.dev/pkg/cairocov/internal/adapter/mocks"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

func TestParseDebugMap(t *testing.T) {
	debugMap, err := adapter.ParseDebugMap([]byte(`{"statements":[
		{"start_offset":0,"end_offset":2,"libfunc":"store_temp<felt252>"},
		{"start_offset":4,"end_offset":6},
		{"start_offset":2,"end_offset":4,"libfunc":"felt252_add"}
	]}`))
	require.NoError(t, err)

	assert.Equal(t, []m.StatementOffsets{
		{Index: 0, StartOffset: 0, EndOffset: 2, Libfunc: "store_temp<felt252>"},
		{Index: 2, StartOffset: 2, EndOffset: 4, Libfunc: "felt252_add"},
		{Index: 1, StartOffset: 4, EndOffset: 6},
	}, debugMap.Statements)
}

func TestParseDebugMap_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"statements":`},
		{"end before start", `{"statements":[{"start_offset":5,"end_offset":3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.ParseDebugMap([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestExecBackend_Compile(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	backend := adapter.NewExecBackend(runner, "compiler", "--json")

	runner.On("Run", mock.Anything, "/project/target/dev", "compiler", "--json", "/project/target/dev/pkg.sierra.json").
		Return(`{"statements":[{"start_offset":0,"end_offset":1}]}`, "", nil)

	debugMap, err := backend.Compile(context.Background(), m.Path("/project/target/dev/pkg.sierra.json"))
	require.NoError(t, err)
	assert.Len(t, debugMap.Statements, 1)
}

func TestExecBackend_CompileFailure(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	backend := adapter.NewExecBackend(runner, "")

	runner.On("Run", mock.Anything, "dir", adapter.DefaultBackendCommand, "dir/pkg.sierra.json").
		Return("", "unsupported program version\n", errors.New("exit status 1"))

	_, err := backend.Compile(context.Background(), m.Path("dir/pkg.sierra.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBackendCompile)
	assert.Contains(t, err.Error(), "unsupported program version")
}

func TestExecBackend_InvalidOutput(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	backend := adapter.NewExecBackend(runner, "compiler")

	runner.On("Run", mock.Anything, ".", "compiler", "pkg.sierra.json").Return("not json", "", nil)

	_, err := backend.Compile(context.Background(), m.Path("pkg.sierra.json"))
	assert.ErrorIs(t, err, adapter.ErrBackendCompile)
}
