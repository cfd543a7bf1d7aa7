package adapter_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	adaptermocks "cairocov.dev/pkg/cairocov/internal/adapter/mocks"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

func TestInferProjectRoot(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		want     string
		wantErr  bool
	}{
		{"target dev program", "/work/project/target/dev/pkg.sierra.json", "/work/project", false},
		{"snforge program", "/work/project/.snfoundry_versioned_programs/pkg_unittest.sierra.json", "/work/project", false},
		{"contract class", "/work/project/target/dev/pkg_Contract.contract_class.json", "/work/project", false},
		{"relative layout", filepath.Join("target", "dev", "pkg.sierra.json"), ".", false},
		{"contract outside target", "/work/project/.snfoundry_versioned_programs/pkg.contract_class.json", "", true},
		{"wrong directory", "/work/project/build/pkg.sierra.json", "", true},
		{"wrong kind", "/work/project/target/dev/pkg.json", "", true},
		{"not json", "/work/project/target/dev/pkg.sierra", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.InferProjectRoot(m.Path(tt.artifact))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}

func TestLayoutProjectLocator_UsesLayoutFirst(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	locator := adapter.NewLayoutProjectLocator(runner)

	root, err := locator.FindProjectRoot(context.Background(), m.Path("/work/project/target/dev/pkg.sierra.json"))
	require.NoError(t, err)
	assert.Equal(t, m.Path("/work/project"), root)
	runner.AssertNotCalled(t, "Run")
}

func TestLayoutProjectLocator_FallsBackToScarb(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	locator := adapter.NewLayoutProjectLocator(runner)

	runner.On("Run", mock.Anything, "/tmp/artifacts", "scarb", "metadata", "--format-version", "1", "--no-deps").
		Return(`{"version":1,"workspace":{"root":"/work/project","members":[]}}`, "", nil)

	root, err := locator.FindProjectRoot(context.Background(), m.Path("/tmp/artifacts/pkg.sierra.json"))
	require.NoError(t, err)
	assert.Equal(t, m.Path("/work/project"), root)
}

func TestLayoutProjectLocator_Failure(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunner(t)
	locator := adapter.NewLayoutProjectLocator(runner)

	runner.On("Run", mock.Anything, mock.Anything, "scarb", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", "scarb: command not found", errors.New("exec: not found"))

	_, err := locator.FindProjectRoot(context.Background(), m.Path("/tmp/artifacts/pkg.sierra.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrProjectPathInference)
	assert.Contains(t, err.Error(), "--project-path")
}

func TestLayoutProjectLocator_WithoutRunner(t *testing.T) {
	locator := adapter.NewLayoutProjectLocator(nil)

	_, err := locator.FindProjectRoot(context.Background(), m.Path("/tmp/artifacts/pkg.sierra.json"))
	assert.ErrorIs(t, err, adapter.ErrProjectPathInference)
}
