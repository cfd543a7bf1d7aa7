package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const (
	coverageNamespace     = "github.com/software-mansion/cairo-coverage"
	profilerNamespace     = "github.com/software-mansion/cairo-profiler"
	testExecutableSection = "snforge_internal_test_executable"
)

// ErrMissingAnnotations is returned when the debug info lacks the annotations
// coverage is computed from.
var ErrMissingAnnotations = errors.New(`missing debug annotations, perhaps you are missing the following entries in Scarb.toml:

[profile.dev.cairo]
unstable-add-statements-functions-debug-info = true
unstable-add-statements-code-locations-debug-info = true
inlining-strategy = "avoid"`)

// ProgramLoader reads program artifacts.
type ProgramLoader interface {
	Load(ctx context.Context, path m.Path) (m.EnrichedProgram, error)
}

// LocalProgramLoader decodes program artifacts read through an FSAdapter.
type LocalProgramLoader struct {
	fs FSAdapter
}

// NewLocalProgramLoader constructs a LocalProgramLoader.
func NewLocalProgramLoader(fs FSAdapter) *LocalProgramLoader {
	return &LocalProgramLoader{fs: fs}
}

// Load implements ProgramLoader.
func (l *LocalProgramLoader) Load(_ context.Context, path m.Path) (m.EnrichedProgram, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return m.EnrichedProgram{}, fmt.Errorf("failed to read file at path: %s: %w", path, err)
	}

	enriched, err := ParseEnrichedProgram(data)
	if err != nil {
		return m.EnrichedProgram{}, fmt.Errorf("load program %s: %w", path, err)
	}

	enriched.Path = path

	return enriched, nil
}

// ParseEnrichedProgram decodes a versioned program or a contract class and
// its coverage and profiler annotations.
func ParseEnrichedProgram(data []byte) (m.EnrichedProgram, error) {
	sierra, err := decodeSierraProgram(data)
	if err != nil {
		return m.EnrichedProgram{}, err
	}

	program, debugInfo, err := sierra.Extract()
	if err != nil {
		return m.EnrichedProgram{}, err
	}

	var coverage m.CoverageAnnotations
	if err := decodeAnnotations(debugInfo, coverageNamespace, &coverage); err != nil {
		return m.EnrichedProgram{}, err
	}

	var profiler m.ProfilerAnnotations
	if err := decodeAnnotations(debugInfo, profilerNamespace, &profiler); err != nil {
		return m.EnrichedProgram{}, err
	}

	return m.EnrichedProgram{
		Program:             program,
		TestExecutables:     testExecutables(debugInfo),
		CoverageAnnotations: coverage,
		ProfilerAnnotations: profiler,
	}, nil
}

func decodeSierraProgram(data []byte) (m.SierraProgram, error) {
	var probe struct {
		SierraProgram json.RawMessage `json:"sierra_program"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to deserialize JSON content: %w", err)
	}

	if len(probe.SierraProgram) > 0 && !bytes.Equal(probe.SierraProgram, []byte("null")) {
		var contract m.ContractClass
		if err := json.Unmarshal(data, &contract); err != nil {
			return nil, fmt.Errorf("failed to deserialize contract class: %w", err)
		}

		return &contract, nil
	}

	var program m.VersionedProgram
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("failed to deserialize program: %w", err)
	}

	return &program, nil
}

func decodeAnnotations(debugInfo m.DebugInfo, namespace string, target any) error {
	raw, ok := debugInfo.Annotations[namespace]
	if !ok {
		return fmt.Errorf("%w (namespace %s not found)", ErrMissingAnnotations, namespace)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w (namespace %s: %w)", ErrMissingAnnotations, namespace, err)
	}

	return nil
}

func testExecutables(debugInfo m.DebugInfo) []string {
	ids := debugInfo.Executables[testExecutableSection]

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}

	return names
}
