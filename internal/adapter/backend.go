package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// DefaultBackendCommand is the external Sierra to CASM compiler invoked by default.
const DefaultBackendCommand = "cairo-casm-debug-map"

// ErrBackendCompile is returned when the backend compiler rejects a program.
var ErrBackendCompile = errors.New("failed to compile program to casm")

// Backend compiles a program artifact to CASM and returns its debug map.
type Backend interface {
	Compile(ctx context.Context, artifact m.Path) (m.DebugMap, error)
}

// ExecBackend runs an external compiler process. The artifact path is passed
// as the last argument and the debug map is read from stdout as JSON.
type ExecBackend struct {
	runner  CommandRunner
	command string
	args    []string
}

// NewExecBackend constructs an ExecBackend. An empty command falls back to
// DefaultBackendCommand.
func NewExecBackend(runner CommandRunner, command string, args ...string) *ExecBackend {
	if strings.TrimSpace(command) == "" {
		command = DefaultBackendCommand
	}

	return &ExecBackend{
		runner:  runner,
		command: command,
		args:    args,
	}
}

type backendOutput struct {
	Statements []struct {
		StartOffset int    `json:"start_offset"`
		EndOffset   int    `json:"end_offset"`
		Libfunc     string `json:"libfunc"`
	} `json:"statements"`
}

// Compile implements Backend.
func (b *ExecBackend) Compile(ctx context.Context, artifact m.Path) (m.DebugMap, error) {
	args := append(append([]string{}, b.args...), string(artifact))

	slog.Debug("Compiling program to casm", "artifact", artifact, "command", b.command)

	stdout, stderr, err := b.runner.Run(ctx, filepath.Dir(string(artifact)), b.command, args...)
	if err != nil {
		slog.Error("Backend compilation failed", "artifact", artifact, "stderr", stderr, "error", err)
		return m.DebugMap{}, fmt.Errorf("%w %s: %w: %s", ErrBackendCompile, artifact, err, strings.TrimSpace(stderr))
	}

	debugMap, err := ParseDebugMap([]byte(stdout))
	if err != nil {
		return m.DebugMap{}, fmt.Errorf("%w %s: %w", ErrBackendCompile, artifact, err)
	}

	slog.Debug("Compiled program to casm", "artifact", artifact, "statements", len(debugMap.Statements))

	return debugMap, nil
}

// ParseDebugMap decodes the backend output. Statements are indexed by their
// position in the output.
func ParseDebugMap(data []byte) (m.DebugMap, error) {
	var output backendOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return m.DebugMap{}, fmt.Errorf("decode debug map: %w", err)
	}

	statements := make([]m.StatementOffsets, 0, len(output.Statements))

	for idx, statement := range output.Statements {
		if statement.EndOffset < statement.StartOffset {
			return m.DebugMap{}, fmt.Errorf("statement %d: end offset %d before start offset %d",
				idx, statement.EndOffset, statement.StartOffset)
		}

		statements = append(statements, m.StatementOffsets{
			Index:       m.StatementIndex(idx),
			StartOffset: statement.StartOffset,
			EndOffset:   statement.EndOffset,
			Libfunc:     statement.Libfunc,
		})
	}

	sort.SliceStable(statements, func(i, j int) bool {
		return statements[i].StartOffset < statements[j].StartOffset
	})

	return m.DebugMap{Statements: statements}, nil
}
