package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const (
	snforgeProgramsDir = ".snfoundry_versioned_programs"
	sierraSuffix       = ".sierra.json"
	contractSuffix     = ".contract_class.json"
)

// ErrProjectPathInference is returned when no project root can be derived for an artifact.
var ErrProjectPathInference = errors.New(
	"inference of project path failed, please provide the project path explicitly using the --project-path flag")

// ProjectLocator finds the root of the user project an artifact was built from.
type ProjectLocator interface {
	FindProjectRoot(ctx context.Context, artifact m.Path) (m.Path, error)
}

// LayoutProjectLocator infers the root from the build output layout and falls
// back to asking scarb for the workspace root.
type LayoutProjectLocator struct {
	runner CommandRunner
}

// NewLayoutProjectLocator constructs a LayoutProjectLocator. A nil runner
// disables the scarb fallback.
func NewLayoutProjectLocator(runner CommandRunner) *LayoutProjectLocator {
	return &LayoutProjectLocator{runner: runner}
}

// FindProjectRoot implements ProjectLocator.
func (l *LayoutProjectLocator) FindProjectRoot(ctx context.Context, artifact m.Path) (m.Path, error) {
	root, layoutErr := InferProjectRoot(artifact)
	if layoutErr == nil {
		return root, nil
	}

	if l.runner == nil {
		return "", fmt.Errorf("%w: %w", ErrProjectPathInference, layoutErr)
	}

	slog.Debug("Artifact layout not recognized, asking scarb", "artifact", artifact, "reason", layoutErr)

	root, err := l.scarbWorkspaceRoot(ctx, filepath.Dir(string(artifact)))
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrProjectPathInference, layoutErr, err)
	}

	return root, nil
}

func (l *LayoutProjectLocator) scarbWorkspaceRoot(ctx context.Context, workDir string) (m.Path, error) {
	stdout, stderr, err := l.runner.Run(ctx, workDir, "scarb", "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		return "", fmt.Errorf("scarb metadata: %w: %s", err, strings.TrimSpace(stderr))
	}

	var metadata struct {
		Workspace struct {
			Root string `json:"root"`
		} `json:"workspace"`
	}

	if err := json.Unmarshal([]byte(stdout), &metadata); err != nil {
		return "", fmt.Errorf("decode scarb metadata: %w", err)
	}

	if metadata.Workspace.Root == "" {
		return "", errors.New("scarb metadata has no workspace root")
	}

	return m.Path(metadata.Workspace.Root), nil
}

// InferProjectRoot derives the project root from the artifact location:
// <root>/target/dev/<f>.sierra.json, <root>/.snfoundry_versioned_programs/<f>.sierra.json
// or <root>/target/dev/<f>.contract_class.json.
func InferProjectRoot(artifact m.Path) (m.Path, error) {
	path := string(artifact)

	if filepath.Ext(path) != ".json" {
		return "", fmt.Errorf("source sierra path should have a .json extension, got: %s", artifact)
	}

	switch {
	case strings.HasSuffix(path, sierraSuffix):
		if root, ok := ascend(path, "target", "dev"); ok {
			return root, nil
		}

		if root, ok := ascend(path, snforgeProgramsDir); ok {
			return root, nil
		}

		return "", fmt.Errorf("source sierra path should be in one of the formats: "+
			"<project_root>/%s/<file>%s or <project_root>/target/dev/<file>%s, got: %s",
			snforgeProgramsDir, sierraSuffix, sierraSuffix, artifact)
	case strings.HasSuffix(path, contractSuffix):
		if root, ok := ascend(path, "target", "dev"); ok {
			return root, nil
		}

		return "", fmt.Errorf("source sierra path should be in the format: "+
			"<project_root>/target/dev/<file>%s, got: %s", contractSuffix, artifact)
	default:
		return "", fmt.Errorf("source sierra path should have a .sierra or .contract_class extension, got: %s", artifact)
	}
}

// ascend walks up from the file's directory, requiring the given directory
// names innermost last, and returns the parent of the outermost one.
func ascend(path string, folders ...string) (m.Path, bool) {
	current := filepath.Dir(filepath.Clean(path))

	for i := len(folders) - 1; i >= 0; i-- {
		if filepath.Base(current) != folders[i] {
			return "", false
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}

		current = parent
	}

	return m.Path(current), true
}
