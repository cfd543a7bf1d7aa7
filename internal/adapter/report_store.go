package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const reportFileMode = 0o644

// ReportStore persists rendered coverage reports.
type ReportStore interface {
	// AppendReport appends content to the report at path, creating it if missing.
	AppendReport(path m.Path, content []byte) error
}

// LocalReportStore writes reports to the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// AppendReport implements ReportStore.
func (s *LocalReportStore) AppendReport(path m.Path, content []byte) error {
	if dir := filepath.Dir(string(path)); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory %s: %w", dir, err)
		}
	}

	// #nosec G304 - the output path is chosen by the user
	file, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, reportFileMode)
	if err != nil {
		return fmt.Errorf("open report %s: %w", path, err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}

	return nil
}
