// Package controller provides output adapters for displaying coverage results.
package controller

import (
	"context"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// UI defines the interface for reporting workflow progress and results.
// Implementations can use different output methods.
type UI interface {
	DisplayReportWritten(ctx context.Context, output m.Path)
	DisplaySummary(ctx context.Context, summaries []m.FileSummary)
	DisplayDeletedFile(ctx context.Context, path m.Path)
	DisplayCleanupComplete(ctx context.Context)
}
