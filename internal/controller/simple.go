package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

const (
	highCoverageThreshold = 90.0
	lowCoverageThreshold  = 50.0
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReportWritten announces the report location.
func (s *SimpleUI) DisplayReportWritten(ctx context.Context, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Coverage report written to %s\n", output)
}

// DisplaySummary prints the per-file coverage table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summaries []m.FileSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(summaries) == 0 {
		s.printf("No source files were covered\n")
		return
	}

	s.printf("\n%s", renderSummaryTable(s.cmd.OutOrStdout(), summaries))
}

// DisplayDeletedFile reports one file removed by the clean command.
func (s *SimpleUI) DisplayDeletedFile(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Deleted file: %s\n", path)
}

// DisplayCleanupComplete reports the end of the clean command.
func (s *SimpleUI) DisplayCleanupComplete(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Cleanup complete.\n")
}

func renderSummaryTable(out io.Writer, summaries []m.FileSummary) string {
	var tableBuffer bytes.Buffer

	renderer := lipgloss.NewRenderer(out)

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Functions", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	var total m.FileSummary

	for _, summary := range summaries {
		table.Append([]string{
			string(summary.Path),
			fmt.Sprintf("%d/%d", summary.LinesHit, summary.LinesFound),
			fmt.Sprintf("%d/%d", summary.FunctionsHit, summary.FunctionsFound),
			formatPercentage(renderer, summary.LinePercentage()),
		})

		total.LinesHit += summary.LinesHit
		total.LinesFound += summary.LinesFound
		total.FunctionsHit += summary.FunctionsHit
		total.FunctionsFound += summary.FunctionsFound
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summaries)),
		fmt.Sprintf("%d/%d", total.LinesHit, total.LinesFound),
		fmt.Sprintf("%d/%d", total.FunctionsHit, total.FunctionsFound),
		fmt.Sprintf("%.2f%%", total.LinePercentage()),
	})

	table.Render()

	return tableBuffer.String()
}

func formatPercentage(renderer *lipgloss.Renderer, percentage float64) string {
	color := lipgloss.Color("1")

	switch {
	case percentage >= highCoverageThreshold:
		color = lipgloss.Color("2")
	case percentage >= lowCoverageThreshold:
		color = lipgloss.Color("3")
	}

	return renderer.NewStyle().Foreground(color).Render(fmt.Sprintf("%.2f%%", percentage))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
