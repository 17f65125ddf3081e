package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stdscope/internal/model"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayFileResult prints the change log entry for a file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	for _, line := range summaryLines(result, s.config.apply) {
		s.printf("%s\n", line)
	}
}

// DisplayReport prints the "no changes" line or the summary table.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	if !report.HasChanges() {
		s.printf("%s\n", noChangesMessage(report.Strategy))

		return nil
	}

	s.printf("\n%s", renderTable(report))
	s.printf("%s\n", modeMessage(report))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
