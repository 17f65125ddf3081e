package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	replaceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI with styled terminal output. Reports taller than the
// terminal open in a scrollable pager.
type TUI struct {
	output  io.Writer
	config  StartConfig
	lines   []string
	flushed bool

	size     func() (width, height int, ok bool)
	runPager func(content string, width, height int) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.size = t.terminalSize
	t.runPager = t.page

	return t
}

// Start initializes the UI and queues the run header.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)
	t.flushed = false

	mode := "dry run"
	if t.config.apply {
		mode = "apply"
	}

	t.lines = []string{titleStyle.Render(fmt.Sprintf("stdscope %s · %s", t.config.strategy, mode))}

	return nil
}

// Close prints whatever was queued when the run ended without a report.
func (t *TUI) Close() {
	if t.flushed || len(t.lines) == 0 {
		return
	}

	_, _ = fmt.Fprintln(t.output, strings.Join(t.lines, "\n"))
	t.lines = nil
}

// DisplayFileResult queues the styled change log entry for a file.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	for i, line := range summaryLines(result, t.config.apply) {
		t.lines = append(t.lines, styleSummaryLine(i, line))
	}
}

// DisplayReport prints the queued log followed by the summary.
func (t *TUI) DisplayReport(report m.Report) error {
	if !report.HasChanges() {
		t.lines = append(t.lines, mutedStyle.Render(noChangesMessage(report.Strategy)))
	} else {
		t.lines = append(t.lines, "", accentStyle.Render(strings.TrimRight(renderTable(report), "\n")),
			mutedStyle.Render(modeMessage(report)))
	}

	content := strings.Join(t.lines, "\n") + "\n"
	t.lines = nil
	t.flushed = true

	// The pager runs on the alternate screen; the log is printed afterwards
	// so it stays in scrollback.
	if width, height, ok := t.size(); ok && lipgloss.Height(content) > height {
		if err := t.runPager(content, width, height); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(t.output, content)

	return err
}

func styleSummaryLine(index int, line string) string {
	if index == 0 {
		return pathStyle.Render(line)
	}

	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, "+"):
		return addStyle.Render(line)
	case strings.HasPrefix(trimmed, "~"):
		return replaceStyle.Render(line)
	default:
		return line
	}
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) page(content string, width, height int) error {
	program := tea.NewProgram(newPagerModel(content, width, height), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
