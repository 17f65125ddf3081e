package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/stdscope/internal/model"
)

// summaryLines renders the change log entry for one file. Dry runs with
// planned edits list them under the path; everything else fits on one line.
func summaryLines(result m.FileResult, apply bool) []string {
	if !apply && len(result.Rewrite.Details) > 0 {
		lines := make([]string, 0, len(result.Rewrite.Details)+1)
		lines = append(lines, fmt.Sprintf("%s:", result.Source))

		for _, detail := range result.Rewrite.Details {
			lines = append(lines, "  "+detail)
		}

		return lines
	}

	return []string{fmt.Sprintf("%s: %s", result.Source, strings.Join(result.Rewrite.Changes, ", "))}
}

func noChangesMessage(strategy m.Strategy) string {
	if strategy == m.StrategyIntroduce {
		return "No changes needed."
	}

	return "No changes."
}

func modeMessage(report m.Report) string {
	if report.Apply {
		return fmt.Sprintf("Wrote %d of %d scanned file(s).", len(report.Changed), report.Scanned)
	}

	return fmt.Sprintf("Dry run: %d of %d scanned file(s) would change. Re-run with --apply to write.",
		len(report.Changed), report.Scanned)
}

func renderTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Added", "Removed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	var added, removed int

	for _, result := range report.Changed {
		table.Append([]string{
			string(result.Source),
			fmt.Sprintf("%d", result.Stats.Added),
			fmt.Sprintf("%d", result.Stats.Removed),
		})

		added += result.Stats.Added
		removed += result.Stats.Removed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Changed)),
		fmt.Sprintf("%d", added),
		fmt.Sprintf("%d", removed),
	})

	table.Render()

	return tableBuffer.String()
}
