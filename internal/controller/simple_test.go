package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/stdscope/internal/model"
)

func newTestSimpleUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return NewSimpleUI(cmd), &out
}

func TestSimpleUI_DisplayFileResult_OneLine(t *testing.T) {
	ui, out := newTestSimpleUI(t)
	require.NoError(t, ui.Start(WithStrategy(m.StrategyAggressive), WithApplyMode(true)))

	ui.DisplayFileResult(m.FileResult{
		Source: "src/main.cpp",
		Rewrite: m.Rewrite{
			Changes: []string{"+ using namespace std;", "~ removed 3x 'std::'"},
		},
	})

	assert.Equal(t, "src/main.cpp: + using namespace std;, ~ removed 3x 'std::'\n", out.String())
}

func TestSimpleUI_DisplayFileResult_DryRunDetails(t *testing.T) {
	ui, out := newTestSimpleUI(t)
	require.NoError(t, ui.Start(WithStrategy(m.StrategyIntroduce)))

	result := m.FileResult{
		Source: "src/io.cpp",
		Rewrite: m.Rewrite{
			Changes: []string{"applied 1 using(s)", "replaced 1 symbol(s)"},
			Details: []string{"+ using std::string;", "~ std::string -> string"},
		},
	}

	ui.DisplayFileResult(result)
	assert.Equal(t, "src/io.cpp:\n  + using std::string;\n  ~ std::string -> string\n", out.String())

	out.Reset()
	require.NoError(t, ui.Start(WithStrategy(m.StrategyIntroduce), WithApplyMode(true)))
	ui.DisplayFileResult(result)
	assert.Equal(t, "src/io.cpp: applied 1 using(s), replaced 1 symbol(s)\n", out.String())
}

func TestSimpleUI_DisplayReport_NoChanges(t *testing.T) {
	tests := []struct {
		strategy m.Strategy
		want     string
	}{
		{m.StrategyAggressive, "No changes.\n"},
		{m.StrategyCleanup, "No changes.\n"},
		{m.StrategyIntroduce, "No changes needed.\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			ui, out := newTestSimpleUI(t)
			require.NoError(t, ui.Start(WithStrategy(tt.strategy)))

			require.NoError(t, ui.DisplayReport(m.Report{Strategy: tt.strategy, Scanned: 4}))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestSimpleUI_DisplayReport_Table(t *testing.T) {
	ui, out := newTestSimpleUI(t)
	require.NoError(t, ui.Start(WithStrategy(m.StrategyCleanup)))

	report := m.Report{
		Strategy: m.StrategyCleanup,
		Scanned:  3,
		Changed: []m.FileResult{
			{Source: "include/a.hpp", Stats: m.LineStats{Added: 2, Removed: 1}},
			{Source: "src/b.cpp", Stats: m.LineStats{Added: 1}},
		},
	}

	require.NoError(t, ui.DisplayReport(report))

	got := out.String()
	assert.Contains(t, got, "include/a.hpp")
	assert.Contains(t, got, "src/b.cpp")
	assert.Contains(t, strings.ToUpper(got), "TOTAL FILES 2")
	assert.Contains(t, got, "Dry run: 2 of 3 scanned file(s) would change.")

	out.Reset()
	report.Apply = true
	require.NoError(t, ui.DisplayReport(report))
	assert.Contains(t, out.String(), "Wrote 2 of 3 scanned file(s).")
}
