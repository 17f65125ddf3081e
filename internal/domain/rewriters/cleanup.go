package rewriters

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var (
	namespaceMarkerLine = regexp.MustCompile(`^\s*using\s+namespace\s+std\s*;\s*$`)
	// A single unqualified identifier: no "::" and no alias "=".
	bareDeclarationLine = regexp.MustCompile(`^\s*using\s+([A-Za-z_]\w*)\s*;\s*$`)
)

// Cleanup repairs the aftermath of Aggressive: exactly one marker right after
// the include block, and no bare "using X;" lines.
type Cleanup struct{}

// NewCleanup constructs the relocate-and-prune strategy.
func NewCleanup() *Cleanup {
	return &Cleanup{}
}

// Strategy returns the strategy name.
func (c *Cleanup) Strategy() m.Strategy {
	return m.StrategyCleanup
}

// Rewrite relocates the marker and prunes bare declarations.
func (c *Cleanup) Rewrite(text string) (m.Rewrite, error) {
	lines := RelocateMarker(PruneBareDeclarations(splitLines(text)))

	return m.Rewrite{
		Text:    joinLines(lines, text),
		Changes: []string{"cleaned"},
	}, nil
}

// RelocateMarker drops every marker line, duplicates and misplaced ones
// alike, and reinserts a single marker after the include block. A blank line
// follows the marker unless the next line is already blank.
func RelocateMarker(lines []string) []string {
	rest := filterLines(lines, namespaceMarkerLine.MatchString)

	at := InsertionIndex(rest)
	if at < len(rest) && strings.TrimSpace(rest[at]) != "" {
		return insertLines(rest, at, NamespaceMarker, "")
	}

	return insertLines(rest, at, NamespaceMarker)
}

// PruneBareDeclarations removes "using X;" lines. Qualified declarations
// (using std::X;) and aliases (using X = Y;) are kept.
func PruneBareDeclarations(lines []string) []string {
	return filterLines(lines, bareDeclarationLine.MatchString)
}
