package rewriters

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var stdQualifier = regexp.MustCompile(`\bstd::`)

// Aggressive inserts the namespace-wide marker and blindly strips every
// std:: qualifier, nested ones included (std::filesystem::path becomes
// filesystem::path). It may introduce name collisions.
type Aggressive struct{}

// NewAggressive constructs the blind-stripping strategy.
func NewAggressive() *Aggressive {
	return &Aggressive{}
}

// Strategy returns the strategy name.
func (a *Aggressive) Strategy() m.Strategy {
	return m.StrategyAggressive
}

// Rewrite applies marker insertion followed by qualifier stripping.
func (a *Aggressive) Rewrite(text string) (m.Rewrite, error) {
	lines, inserted := InsertMarker(splitLines(text))
	stripped, count := StripQualifiers(joinLines(lines, text))

	var changes []string
	if inserted {
		changes = append(changes, "+ "+NamespaceMarker)
	}

	if count > 0 {
		changes = append(changes, fmt.Sprintf("~ removed %dx 'std::'", count))
	}

	return m.Rewrite{Text: stripped, Changes: changes}, nil
}

// StripQualifiers removes every std:: occurrence and returns how many were
// removed.
func StripQualifiers(text string) (string, int) {
	count := len(stdQualifier.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}

	return stdQualifier.ReplaceAllLiteralString(text, ""), count
}
