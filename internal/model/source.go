// Package model defines the data structures shared by the rewrite workflow.
package model

import "strings"

// Path represents a file system path.
type Path string

// Strategy names a rewrite strategy.
type Strategy string

const (
	// StrategyAggressive inserts the namespace-wide marker and strips every
	// std:: qualifier, nested or not.
	StrategyAggressive Strategy = "aggressive"

	// StrategyCleanup relocates the namespace-wide marker to the end of the
	// include block and prunes bare using declarations.
	StrategyCleanup Strategy = "cleanup"

	// StrategyIntroduce adds per-symbol using declarations and unqualifies
	// single-segment std:: references.
	StrategyIntroduce Strategy = "introduce"
)

// Source represents a candidate file and its full text.
type Source struct {
	Origin Path
	Text   string
}

// HasTrailingNewline reports whether the text ends with a line terminator
// (\n, \r\n or a lone \r).
func (s Source) HasTrailingNewline() bool {
	return strings.HasSuffix(s.Text, "\n") || strings.HasSuffix(s.Text, "\r")
}
