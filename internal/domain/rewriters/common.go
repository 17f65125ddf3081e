// Package rewriters provides the line-oriented rewrite strategies for std
// qualifiers and using declarations. Matching is regex based: identifiers
// inside string literals or comments are indistinguishable from code.
package rewriters

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/stdscope/internal/model"
)

// NamespaceMarker is the namespace-wide using declaration.
const NamespaceMarker = "using namespace std;"

var includeLine = regexp.MustCompile(`^\s*#\s*include\b`)

// InsertionIndex returns the index right after the last include directive of
// the leading include block, or 0 when the text does not start with one.
// Blank lines between directives belong to the block.
func InsertionIndex(lines []string) int {
	lastInclude := -1

	for i, line := range lines {
		if includeLine.MatchString(line) {
			lastInclude = i
			continue
		}

		if lastInclude >= 0 && strings.TrimSpace(line) == "" {
			continue
		}

		break
	}

	return lastInclude + 1
}

// splitLines breaks text on \n, \r\n and \r. A final terminator does not
// produce a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// joinLines is the inverse of splitLines. Lines are joined with the line
// break of the original text, and its trailing terminator is restored when
// it had one.
func joinLines(lines []string, original string) string {
	eol := lineBreak(original)

	joined := strings.Join(lines, eol)
	if (m.Source{Text: original}).HasTrailingNewline() {
		joined += eol
	}

	return joined
}

// lineBreak returns the first line terminator found in text, "\n" when it
// has none. Mixed endings are unified to the first one.
func lineBreak(text string) string {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0 || text[i] == '\n':
		return "\n"
	case strings.HasPrefix(text[i:], "\r\n"):
		return "\r\n"
	default:
		return "\r"
	}
}

func insertLines(lines []string, at int, block ...string) []string {
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	out = append(out, lines[at:]...)

	return out
}

func filterLines(lines []string, drop func(string) bool) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if drop(line) {
			continue
		}

		out = append(out, line)
	}

	return out
}
