package rewriters

import "strings"

// InsertMarker adds NamespaceMarker after the include block unless a line
// already contains it. The marker is padded with a blank line on each side,
// or only after it when it lands at the end of the file.
func InsertMarker(lines []string) ([]string, bool) {
	for _, line := range lines {
		if strings.Contains(line, NamespaceMarker) {
			return lines, false
		}
	}

	at := InsertionIndex(lines)
	if at < len(lines) {
		return insertLines(lines, at, "", NamespaceMarker, ""), true
	}

	return insertLines(lines, at, NamespaceMarker, ""), true
}
