package rewriters

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var (
	// std::Identifier not followed by another "::". The trailing \b stops the
	// identifier from backtracking into a shorter prefix of a nested name
	// (std::string::npos must not yield "strin").
	singleSegment = regexp2.MustCompile(`\bstd::([A-Za-z_]\w*)\b(?!::)`, regexp2.None)

	symbolDeclarationLine = regexp.MustCompile(`^\s*using\s+std::[A-Za-z_][\w:]*\s*;\s*$`)
)

// Introduce brings each single-segment std:: symbol into scope with its own
// using declaration and drops the qualifier at every use. Nested references
// such as std::string::npos or std::filesystem::rename are left alone.
type Introduce struct{}

// NewIntroduce constructs the per-symbol extraction strategy.
func NewIntroduce() *Introduce {
	return &Introduce{}
}

// Strategy returns the strategy name.
func (in *Introduce) Strategy() m.Strategy {
	return m.StrategyIntroduce
}

// Rewrite inserts missing per-symbol declarations after the include block
// and unqualifies every single-segment occurrence. Existing declaration lines
// are neither scanned nor rewritten, so a second pass finds nothing to do.
func (in *Introduce) Rewrite(text string) (m.Rewrite, error) {
	lines := splitLines(text)

	symbols, err := SingleSegmentSymbols(lines)
	if err != nil {
		return m.Rewrite{}, err
	}

	if len(symbols) == 0 {
		return m.Rewrite{Text: text, Skipped: true}, nil
	}

	at := InsertionIndex(lines)
	declarations := missingDeclarations(lines, symbols)

	rewritten := make([]string, len(lines))

	for i, line := range lines {
		if symbolDeclarationLine.MatchString(line) {
			rewritten[i] = line
			continue
		}

		rewritten[i], err = Unqualify(line)
		if err != nil {
			return m.Rewrite{}, err
		}
	}

	if len(declarations) > 0 {
		block := make([]string, 0, len(declarations)+2)
		block = append(block, "")
		block = append(block, declarations...)
		block = append(block, "")
		rewritten = insertLines(rewritten, at, block...)
	}

	details := make([]string, 0, len(declarations)+len(symbols))
	for _, declaration := range declarations {
		details = append(details, "+ "+declaration)
	}

	for _, symbol := range symbols {
		details = append(details, fmt.Sprintf("~ std::%s -> %s", symbol, symbol))
	}

	return m.Rewrite{
		Text: joinLines(rewritten, text),
		Changes: []string{
			fmt.Sprintf("applied %d using(s)", len(declarations)),
			fmt.Sprintf("replaced %d symbol(s)", len(symbols)),
		},
		Details: details,
	}, nil
}

// SingleSegmentSymbols returns the sorted, distinct identifiers referenced as
// std::Identifier outside of existing per-symbol declaration lines.
func SingleSegmentSymbols(lines []string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, line := range lines {
		if symbolDeclarationLine.MatchString(line) {
			continue
		}

		match, err := singleSegment.FindStringMatch(line)
		for match != nil && err == nil {
			seen[match.GroupByNumber(1).String()] = struct{}{}
			match, err = singleSegment.FindNextMatch(match)
		}

		if err != nil {
			return nil, fmt.Errorf("scan std:: references: %w", err)
		}
	}

	symbols := make([]string, 0, len(seen))
	for symbol := range seen {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols, nil
}

// Unqualify rewrites every single-segment std::Identifier in line to the bare
// identifier.
func Unqualify(line string) (string, error) {
	out, err := singleSegment.Replace(line, "$1", -1, -1)
	if err != nil {
		return "", fmt.Errorf("unqualify std:: references: %w", err)
	}

	return out, nil
}

// Declaration returns the per-symbol using declaration for symbol.
func Declaration(symbol string) string {
	return "using std::" + symbol + ";"
}

func missingDeclarations(lines []string, symbols []string) []string {
	existing := make(map[string]struct{})

	for _, line := range lines {
		if symbolDeclarationLine.MatchString(line) {
			existing[normalizeDeclaration(line)] = struct{}{}
		}
	}

	var declarations []string

	for _, symbol := range symbols {
		declaration := Declaration(symbol)
		if _, ok := existing[normalizeDeclaration(declaration)]; ok {
			continue
		}

		declarations = append(declarations, declaration)
	}

	return declarations
}

func normalizeDeclaration(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), " ", "")
}
