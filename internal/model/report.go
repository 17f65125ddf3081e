package model

// Rewrite is the outcome of running one strategy over one text.
type Rewrite struct {
	Text string
	// Changes holds the short descriptions joined into the one-line summary.
	Changes []string
	// Details holds planned edits, one per line, shown on dry runs.
	Details []string
	// Skipped is set when the strategy found nothing to act on; the file is
	// then unchanged regardless of Text.
	Skipped bool
}

// LineStats counts lines added and removed by a rewrite.
type LineStats struct {
	Added   int
	Removed int
}

// FileResult holds the result of rewriting a single file.
type FileResult struct {
	Source  Path
	Rewrite Rewrite
	Stats   LineStats
	Applied bool // true if the file was written back
}

// Report summarizes a whole run of one strategy.
type Report struct {
	Strategy Strategy
	Apply    bool
	Scanned  int
	Changed  []FileResult
}

// HasChanges reports whether any file changed during the run.
func (r Report) HasChanges() bool {
	return len(r.Changed) > 0
}
