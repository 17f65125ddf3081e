package domain

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/mouse-blink/stdscope/internal/model"
)

// LineStatsOf counts the lines added and removed between before and after.
// Each line is encoded as one rune so the diff runs line by line.
func LineStatsOf(before, after string) m.LineStats {
	dmp := diffmatchpatch.New()
	src, dst, _ := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)

	var stats m.LineStats

	for _, edit := range diffs {
		switch edit.Type {
		case diffmatchpatch.DiffInsert:
			stats.Added += utf8.RuneCountInString(edit.Text)
		case diffmatchpatch.DiffDelete:
			stats.Removed += utf8.RuneCountInString(edit.Text)
		case diffmatchpatch.DiffEqual:
		}
	}

	return stats
}
