// Package diff produces line-level diffs between two rendered frames.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 200
	truncateMessage = "... (diff truncated) ..."
)

// Summary counts the rows a frame change touched.
type Summary struct {
	Added   int
	Removed int
}

// Changed reports whether any row differs.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// String formats the summary as "+a -r".
func (s Summary) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Lines compares two frames row by row. The returned text lists removed rows
// prefixed with "-" and added rows prefixed with "+"; unchanged rows are
// omitted. Identical frames yield an empty string.
func Lines(prev, next string) (string, Summary) {
	if prev == next {
		return "", Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, rows := dmp.DiffLinesToChars(prev, next)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), rows)

	var (
		buf     strings.Builder
		summary Summary
		written int
	)
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}

		for _, line := range splitRows(d.Text) {
			if prefix == "-" {
				summary.Removed++
			} else {
				summary.Added++
			}
			if written == maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteByte('\n')
			}
			if written >= maxDiffLines {
				written++
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			written++
		}
	}
	return buf.String(), summary
}

func splitRows(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
