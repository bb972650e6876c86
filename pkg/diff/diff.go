// Package diff renders line-oriented previews of catalog exports.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxPreviewLines = 2000
	truncateMessage = "... (preview truncated) ..."
)

// Summary counts changed lines.
type Summary struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// String renders "+N -M".
func (s Summary) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Lines compares before and after line by line and returns a unified-style
// preview with unchanged lines omitted. Identical input yields "" and a zero
// Summary.
func Lines(before, after []byte, fromLabel, toLabel string) (string, Summary) {
	if bytes.Equal(before, after) {
		return "", Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		buf     bytes.Buffer
		summary Summary
		written int
	)
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", fromLabel, toLabel)

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

		for _, line := range splitLines(d.Text) {
			if prefix == "+" {
				summary.Added++
			} else {
				summary.Removed++
			}
			if written < maxPreviewLines {
				buf.WriteString(prefix + line + "\n")
			}
			written++
		}
	}

	if written > maxPreviewLines {
		buf.WriteString(truncateMessage + "\n")
	}
	return buf.String(), summary
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
