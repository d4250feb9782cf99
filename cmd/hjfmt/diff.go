package main

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff writes a line oriented diff from old to cur to w and
// reports whether they differ.
func lineDiff(w io.Writer, name, old, cur string) (bool, error) {
	if old == cur {
		return false, nil
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, cur)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n", name, name); err != nil {
		return true, err
	}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			if !strings.HasSuffix(ln, "\n") {
				ln += "\n\\ no newline at end of file\n"
			}
			if _, err := io.WriteString(w, prefix+ln); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}
