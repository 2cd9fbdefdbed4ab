package utils

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ShowDiff renders a line oriented diff between two texts. Unchanged lines
// are prefixed with a space, removed lines with "-" and added lines with "+".
func ShowDiff(old, new string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var result strings.Builder
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			result.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				result.WriteString("\n")
			}
		}
	}
	return result.String()
}
