package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changed lines between before and after, prefixed with
// "-" and "+". Unchanged lines are omitted.
func Diff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
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
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// WriteDiff writes Diff(before, after) to w with removed lines in red and added lines in green
func WriteDiff(w io.Writer, before, after string) error {
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, line := range strings.SplitAfter(Diff(before, after), "\n") {
		if line == "" {
			continue
		}
		c := added
		if strings.HasPrefix(line, "-") {
			c = removed
		}
		if _, err := fmt.Fprintln(w, c.Sprint(strings.TrimSuffix(line, "\n"))); err != nil {
			return err
		}
	}
	return nil
}
