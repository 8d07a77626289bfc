package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text returns a line diff of a and b. Lines are prefixed with "- ", "+ "
// or two spaces. Equal input yields "".
func Text(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	out := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}
