// Package diff shows what a sanitizer removed from a piece of text. The
// scrub command prints it so an operator can see each redaction next to
// the text it replaced.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old     string // old label
	New     string // new label
	Diff    string // plain diff text
	Changed bool   // false when both sides are identical
}

// Compute returns a diff between the raw and the sanitised text. The diff
// is character-based and then cleaned up semantically, so a redaction in
// the middle of a line shows as its own -/+ pair.
func Compute(raw, clean, rawLabel, cleanLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(raw, clean, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:     rawLabel,
		New:     cleanLabel,
		Diff:    format(d),
		Changed: raw != clean,
	}
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		// Trim trailing newline to avoid artefact empty string from Split
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header. Unchanged text gets a one-line
// note instead of an empty diff.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if !r.Changed {
		return header + "  (no changes)\n"
	}
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
