// Package diff parses, applies, inverts, and formats unified diffs for
// changeset patches. Application is line-accurate: a hunk whose context
// does not match the target content fails with ErrDoesNotApply and the
// caller rolls back the entire changeset apply.
package diff

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors surfaced to the changeset state machine.
var (
	ErrInvalidDiff  = errors.New("invalid unified diff")
	ErrDoesNotApply = errors.New("patch does not apply")
)

// Line is a single hunk body line.
type Line struct {
	Kind byte // ' ' context, '-' removed, '+' added
	Text string
}

// Hunk is one @@ block of a unified diff.
type Hunk struct {
	OldStart int // 1-based; 0 for insertions into an empty file
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line

	// Set when a "\ No newline at end of file" marker follows the last
	// old-side / new-side line of the hunk.
	NoNewlineOld bool
	NoNewlineNew bool
}

// FileDiff is an ordered list of hunks for a single file.
type FileDiff struct {
	Hunks []*Hunk
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse reads a unified diff body. Optional "---"/"+++" file headers and
// "diff"/"index" lines are skipped; everything else must be hunk headers
// and hunk body lines.
func Parse(text string) (*FileDiff, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty diff", ErrInvalidDiff)
	}

	d := &FileDiff{}
	var cur *Hunk
	var oldSeen, newSeen int
	var lastKind byte

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		// Tolerate a trailing empty line from the final newline.
		if raw == "" && i == len(lines)-1 {
			break
		}

		switch {
		case strings.HasPrefix(raw, "--- ") || strings.HasPrefix(raw, "+++ ") ||
			strings.HasPrefix(raw, "diff ") || strings.HasPrefix(raw, "index "):
			if cur != nil {
				return nil, fmt.Errorf("%w: file header inside hunk at line %d", ErrInvalidDiff, i+1)
			}

		case strings.HasPrefix(raw, "@@"):
			m := hunkHeaderRe.FindStringSubmatch(raw)
			if m == nil {
				return nil, fmt.Errorf("%w: malformed hunk header at line %d", ErrInvalidDiff, i+1)
			}
			if cur != nil {
				if err := checkCounts(cur, oldSeen, newSeen); err != nil {
					return nil, err
				}
			}
			cur = &Hunk{
				OldStart: atoi(m[1]),
				OldCount: atoiDefault(m[2], 1),
				NewStart: atoi(m[3]),
				NewCount: atoiDefault(m[4], 1),
			}
			d.Hunks = append(d.Hunks, cur)
			oldSeen, newSeen = 0, 0
			lastKind = 0

		case strings.HasPrefix(raw, `\`):
			// "\ No newline at end of file" applies to the preceding line's side.
			if cur == nil || lastKind == 0 {
				return nil, fmt.Errorf("%w: stray no-newline marker at line %d", ErrInvalidDiff, i+1)
			}
			switch lastKind {
			case '-':
				cur.NoNewlineOld = true
			case '+':
				cur.NoNewlineNew = true
			case ' ':
				cur.NoNewlineOld = true
				cur.NoNewlineNew = true
			}

		default:
			if cur == nil {
				return nil, fmt.Errorf("%w: content before first hunk at line %d", ErrInvalidDiff, i+1)
			}
			if raw == "" {
				// A bare empty line inside a hunk is an empty context line.
				raw = " "
			}
			kind := raw[0]
			if kind != ' ' && kind != '-' && kind != '+' {
				return nil, fmt.Errorf("%w: unexpected line prefix %q at line %d", ErrInvalidDiff, kind, i+1)
			}
			cur.Lines = append(cur.Lines, Line{Kind: kind, Text: raw[1:]})
			if kind == ' ' || kind == '-' {
				oldSeen++
			}
			if kind == ' ' || kind == '+' {
				newSeen++
			}
			lastKind = kind
		}
	}

	if cur == nil {
		return nil, fmt.Errorf("%w: no hunks found", ErrInvalidDiff)
	}
	if err := checkCounts(cur, oldSeen, newSeen); err != nil {
		return nil, err
	}
	return d, nil
}

func checkCounts(h *Hunk, oldSeen, newSeen int) error {
	if oldSeen != h.OldCount || newSeen != h.NewCount {
		return fmt.Errorf("%w: hunk @@ -%d,%d +%d,%d @@ body has %d/%d lines",
			ErrInvalidDiff, h.OldStart, h.OldCount, h.NewStart, h.NewCount, oldSeen, newSeen)
	}
	return nil
}

// Apply applies the diff to content and returns the patched content.
// Hunks must be ordered and non-overlapping. Trailing-newline state is
// preserved unless a hunk covering the end of the file says otherwise.
func Apply(content string, d *FileDiff) (string, error) {
	oldLines, hadTrailing := splitLines(content)

	out := make([]string, 0, len(oldLines))
	oldIdx := 0 // next unconsumed old line (0-based)
	trailing := hadTrailing

	for _, h := range d.Hunks {
		// Position of the first old line this hunk consumes. A pure
		// insertion (OldCount == 0) inserts after old line OldStart.
		pos := h.OldStart - 1
		if h.OldCount == 0 {
			pos = h.OldStart
		}
		if pos < oldIdx || pos > len(oldLines) {
			return "", fmt.Errorf("%w: hunk @@ -%d,%d @@ out of range", ErrDoesNotApply, h.OldStart, h.OldCount)
		}
		out = append(out, oldLines[oldIdx:pos]...)
		oldIdx = pos

		for _, l := range h.Lines {
			switch l.Kind {
			case ' ', '-':
				if oldIdx >= len(oldLines) || oldLines[oldIdx] != l.Text {
					got := "<eof>"
					if oldIdx < len(oldLines) {
						got = oldLines[oldIdx]
					}
					return "", fmt.Errorf("%w: expected %q at line %d, found %q",
						ErrDoesNotApply, l.Text, oldIdx+1, got)
				}
				if l.Kind == ' ' {
					out = append(out, l.Text)
				}
				oldIdx++
			case '+':
				out = append(out, l.Text)
			}
		}

		// A hunk that consumes through the last old line controls the
		// trailing-newline state of the result.
		if oldIdx == len(oldLines) && h.OldCount > 0 {
			trailing = !h.NoNewlineNew
		}
	}

	out = append(out, oldLines[oldIdx:]...)

	if len(out) == 0 {
		return "", nil
	}
	result := strings.Join(out, "\n")
	if trailing {
		result += "\n"
	}
	return result, nil
}

// Invert returns the reverse diff: applying Invert(d) to Apply(c, d)
// yields c again.
func Invert(d *FileDiff) *FileDiff {
	inv := &FileDiff{Hunks: make([]*Hunk, len(d.Hunks))}
	for i, h := range d.Hunks {
		ih := &Hunk{
			OldStart:     h.NewStart,
			OldCount:     h.NewCount,
			NewStart:     h.OldStart,
			NewCount:     h.OldCount,
			NoNewlineOld: h.NoNewlineNew,
			NoNewlineNew: h.NoNewlineOld,
			Lines:        make([]Line, len(h.Lines)),
		}
		for j, l := range h.Lines {
			switch l.Kind {
			case '-':
				ih.Lines[j] = Line{Kind: '+', Text: l.Text}
			case '+':
				ih.Lines[j] = Line{Kind: '-', Text: l.Text}
			default:
				ih.Lines[j] = l
			}
		}
		inv.Hunks[i] = ih
	}
	return inv
}

// Format renders the diff back to unified-diff text (hunks only, no file
// headers).
func Format(d *FileDiff) string {
	var b strings.Builder
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		lastOld, lastNew := lastSideIndexes(h)
		for i, l := range h.Lines {
			b.WriteByte(l.Kind)
			b.WriteString(l.Text)
			b.WriteByte('\n')
			if h.NoNewlineOld && i == lastOld && l.Kind != '+' {
				b.WriteString("\\ No newline at end of file\n")
			}
			if h.NoNewlineNew && i == lastNew && l.Kind != '-' && !(h.NoNewlineOld && i == lastOld && l.Kind == ' ') {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return b.String()
}

func lastSideIndexes(h *Hunk) (lastOld, lastNew int) {
	lastOld, lastNew = -1, -1
	for i, l := range h.Lines {
		if l.Kind == ' ' || l.Kind == '-' {
			lastOld = i
		}
		if l.Kind == ' ' || l.Kind == '+' {
			lastNew = i
		}
	}
	return lastOld, lastNew
}

// splitLines splits content into lines without terminators and reports
// whether the content ended with a newline. Empty content yields no lines.
func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailing := strings.HasSuffix(content, "\n")
	trimmed := strings.TrimSuffix(content, "\n")
	return strings.Split(trimmed, "\n"), trailing
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return atoi(s)
}
