// Package diff produces unified diffs between the original and formatted
// text of a file, used by dry-run mode to show what a run would change
// without writing anything.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around changes.
const contextLines = 3

// LineKind indicates the role of a line in a hunk.
type LineKind int

const (
	// Context is an unchanged line.
	Context LineKind = iota

	// Add is a line present only in the formatted text.
	Add

	// Remove is a line present only in the original text.
	Remove
)

// Line is a single line of a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is one contiguous region of a unified diff.
type Hunk struct {
	OrigStart, OrigCount int
	ModStart, ModCount   int
	Lines                []Line
}

// Diff is a unified diff between two versions of one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Generate computes the unified diff between original and modified text.
// Returns nil when the texts are equal.
func Generate(path, original, modified string) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	ops := diffOps(orig, mod)
	changed := false
	for _, op := range ops {
		if op.kind != Context {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks(ops)}
	for _, op := range ops {
		switch op.kind {
		case Add:
			d.Additions++
		case Remove:
			d.Deletions++
		}
	}
	return d
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", path)
	fmt.Fprintf(&sb, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OrigStart, h.OrigCount, h.ModStart, h.ModCount)
		for _, line := range h.Lines {
			switch line.Kind {
			case Context:
				sb.WriteByte(' ')
			case Add:
				sb.WriteByte('+')
			case Remove:
				sb.WriteByte('-')
			}
			sb.WriteString(line.Content)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type op struct {
	kind     LineKind
	content  string
	origLine int // 1-based, 0 for adds
	modLine  int // 1-based, 0 for removes
}

// diffOps walks the LCS of both line sets and emits context/add/remove
// operations covering every line of both versions.
func diffOps(orig, mod []string) []op {
	common := lcs(orig, mod)

	var ops []op
	i, j, k := 0, 0, 0
	for i < len(orig) || j < len(mod) {
		if k < len(common) && i < len(orig) && j < len(mod) &&
			orig[i] == common[k] && mod[j] == common[k] {
			ops = append(ops, op{Context, orig[i], i + 1, j + 1})
			i++
			j++
			k++
			continue
		}
		for i < len(orig) && (k >= len(common) || orig[i] != common[k]) {
			ops = append(ops, op{Remove, orig[i], i + 1, 0})
			i++
		}
		for j < len(mod) && (k >= len(common) || mod[j] != common[k]) {
			ops = append(ops, op{Add, mod[j], 0, j + 1})
			j++
		}
	}
	return ops
}

// hunks groups operations into hunks, keeping contextLines of context and
// merging changes closer than one context window apart.
func hunks(ops []op) []Hunk {
	var result []Hunk

	i := 0
	for i < len(ops) {
		if ops[i].kind == Context {
			i++
			continue
		}

		// Extend this hunk while changes stay within the merge window.
		start := max(0, i-contextLines)
		end := i
		for j := i; j < len(ops); j++ {
			if ops[j].kind != Context {
				end = j + 1
			} else if j-end >= contextLines*2 {
				break
			}
		}
		end = min(len(ops), end+contextLines)

		h := Hunk{}
		for _, o := range ops[start:end] {
			h.Lines = append(h.Lines, Line{Kind: o.kind, Content: o.content})
			if o.kind != Add {
				h.OrigCount++
				if h.OrigStart == 0 {
					h.OrigStart = o.origLine
				}
			}
			if o.kind != Remove {
				h.ModCount++
				if h.ModStart == 0 {
					h.ModStart = o.modLine
				}
			}
		}
		if h.OrigStart == 0 {
			h.OrigStart = 1
		}
		if h.ModStart == 0 {
			h.ModStart = 1
		}
		result = append(result, h)
		i = end
	}
	return result
}

// lcs computes a longest common subsequence of a and b.
func lcs(a, b []string) []string {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	seq := make([]string, 0, table[0][0])
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			seq = append(seq, a[i])
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}
	return seq
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
