package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// state is the per-run mutable state threaded through the rewrite pass.
// It is created fresh for every rewrite call and discarded when the pass
// completes, so nothing leaks between files formatted in one process.
type state struct {
	prevBlank    bool
	prevComment  bool
	pendingBlank bool
	skip         int
}

// rewrite is the second full pass. It consumes the trimmed line sequence
// produced by measure and emits the formatted lines: indentation applied,
// blank lines re-derived around procedure and section boundaries, and
// inline comments aligned to the column given by maxCodeWidth.
func rewrite(lines []string, maxCodeWidth int, opts Options) ([]string, error) {
	var st state
	cur := &cursor{lines: lines}

	tab := "\t"
	if opts.Spaces {
		tab = strings.Repeat(" ", opts.TabWidth)
	}

	// Characters missing to round the widest code line to a full tab stop.
	maxMissing := opts.TabWidth - maxCodeWidth%opts.TabWidth

	out := make([]string, 0, len(lines)+8)

	for i, line := range lines {
		// Absorb blank lines already accounted for by a boundary rule.
		if st.skip > 0 {
			st.skip--
			if line != "" {
				return nil, fmt.Errorf("%w: line %d expected to be blank", ErrMalformedInput, i+1)
			}
			continue
		}

		if line == "" {
			st.prevBlank = true
			st.prevComment = false
			out = append(out, "")
			continue
		}

		if line[0] == ';' {
			out = rewriteComment(out, line, i, cur, tab, &st)
			continue
		}

		next, hasNext, _ := cur.peekNextCodeLine(i, true)
		cls := Classify(line)
		nextCls := Plain
		if hasNext {
			nextCls = Classify(next)
		}
		indent := cls.Indented()

		switch {
		case cls.SectionStart():
			// Section starts are separated from prior code by exactly one
			// blank line, unless a comment already supplies the separation.
			switch {
			case st.prevBlank:
				out = trimTrailingBlanks(out, 1)
			case !st.prevComment:
				out = append(out, "")
			}
			// Spacing inside the section is re-derived, not preserved.
			st.skip = cur.countFollowingBlanks(i)
		case cls == ProcEnd:
			if hasNext {
				following := cur.countFollowingBlanks(i)
				if nextCls == End {
					// Keep the end of the listing tight against endp.
					st.skip = following
				} else if following == 0 {
					st.pendingBlank = true
				}
			}
		case cls == Call:
			// Call sites begin logical sections.
			if cur.countFollowingBlanks(i) == 0 {
				st.pendingBlank = true
			}
		default:
			// Labels begin new logical blocks.
			if hasNext && nextCls == Label && cur.countFollowingBlanks(i) == 0 {
				st.pendingBlank = true
			}
		}

		prefix := ""
		if indent {
			prefix = tab
		}
		out = append(out, alignInlineComment(prefix, line, indent, maxCodeWidth, maxMissing, opts))

		st.prevComment = false
		st.prevBlank = false

		if st.pendingBlank {
			out = append(out, "")
			st.pendingBlank = false
			st.prevBlank = true
		}
	}

	if st.skip != 0 {
		return nil, fmt.Errorf("%w: blank lines to skip extend past end of input", ErrMalformedInput)
	}

	return out, nil
}

// rewriteComment formats a comment-only line. The comment is indented if and
// only if the next code line will be indented, and comments that introduce a
// new section are separated from prior code by a blank line.
func rewriteComment(out []string, line string, pos int, cur *cursor, tab string, st *state) []string {
	next, ok, _ := cur.peekNextCodeLine(pos, false)

	if ok && !st.prevBlank && !st.prevComment && Classify(next).SectionStart() {
		out = append(out, "")
	}

	// Exactly one space between the delimiter and the comment text.
	body := strings.TrimLeft(line[1:], " \t")
	switch {
	case body == "":
		line = ";"
	default:
		line = "; " + body
	}

	if ok && Classify(next).Indented() {
		line = tab + line
	}

	st.prevComment = true
	st.prevBlank = false
	return append(out, line)
}

// alignInlineComment pads the code portion of a line so its inline comment
// starts on the common column, and normalizes the whitespace after the
// delimiter to one space. Lines without an inline comment are returned with
// only the indentation prefix applied.
func alignInlineComment(prefix, line string, indented bool, maxCodeWidth, maxMissing int, opts Options) string {
	idx := strings.IndexByte(line, ';')
	if idx <= 0 {
		return prefix + line
	}

	code := strings.TrimRight(line[:idx], " \t")
	body := strings.TrimLeft(line[idx+1:], " \t")
	comment := ";"
	if body != "" {
		comment = "; " + body
	}

	// Shortfall against the widest code line, plus the padding the widest
	// line itself needs to reach a full tab stop.
	diff := maxCodeWidth - runewidth.StringWidth(code) + maxMissing

	var pad string
	if opts.Spaces {
		if !indented {
			// Compensate for the indentation this line lacks.
			diff += opts.TabWidth
		}
		pad = strings.Repeat(" ", diff)
	} else {
		tabs := diff / opts.TabWidth
		if !indented {
			tabs++
		}
		if diff%opts.TabWidth != 0 {
			tabs++
		}
		pad = strings.Repeat("\t", tabs)
	}

	return prefix + code + pad + comment
}

// trimTrailingBlanks reduces a trailing run of blank lines in out to at most
// keep lines.
func trimTrailingBlanks(out []string, keep int) []string {
	n := 0
	for n < len(out) && out[len(out)-1-n] == "" {
		n++
	}
	if n > keep {
		out = out[:len(out)-(n-keep)]
	}
	return out
}
