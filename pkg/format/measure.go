package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// measure is the first full pass. It detects the line-break style, splits
// the text into lines trimmed of leading and trailing horizontal whitespace,
// and computes the width of the widest code line that carries an inline
// comment. Inline comments are later shifted according to that width.
func measure(text string) (lines []string, maxCodeWidth int, detected LineBreakStyle, err error) {
	detected, err = detectLineBreak(text)
	if err != nil {
		return nil, 0, detected, err
	}

	raw := strings.Split(text, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines = make([]string, len(raw))
	for i, r := range raw {
		line := strings.Trim(strings.TrimSuffix(r, "\r"), " \t")
		lines[i] = line

		// Comment-only lines and lines without an inline comment do not
		// contribute to the alignment column.
		if line == "" || line[0] == ';' {
			continue
		}
		if w, ok := codeWidth(line); ok && w > maxCodeWidth {
			maxCodeWidth = w
		}
	}

	return lines, maxCodeWidth, detected, nil
}

// codeWidth returns the display width of the line's content before its
// inline comment delimiter, excluding whitespace padding, and whether the
// line has an inline comment at all.
func codeWidth(line string) (int, bool) {
	idx := strings.IndexByte(line, ';')
	if idx <= 0 {
		return 0, false
	}
	code := strings.TrimRight(line[:idx], " \t")
	return runewidth.StringWidth(code), true
}

// detectLineBreak infers the input's line-break style from the first line
// break found. A lone carriage return is not a supported terminator.
func detectLineBreak(text string) (LineBreakStyle, error) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return LineBreakLF, nil
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return LineBreakCRLF, nil
			}
			return LineBreakCR, fmt.Errorf("%w: CR line breaks", ErrUnsupported)
		}
	}
	return LineBreakLF, nil
}
