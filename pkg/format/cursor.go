package format

// cursor provides read-only, position-preserving lookahead over a line
// sequence. All lines are materialized up front, so peeking is plain index
// arithmetic; the committed position is whatever index the caller passes in
// and is never mutated here.
type cursor struct {
	lines []string
}

// peekNextLine returns the line following pos, if any.
func (c *cursor) peekNextLine(pos int) (string, bool) {
	if pos+1 >= len(c.lines) {
		return "", false
	}
	return c.lines[pos+1], true
}

// peekNextCodeLine scans forward from pos past comment-only lines and
// returns the first line that is not a comment. When skipBlanks is false the
// scan stops at the first blank line and reports blocked=true; when true,
// blank lines are skipped as well. Reaching end-of-input returns ok=false.
func (c *cursor) peekNextCodeLine(pos int, skipBlanks bool) (line string, ok bool, blocked bool) {
	for j := pos + 1; j < len(c.lines); j++ {
		switch Classify(c.lines[j]) {
		case Comment:
			continue
		case Blank:
			if !skipBlanks {
				return "", false, true
			}
		default:
			return c.lines[j], true, false
		}
	}
	return "", false, false
}

// countFollowingBlanks counts consecutive blank lines immediately after pos.
func (c *cursor) countFollowingBlanks(pos int) int {
	n := 0
	for j := pos + 1; j < len(c.lines) && c.lines[j] == ""; j++ {
		n++
	}
	return n
}
