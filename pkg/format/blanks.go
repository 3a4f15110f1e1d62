package format

// normalizeBlanks is the final cleanup pass over the rewritten line
// sequence. It guarantees the file starts with exactly one blank line and
// ends without trailing blank lines, removes blank lines immediately
// preceding an end-of-procedure marker, and, when compact is set, collapses
// every interior run of consecutive blank lines down to one.
//
// Without compact, interior runs not adjacent to a directive boundary are
// left as found; boundary-adjacent runs were already re-derived by the
// rewrite pass.
func normalizeBlanks(lines []string, compact bool) []string {
	// Trailing surplus.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	// Leading surplus; a single blank line is re-added below.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, "")

	run := 0
	for _, line := range lines {
		if line == "" {
			run++
			continue
		}
		if run > 0 {
			switch {
			case Classify(line) == ProcEnd:
				// endp hugs the procedure body.
				run = 0
			case compact && run > 1:
				run = 1
			}
			for ; run > 0; run-- {
				out = append(out, "")
			}
		}
		out = append(out, line)
	}

	return out
}
