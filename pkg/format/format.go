// Package format implements the assembly source reformatter: a line
// classifier, a lookahead cursor, a comment-column calculator, a stateful
// line rewriter, and a blank-line normalizer, run as three strictly
// sequential passes over an in-memory line sequence.
//
// The passes operate on UTF-8 strings with no trailing line terminators;
// decoding from on-disk encodings is the textenc package's job. Formatting
// never adds, removes, or reorders non-whitespace content.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrMalformedInput indicates the line sequence could not be fully
	// traversed. This is a defensive condition; the caller must leave the
	// original content untouched.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupported indicates a requested configuration is not implemented,
	// such as CR line breaks.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrInvalidOptions indicates an invalid Options value.
	ErrInvalidOptions = errors.New("invalid options")
)

// LineBreakStyle selects the line terminator of the output.
type LineBreakStyle string

const (
	// LineBreakPreserve keeps the detected input style.
	LineBreakPreserve LineBreakStyle = "preserve"

	// LineBreakLF terminates lines with "\n".
	LineBreakLF LineBreakStyle = "lf"

	// LineBreakCRLF terminates lines with "\r\n".
	LineBreakCRLF LineBreakStyle = "crlf"

	// LineBreakCR is recognized but not supported.
	LineBreakCR LineBreakStyle = "cr"
)

// ParseLineBreakStyle parses a user-supplied line-break style name.
func ParseLineBreakStyle(s string) (LineBreakStyle, error) {
	switch LineBreakStyle(strings.ToLower(s)) {
	case LineBreakPreserve, "":
		return LineBreakPreserve, nil
	case LineBreakLF:
		return LineBreakLF, nil
	case LineBreakCRLF:
		return LineBreakCRLF, nil
	case LineBreakCR:
		return LineBreakCR, fmt.Errorf("%w: CR line breaks", ErrUnsupported)
	default:
		return "", fmt.Errorf("%w: unknown line break style %q", ErrInvalidOptions, s)
	}
}

// Options is the immutable configuration for one formatting run.
type Options struct {
	// TabWidth is the width of one tab stop in characters. Must be positive.
	TabWidth int

	// Spaces indents and pads with literal spaces instead of tab characters.
	Spaces bool

	// Compact collapses every interior run of consecutive blank lines down
	// to a single blank line.
	Compact bool

	// LineBreak is the requested output line-break style.
	LineBreak LineBreakStyle
}

// DefaultOptions returns the default formatting configuration.
func DefaultOptions() Options {
	return Options{
		TabWidth:  4,
		LineBreak: LineBreakPreserve,
	}
}

func (o Options) validate() error {
	if o.TabWidth < 1 {
		return fmt.Errorf("%w: tab width must be a positive number", ErrInvalidOptions)
	}
	switch o.LineBreak {
	case LineBreakPreserve, LineBreakLF, LineBreakCRLF, "":
		return nil
	case LineBreakCR:
		return fmt.Errorf("%w: CR line breaks", ErrUnsupported)
	default:
		return fmt.Errorf("%w: unknown line break style %q", ErrInvalidOptions, o.LineBreak)
	}
}

// Format reformats one source file held in memory and returns the new text.
// On any error the input is returned unchanged so callers can pass the
// result through without corrupting content.
//
// The run is three sequential passes: measure (trim lines, compute the
// comment alignment column, detect the line-break style), rewrite
// (indentation, sectioning, comment alignment) and normalize (blank-line
// cleanup, line-break substitution). All state is local to the call, so
// concurrent Format calls on different files need no synchronization.
func Format(text string, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return text, err
	}

	lines, maxWidth, detected, err := measure(text)
	if err != nil {
		return text, err
	}

	rewritten, err := rewrite(lines, maxWidth, opts)
	if err != nil {
		return text, err
	}

	normalized := normalizeBlanks(rewritten, opts.Compact)

	return render(normalized, terminator(opts.LineBreak, detected)), nil
}

// terminator resolves the output line terminator from the requested and
// detected styles. Requesting the detected style is the same as Preserve.
func terminator(requested LineBreakStyle, detected LineBreakStyle) string {
	style := detected
	if requested != LineBreakPreserve && requested != "" {
		style = requested
	}
	if style == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

// render joins lines into a single text buffer, each line terminated.
func render(lines []string, eol string) string {
	if len(lines) == 0 {
		return eol
	}
	var sb strings.Builder
	sb.Grow(len(lines) * 16)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(eol)
	}
	return sb.String()
}
