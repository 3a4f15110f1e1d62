package format

import "strings"

// Class is the lexical category of a single source line.
type Class int

const (
	// Blank is a line that is empty after whitespace trimming.
	Blank Class = iota

	// Comment is a line whose first non-whitespace character is ';'.
	Comment

	// Label is an identifier immediately followed by ':'.
	Label

	// ProcStart is an identifier followed by the "proc" keyword.
	ProcStart

	// ProcEnd is an identifier followed by the "endp" keyword.
	ProcEnd

	// DataSection is a line beginning with the ".data" directive.
	DataSection

	// CodeSection is a line beginning with the ".code" directive.
	CodeSection

	// ConstSection is a line beginning with the ".const" directive.
	ConstSection

	// End is a line beginning with the "end" directive (end of listing).
	End

	// Call is a line beginning with the "call" mnemonic.
	Call

	// Plain is any other code line.
	Plain
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Label:
		return "label"
	case ProcStart:
		return "proc"
	case ProcEnd:
		return "endp"
	case DataSection:
		return ".data"
	case CodeSection:
		return ".code"
	case ConstSection:
		return ".const"
	case End:
		return "end"
	case Call:
		return "call"
	case Plain:
		return "plain"
	default:
		return "unknown"
	}
}

// Indented reports whether lines of this class are indented by one tab stop.
// Labels and procedure/section directives stay on column zero.
func (c Class) Indented() bool {
	switch c {
	case Label, ProcStart, ProcEnd, DataSection, CodeSection, ConstSection:
		return false
	default:
		return true
	}
}

// SectionStart reports whether the class opens a new section: a procedure
// or a memory segment directive.
func (c Class) SectionStart() bool {
	switch c {
	case ProcStart, DataSection, CodeSection, ConstSection:
		return true
	default:
		return false
	}
}

// Classify determines the lexical category of a line. Keyword matching is
// case-insensitive and tolerant of leading horizontal whitespace. Tests are
// tried in a fixed priority order; the first match wins. A misclassification
// only affects cosmetic formatting, never content, so anything unrecognized
// falls through to Plain.
func Classify(line string) Class {
	s := strings.TrimLeft(line, " \t")
	if s == "" {
		return Blank
	}
	if s[0] == ';' {
		return Comment
	}

	ident := scanIdent(s)
	rest := s[ident:]

	// Procedure directives require a preceding label-like identifier.
	if ident > 0 && rest != "" && isSpace(rest[0]) {
		kw := strings.TrimLeft(rest, " \t")
		switch {
		case hasKeyword(kw, "proc"):
			return ProcStart
		case hasKeyword(kw, "endp"):
			return ProcEnd
		}
	}

	// Section directives are recognized as a line prefix.
	switch {
	case hasKeyword(s, ".data"):
		return DataSection
	case hasKeyword(s, ".code"):
		return CodeSection
	case hasKeyword(s, ".const"):
		return ConstSection
	case hasKeyword(s, "end"):
		return End
	case hasKeyword(s, "call"):
		return Call
	}

	if ident > 0 && strings.HasPrefix(rest, ":") {
		return Label
	}

	return Plain
}

// scanIdent returns the length of the identifier token at the start of s.
func scanIdent(s string) int {
	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return i
}

// hasKeyword reports whether s begins with the keyword kw (ASCII
// case-insensitive) at a token boundary: kw must be followed by
// end-of-line or horizontal whitespace.
func hasKeyword(s, kw string) bool {
	if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
		return false
	}
	return len(s) == len(kw) || isSpace(s[len(kw)])
}

func isIdentChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
