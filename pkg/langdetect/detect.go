// Package langdetect sanity-checks that a file handed to the formatter
// actually looks like assembly source. It uses go-enry for classification;
// the result only drives a diagnostic, never a content decision, so an
// inconclusive detection is treated as assembly.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// assemblyLanguages are the go-enry language names accepted as assembly.
//
//nolint:gochecknoglobals // Read-only lookup table.
var assemblyLanguages = map[string]struct{}{
	"assembly":              {},
	"unix assembly":         {},
	"motorola 68k assembly": {},
	"parrot assembly":       {},
	"webassembly":           {},
}

// LooksLikeAssembly reports whether the content of path classifies as
// assembly source. Unknown or low-confidence classifications count as
// assembly: the caller only warns on a confident mismatch.
func LooksLikeAssembly(path string, content []byte) bool {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return true
	}
	_, ok := assemblyLanguages[strings.ToLower(lang)]
	return ok
}

// DetectedLanguage returns go-enry's classification for diagnostics, or
// empty when inconclusive.
func DetectedLanguage(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}
