package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/goasmfmt/pkg/config"
)

// Environment variable names recognized by the loader.
const (
	envEncoding   = "GOASMFMT_ENCODING"
	envTabWidth   = "GOASMFMT_TABWIDTH"
	envSpaces     = "GOASMFMT_SPACES"
	envLineBreaks = "GOASMFMT_LINEBREAKS"
	envCompact    = "GOASMFMT_COMPACT"
)

// applyEnv overlays GOASMFMT_* environment variables onto cfg.
// Unparseable values are reported as warnings and otherwise ignored.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v, ok := os.LookupEnv(envEncoding); ok {
		cfg.Encoding = v
	}
	if v, ok := os.LookupEnv(envLineBreaks); ok {
		cfg.LineBreaks = v
	}
	if v, ok := os.LookupEnv(envTabWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: not a number: %q", envTabWidth, v))
		} else {
			cfg.TabWidth = n
		}
	}
	if v, ok := os.LookupEnv(envSpaces); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: not a boolean: %q", envSpaces, v))
		} else {
			cfg.Spaces = b
		}
	}
	if v, ok := os.LookupEnv(envCompact); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: not a boolean: %q", envCompact, v))
		} else {
			cfg.Compact = b
		}
	}

	return warnings
}
