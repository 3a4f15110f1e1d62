// Package config defines core configuration types for goasmfmt.
// These types are pure data structures; file discovery and merging live in
// internal/configloader.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/goasmfmt/pkg/format"
	"github.com/yaklabco/goasmfmt/pkg/textenc"
)

// ErrInvalidConfig indicates a configuration value that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for goasmfmt.
type Config struct {
	// Encoding is the assumed on-disk encoding of source files.
	// A detected BOM overrides it per file.
	Encoding string `yaml:"encoding"`

	// TabWidth is the width of one tab stop. Must be positive.
	TabWidth int `yaml:"tab_width"`

	// Spaces indents with spaces instead of tab characters.
	Spaces bool `yaml:"spaces"`

	// LineBreaks is the output line-break style: lf, crlf or preserve.
	LineBreaks string `yaml:"line_breaks"`

	// Compact collapses interior blank-line runs to a single blank line.
	Compact bool `yaml:"compact"`

	// Recurse descends into subdirectories during discovery.
	Recurse bool `yaml:"recurse"`

	// Extensions is the set of file extensions treated as assembly sources.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures sidecar backups.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun reports what would change without writing.
	DryRun bool `yaml:"-"`

	// ShowDiff prints a unified diff for files that would change.
	ShowDiff bool `yaml:"-"`

	// Jobs is the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// New returns a Config with the defaults of the formatter.
func New() *Config {
	return &Config{
		Encoding:   string(textenc.UTF8),
		TabWidth:   4,
		LineBreaks: string(format.LineBreakPreserve),
		Extensions: []string{".asm"},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
	}
}

// Validate checks all enumerated and numeric fields.
func (c *Config) Validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("%w: tab_width must be a positive number, got %d", ErrInvalidConfig, c.TabWidth)
	}
	if _, err := textenc.Parse(c.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := format.ParseLineBreakStyle(c.LineBreaks); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Backups.Mode {
	case "", "sidecar", "none":
	default:
		return fmt.Errorf("%w: unknown backup mode %q", ErrInvalidConfig, c.Backups.Mode)
	}
	return nil
}

// FormatOptions maps the configuration to formatter options.
// Validate must have been called first.
func (c *Config) FormatOptions() format.Options {
	style, _ := format.ParseLineBreakStyle(c.LineBreaks)
	return format.Options{
		TabWidth:  c.TabWidth,
		Spaces:    c.Spaces,
		Compact:   c.Compact,
		LineBreak: style,
	}
}

// SourceEncoding maps the configured encoding name to its typed value.
// Validate must have been called first.
func (c *Config) SourceEncoding() textenc.Encoding {
	enc, _ := textenc.Parse(c.Encoding)
	return enc
}
