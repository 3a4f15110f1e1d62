package configloader

import "github.com/yaklabco/goasmfmt/pkg/config"

// fileConfig mirrors config.Config with pointer fields so that merging can
// distinguish "not set in this file" from a zero value.
type fileConfig struct {
	Encoding   *string  `yaml:"encoding"`
	TabWidth   *int     `yaml:"tab_width"`
	Spaces     *bool    `yaml:"spaces"`
	LineBreaks *string  `yaml:"line_breaks"`
	Compact    *bool    `yaml:"compact"`
	Recurse    *bool    `yaml:"recurse"`
	Extensions []string `yaml:"extensions"`
	Ignore     []string `yaml:"ignore"`
	Backups    *struct {
		Enabled *bool   `yaml:"enabled"`
		Mode    *string `yaml:"mode"`
	} `yaml:"backups"`
}

// applyTo overlays the fields set in this file onto cfg.
func (fc *fileConfig) applyTo(cfg *config.Config) {
	if fc.Encoding != nil {
		cfg.Encoding = *fc.Encoding
	}
	if fc.TabWidth != nil {
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.Spaces != nil {
		cfg.Spaces = *fc.Spaces
	}
	if fc.LineBreaks != nil {
		cfg.LineBreaks = *fc.LineBreaks
	}
	if fc.Compact != nil {
		cfg.Compact = *fc.Compact
	}
	if fc.Recurse != nil {
		cfg.Recurse = *fc.Recurse
	}
	if fc.Extensions != nil {
		cfg.Extensions = fc.Extensions
	}
	if fc.Ignore != nil {
		cfg.Ignore = fc.Ignore
	}
	if fc.Backups != nil {
		if fc.Backups.Enabled != nil {
			cfg.Backups.Enabled = *fc.Backups.Enabled
		}
		if fc.Backups.Mode != nil {
			cfg.Backups.Mode = *fc.Backups.Mode
		}
	}
}
