package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goasmfmt/pkg/format"
	"github.com/yaklabco/goasmfmt/pkg/textenc"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "utf8", cfg.Encoding)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.False(t, cfg.Spaces)
	assert.Equal(t, "preserve", cfg.LineBreaks)
	assert.False(t, cfg.Compact)
	assert.False(t, cfg.Recurse)
	assert.Equal(t, []string{".asm"}, cfg.Extensions)
	assert.True(t, cfg.Backups.Enabled)
	assert.Equal(t, "sidecar", cfg.Backups.Mode)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero tab width", mutate: func(c *Config) { c.TabWidth = 0 }, wantErr: true},
		{name: "negative tab width", mutate: func(c *Config) { c.TabWidth = -1 }, wantErr: true},
		{name: "unknown encoding", mutate: func(c *Config) { c.Encoding = "ebcdic" }, wantErr: true},
		{name: "unsupported encoding", mutate: func(c *Config) { c.Encoding = "utf16be" }, wantErr: true},
		{name: "ansi encoding", mutate: func(c *Config) { c.Encoding = "ansi" }},
		{name: "unknown line breaks", mutate: func(c *Config) { c.LineBreaks = "mixed" }, wantErr: true},
		{name: "cr line breaks", mutate: func(c *Config) { c.LineBreaks = "cr" }, wantErr: true},
		{name: "crlf line breaks", mutate: func(c *Config) { c.LineBreaks = "crlf" }},
		{name: "unknown backup mode", mutate: func(c *Config) { c.Backups.Mode = "copy" }, wantErr: true},
		{name: "empty backup mode", mutate: func(c *Config) { c.Backups.Mode = "" }},
		{name: "no backups mode", mutate: func(c *Config) { c.Backups.Mode = "none" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	cfg := New()
	cfg.TabWidth = 8
	cfg.Spaces = true
	cfg.Compact = true
	cfg.LineBreaks = "crlf"
	require.NoError(t, cfg.Validate())

	opts := cfg.FormatOptions()
	assert.Equal(t, format.Options{
		TabWidth:  8,
		Spaces:    true,
		Compact:   true,
		LineBreak: format.LineBreakCRLF,
	}, opts)
}

func TestSourceEncoding(t *testing.T) {
	cfg := New()
	assert.Equal(t, textenc.UTF8, cfg.SourceEncoding())

	cfg.Encoding = "utf16"
	assert.Equal(t, textenc.UTF16LE, cfg.SourceEncoding())
}
