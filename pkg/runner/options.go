// Package runner provides multi-file formatting orchestration: discovery,
// a worker pool, and per-file outcomes with aggregate statistics.
package runner

import "github.com/yaklabco/goasmfmt/pkg/config"

// Options controls a multi-file formatting run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered assembly sources. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// Recurse descends into subdirectories of directory paths.
	Recurse bool

	// Jobs is the maximum number of concurrent workers.
	// Zero or negative means one worker per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of assembly file extensions.
func DefaultExtensions() []string {
	return []string{".asm"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}
