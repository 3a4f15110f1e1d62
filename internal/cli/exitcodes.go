package cli

import "github.com/yaklabco/goasmfmt/pkg/runner"

// Exit codes for goasmfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFormatErrors indicates one or more files failed to format.
	ExitFormatErrors = 1

	// ExitFilesWouldChange indicates a dry run found unformatted files.
	ExitFilesWouldChange = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a completed run.
// In dry-run mode, pending changes are reported through the exit code so
// CI pipelines can fail on unformatted files.
func ExitCodeFromResult(result *runner.Result, dryRun bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitFormatErrors
	}

	if dryRun && result.HasChanges() {
		return ExitFilesWouldChange
	}

	return ExitSuccess
}
