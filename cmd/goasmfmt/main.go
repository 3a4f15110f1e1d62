// Package main is the entry point for the goasmfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/goasmfmt/internal/cli"
	"github.com/yaklabco/goasmfmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrFilesWouldChange):
			// Reported by the run summary; the exit code is the signal.
			return cli.ExitFilesWouldChange
		case errors.Is(err, cli.ErrFormatFailed):
			return cli.ExitFormatErrors
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
	}

	return cli.ExitSuccess
}
