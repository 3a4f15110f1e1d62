// Package cli provides the Cobra command structure for goasmfmt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goasmfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goasmfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var nologo bool

	rootCmd := &cobra.Command{
		Use:     "goasmfmt",
		Short:   "A formatter for MASM-style assembly source files",
		Version: info.Version,
		Long: `goasmfmt reformats assembly source files: it normalizes indentation,
aligns inline comments into a common column, manages blank lines around
procedure and section boundaries, and can convert line-break style, all
without touching a single non-whitespace character.

Files are rewritten atomically, with optional sidecar backups, and a file
whose formatting fails is always left exactly as it was.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			if !nologo && cmd.Name() != "version" {
				fmt.Fprintf(cmd.ErrOrStderr(), "goasmfmt %s\n", info.Version)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&nologo, "nologo", false, "suppress the version banner")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
