package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goasmfmt/internal/configloader"
	"github.com/yaklabco/goasmfmt/internal/logging"
	"github.com/yaklabco/goasmfmt/internal/ui/pretty"
	"github.com/yaklabco/goasmfmt/pkg/config"
	"github.com/yaklabco/goasmfmt/pkg/runner"
)

// ErrFormatFailed is returned when one or more files could not be formatted.
var ErrFormatFailed = errors.New("formatting failed")

// ErrFilesWouldChange is returned by a dry run that found unformatted files.
var ErrFilesWouldChange = errors.New("files would be reformatted")

type fmtFlags struct {
	directory  string
	recurse    bool
	encoding   string
	tabWidth   int
	spaces     bool
	lineBreaks string
	compact    bool
	extensions []string
	ignore     []string
	dryRun     bool
	showDiff   bool
	noBackups  bool
	jobs       int
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format assembly source files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	addFmtFlags(cmd, flags)

	return cmd
}

const fmtLongDescription = `Format assembly source files in place.

By default, formats the .asm files in the current directory. Specify files
to format exactly those, or use --directory to format another directory.
Files that are already formatted are left untouched.

Examples:
  goasmfmt fmt                        # Format .asm files in the current directory
  goasmfmt fmt startup.asm            # Format a single file
  goasmfmt fmt -d src --recurse       # Format a tree of source files
  goasmfmt fmt --spaces --tabwidth 8  # Indent with spaces at 8-column stops
  goasmfmt fmt --linebreaks lf        # Convert line endings to LF
  goasmfmt fmt --dry-run --diff       # Show pending changes without writing`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir := flags.directory
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// Flags override file and environment configuration, but only when the
	// user actually set them.
	applyFmtFlags(cmd, cfg, flags)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		logging.FieldEncoding, cfg.Encoding,
		logging.FieldTabWidth, cfg.TabWidth,
		logging.FieldLineBreak, cfg.LineBreaks,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	fmtRunner := runner.New(runner.NewPipeline(cfg))

	runOpts := runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Recurse:      cfg.Recurse,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	reporter := &pretty.Reporter{
		Writer:   cmd.OutOrStdout(),
		Styles:   pretty.NewStyles(pretty.ColorEnabled(colorMode, cmd.OutOrStdout())),
		DryRun:   cfg.DryRun,
		ShowDiff: cfg.ShowDiff,
	}
	if err := reporter.Report(result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, cfg.DryRun) {
	case ExitFormatErrors:
		return ErrFormatFailed
	case ExitFilesWouldChange:
		return ErrFilesWouldChange
	default:
		return nil
	}
}

// applyFmtFlags overlays explicitly set flags onto the resolved config.
func applyFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	set := cmd.Flags().Changed

	if set("encoding") {
		cfg.Encoding = flags.encoding
	}
	if set("tabwidth") {
		cfg.TabWidth = flags.tabWidth
	}
	if set("spaces") {
		cfg.Spaces = flags.spaces
	}
	if set("linebreaks") {
		cfg.LineBreaks = flags.lineBreaks
	}
	if set("compact") {
		cfg.Compact = flags.compact
	}
	if set("recurse") {
		cfg.Recurse = flags.recurse
	}
	if set("extensions") {
		cfg.Extensions = flags.extensions
	}
	if set("ignore") {
		cfg.Ignore = flags.ignore
	}
	if set("no-backups") {
		cfg.NoBackups = flags.noBackups
	}

	cfg.DryRun = flags.dryRun
	cfg.ShowDiff = flags.showDiff
	cfg.Jobs = flags.jobs
}

func addFmtFlags(cmd *cobra.Command, flags *fmtFlags) {
	cmd.Flags().StringVarP(&flags.directory, "directory", "d", "", "directory to format instead of the current one")
	cmd.Flags().BoolVarP(&flags.recurse, "recurse", "r", false, "descend into subdirectories")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "utf8", "source file encoding: ansi, utf8, utf16le")
	cmd.Flags().IntVar(&flags.tabWidth, "tabwidth", 4, "width of one tab stop")
	cmd.Flags().BoolVar(&flags.spaces, "spaces", false, "indent with spaces instead of tabs")
	cmd.Flags().StringVar(&flags.lineBreaks, "linebreaks", "preserve", "output line breaks: lf, crlf, preserve")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "collapse runs of blank lines to a single blank")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions treated as assembly sources")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&flags.showDiff, "diff", false, "print a unified diff for files that would change")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable sidecar backups")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
}
