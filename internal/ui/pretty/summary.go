package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/goasmfmt/pkg/diff"
	"github.com/yaklabco/goasmfmt/pkg/runner"
)

const (
	fallbackWidth = 80
	wordFile      = "file"
	wordFiles     = "files"
)

// Reporter renders per-file outcomes and the run summary.
type Reporter struct {
	Writer   io.Writer
	Styles   *Styles
	DryRun   bool
	ShowDiff bool
}

// Report writes the outcome of every file followed by a one-line summary.
func (r *Reporter) Report(result *runner.Result) error {
	for _, outcome := range result.Files {
		if err := r.reportFile(outcome); err != nil {
			return err
		}
	}
	if r.ShowDiff && result.HasChanges() {
		if _, err := io.WriteString(r.Writer, r.Divider()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.Writer, r.FormatSummaryOneLine(result.Stats))
	return err
}

func (r *Reporter) reportFile(outcome runner.FileOutcome) error {
	s := r.Styles

	switch {
	case outcome.Error != nil:
		_, err := fmt.Fprintf(r.Writer, "%s  %s\n",
			s.Failure.Render("error"), s.FilePath.Render(outcome.Path))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.Writer, "  %s\n", s.Dim.Render(outcome.Error.Error()))
		return err

	case outcome.Result == nil:
		return nil

	case outcome.Result.Skipped:
		_, err := fmt.Fprintf(r.Writer, "%s  %s %s\n",
			s.Skipped.Render("skip"), s.FilePath.Render(outcome.Path),
			s.Dim.Render("("+outcome.Result.SkipReason+")"))
		return err

	case outcome.Result.Changed:
		verb := "fmt"
		if r.DryRun {
			verb = "diff"
		}
		if _, err := fmt.Fprintf(r.Writer, "%s   %s\n",
			s.Formatted.Render(verb), s.FilePath.Render(outcome.Path)); err != nil {
			return err
		}
		if r.ShowDiff && outcome.Result.Diff != nil {
			return r.renderDiff(outcome.Result.Diff)
		}
		return nil

	default:
		// Unchanged files stay quiet; the summary counts them.
		return nil
	}
}

func (r *Reporter) renderDiff(d *diff.Diff) error {
	s := r.Styles
	for _, rawLine := range strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n") {
		var styled string
		switch {
		case strings.HasPrefix(rawLine, "---"), strings.HasPrefix(rawLine, "+++"):
			styled = s.DiffHeader.Render(rawLine)
		case strings.HasPrefix(rawLine, "@@"):
			styled = s.DiffHunk.Render(rawLine)
		case strings.HasPrefix(rawLine, "+"):
			styled = s.DiffAdd.Render(rawLine)
		case strings.HasPrefix(rawLine, "-"):
			styled = s.DiffRemove.Render(rawLine)
		default:
			styled = s.DiffContext.Render(rawLine)
		}
		if _, err := fmt.Fprintln(r.Writer, styled); err != nil {
			return err
		}
	}
	return nil
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files formatted, 12 unchanged (1 backup created)".
func (r *Reporter) FormatSummaryOneLine(stats runner.Stats) string {
	s := r.Styles

	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("no assembly files found") + "\n"
	}

	verb := "formatted"
	if r.DryRun {
		verb = "would change"
	}

	var parts []string
	if stats.FilesChanged > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s %s",
			stats.FilesChanged, countWord(stats.FilesChanged), verb)))
	} else {
		parts = append(parts, s.Success.Render(fmt.Sprintf("all %d %s already formatted",
			stats.FilesProcessed, countWord(stats.FilesProcessed))))
	}
	if stats.FilesChanged > 0 && stats.FilesUnchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", stats.FilesUnchanged))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Skipped.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	line := strings.Join(parts, ", ")
	if stats.BackupsCreated > 0 {
		line += " " + s.Dim.Render(fmt.Sprintf("(%d backups created)", stats.BackupsCreated))
	}
	return line + "\n"
}

// Divider returns a dim horizontal rule sized to the terminal.
func (r *Reporter) Divider() string {
	width := fallbackWidth
	if f, ok := r.Writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return r.Styles.Dim.Render(strings.Repeat("─", width)) + "\n"
}

func countWord(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
