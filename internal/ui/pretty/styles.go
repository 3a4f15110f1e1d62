// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// File outcome styles
	FilePath  lipgloss.Style
	Formatted lipgloss.Style
	Unchanged lipgloss.Style
	Skipped   lipgloss.Style
	Failure   lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath:     plain,
			Formatted:    plain,
			Unchanged:    plain,
			Skipped:      plain,
			Failure:      plain,
			DiffHeader:   plain,
			DiffHunk:     plain,
			DiffAdd:      plain,
			DiffRemove:   plain,
			DiffContext:  plain,
			SummaryTitle: plain,
			Success:      plain,
			Dim:          plain,
			Bold:         plain,
		}
	}

	return &Styles{
		FilePath:  lipgloss.NewStyle().Bold(true),
		Formatted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// ColorEnabled resolves a color mode flag ("auto", "always", "never")
// against the writer. In auto mode, color is used only for terminals.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
