// Package ui owns docketfold's console surface: a leveled stderr logger for
// diagnostics and styled report lines on stdout.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger is the package-level structured logger. Writes to stderr so report
// lines on stdout stay machine-consumable.
var Logger *log.Logger

// Styles — initialized in Init().
var (
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
)

// Init sets up color detection, lipgloss styles, and the structured logger.
// Call this once at CLI startup.
func Init(noColorFlag bool) {
	noColor := noColorFlag || os.Getenv("NO_COLOR") != ""
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle = lipgloss.NewStyle().Faint(true)
	boldStyle = lipgloss.NewStyle().Bold(true)

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if noColor {
		Logger.SetStyles(log.DefaultStyles())
	}
}

func Bold(s string) string   { return boldStyle.Render(s) }
func Dim(s string) string    { return dimStyle.Render(s) }
func Red(s string) string    { return errorStyle.Render(s) }
func Green(s string) string  { return successStyle.Render(s) }
func Yellow(s string) string { return warningStyle.Render(s) }

// CaseLine prints one per-case summary line to stdout.
func CaseLine(summary string) {
	fmt.Fprintf(os.Stdout, "%s %s\n", successStyle.Render("✓"), summary)
}

// FailLine prints one per-case failure line to stdout.
func FailLine(slug string, err error) {
	fmt.Fprintf(os.Stdout, "%s %s: %v\n", errorStyle.Render("✗"), slug, err)
}

// Warn prints a non-fatal warning to stdout.
func Warn(msg string) {
	fmt.Fprintf(os.Stdout, "%s %s\n", warningStyle.Render("warning:"), msg)
}

// RunHeader prints the run identifier to stdout ahead of the case lines.
func RunHeader(runID string) {
	fmt.Fprintln(os.Stdout, dimStyle.Render("run "+runID))
}
