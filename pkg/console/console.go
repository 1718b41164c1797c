// Package console formats human-readable check output with consistent
// markers and colors. All output is plain line-oriented text; styling is
// applied with lipgloss and degrades to unstyled text on non-TTY streams.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

// FormatSuccessMessage formats a message with a success marker.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// FormatWarningMessage formats a message with a warning marker.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// FormatErrorMessage formats a message with a failure marker.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(msg)
}

// FormatVerboseMessage formats a low-priority diagnostic message.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// FormatCountMessage formats a labeled count for summary blocks.
func FormatCountMessage(label string, count int) string {
	return fmt.Sprintf("%s: %d", label, count)
}
