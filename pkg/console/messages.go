// Package console renders user-facing terminal output: styled status
// messages, tables for rule listings, and GitHub Actions workflow-command
// annotations for CI runs.
package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "136", Dark: "221"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "78"})

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "33", Dark: "75"})

	verboseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})
)

// isColorEnabled reports whether styled output should be produced.
// NO_COLOR disables styling regardless of TTY state.
func isColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func render(style lipgloss.Style, prefix, message string) string {
	if !isColorEnabled() {
		return prefix + message
	}
	return style.Render(prefix + message)
}

// FormatErrorMessage formats an error message for console display.
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗ ", message)
}

// FormatWarningMessage formats a warning message for console display.
func FormatWarningMessage(message string) string {
	return render(warningStyle, "⚠ ", message)
}

// FormatSuccessMessage formats a success message for console display.
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓ ", message)
}

// FormatInfoMessage formats an informational message for console display.
func FormatInfoMessage(message string) string {
	return render(infoStyle, "", message)
}

// FormatVerboseMessage formats a low-priority message for console display.
func FormatVerboseMessage(message string) string {
	return render(verboseStyle, "", message)
}
