package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ColorEnabled reports whether styled output should be emitted.
// Requires stdout to be a TTY and a terminal profile that supports color;
// NO_COLOR is honored via termenv.
func ColorEnabled() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// StatusStyle returns the lipgloss style for a health/component status string.
// Unrecognized statuses render muted.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "HEALTHY", "OK", "Good":
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case "UNHEALTHY", "CRITICAL", "UNREACHABLE":
		return lipgloss.NewStyle().Foreground(ColorError)
	case "WARNING", "Warning":
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case "NOT_CONFIGURED":
		return lipgloss.NewStyle().Foreground(ColorInfo)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}
