package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorWarning = lipgloss.Color("214") // Orange
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// colorEnabled reports whether w is a terminal that accepts ANSI styling.
// NO_COLOR, CI and non-terminal writers (pipes, buffers) get plain text.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func style(w io.Writer, color lipgloss.Color, bold bool) lipgloss.Style {
	if !colorEnabled(w) {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold)
}

func headerStyle(w io.Writer) lipgloss.Style  { return style(w, colorPrimary, true) }
func warningStyle(w io.Writer) lipgloss.Style { return style(w, colorWarning, false) }
func errorStyle(w io.Writer) lipgloss.Style   { return style(w, colorError, true) }
func mutedStyle(w io.Writer) lipgloss.Style   { return style(w, colorMuted, false) }
