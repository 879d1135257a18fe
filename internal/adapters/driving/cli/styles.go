package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/complete/internal/logger"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	absorbedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	useColor bool
)

// configureStyles enables styling when the settings allow it and w is a terminal.
func configureStyles(w io.Writer) {
	useColor = false
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("reading display settings: %v", err)
			return
		}
		if !settings.Display.Color {
			return
		}
	}
	f, ok := w.(*os.File)
	useColor = ok && term.IsTerminal(int(f.Fd()))
}

func heading(s string) string {
	if !useColor {
		return s
	}
	return headingStyle.Render(s)
}

func absorbed(s string) string {
	if !useColor {
		return s
	}
	return absorbedStyle.Render(s)
}

func failure(s string) string {
	if !useColor {
		return s
	}
	return errorStyle.Render(s)
}
