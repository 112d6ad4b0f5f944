package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles holds lipgloss styles for human-readable output.
type styles struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// newStyles returns colored styles when w is a terminal and plain ones
// otherwise.
func newStyles(w io.Writer) styles {
	if !isTTY(w) {
		plain := lipgloss.NewStyle()
		return styles{Title: plain, Name: plain, Key: plain, Dim: plain, Success: plain, Warning: plain}
	}
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Name:    lipgloss.NewStyle().Bold(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
