package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Spinner is a minimal loading spinner.
type Spinner struct {
	frames []string
	frame  int
}

func NewSpinner() *Spinner {
	return &Spinner{
		frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	}
}

// Next advances the spinner to the next frame.
func (s *Spinner) Next() {
	s.frame = (s.frame + 1) % len(s.frames)
}

// View returns the current spinner frame.
func (s *Spinner) View() string {
	return s.frames[s.frame]
}

// LoadingOverlay centers a spinner and message in the window.
func LoadingOverlay(width, height int, spinner *Spinner, message string) string {
	spinnerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	messageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	content := fmt.Sprintf("%s %s\n\n%s",
		spinnerStyle.Render(spinner.View()),
		messageStyle.Render(message),
		hintStyle.Render("[ESC to cancel]"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
