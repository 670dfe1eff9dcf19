package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strrl/build-in-public/pkg/models"
)

// Result is everything the preview displays once the pipeline finishes.
type Result struct {
	Summary models.SessionSummary
	Posts   models.PostSet
}

// Loader runs the generation pipeline; the TUI treats it as opaque.
type Loader func(ctx context.Context) (Result, error)

// Message types for the async pipeline run.
type (
	// GenerateCompletedMsg carries the pipeline result. RequestID guards
	// against a stale result landing after a cancel/restart.
	GenerateCompletedMsg struct {
		RequestID string
		Result    Result
		Error     error
	}

	// TickMsg drives the spinner animation.
	TickMsg time.Time
)

// generateCmd runs the loader off the UI goroutine.
func generateCmd(ctx context.Context, requestID string, load Loader) tea.Cmd {
	return func() tea.Msg {
		res, err := load(ctx)
		return GenerateCompletedMsg{
			RequestID: requestID,
			Result:    res,
			Error:     err,
		}
	}
}

// tickCmd creates a ticker for spinner animation.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
