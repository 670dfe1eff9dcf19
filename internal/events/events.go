// Package events defines the normalized session event model and the tolerant
// JSONL parser that produces it.
package events

import "time"

// Event kinds recognized in a session log. Lines carrying any other kind are
// skipped by the parser.
const (
	KindUserMessage      = "user_message"
	KindAssistantMessage = "assistant_message"
	KindToolCall         = "tool_call"
	KindToolResult       = "tool_result"
)

// Payload carries the kind-specific fields of an event. Absent fields are
// zero values; ExitCode is nil when the result reported no status.
type Payload struct {
	Text     string `json:"text,omitempty"`
	FilePath string `json:"file_path,omitempty"`
	Command  string `json:"command,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Target   string `json:"target,omitempty"`
	ExitCode *int   `json:"exit_code,omitempty"`
}

// Event is one normalized log entry. Immutable once parsed.
type Event struct {
	Kind      string
	Timestamp time.Time
	ToolName  string
	Payload   Payload
}

// ResultTarget identifies what a tool call or result acted on, for pairing
// results with calls: an explicit target wins, then the file path, then the
// command text.
func (e Event) ResultTarget() string {
	switch {
	case e.Payload.Target != "":
		return e.Payload.Target
	case e.Payload.FilePath != "":
		return e.Payload.FilePath
	default:
		return e.Payload.Command
	}
}
