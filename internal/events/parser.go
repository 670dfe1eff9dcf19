package events

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Session logs occasionally carry very long lines (full file contents inside
// tool payloads), well past bufio's default token size.
const maxLineBytes = 4 * 1024 * 1024

type rawEvent struct {
	Kind      string  `json:"kind"`
	Timestamp string  `json:"timestamp"`
	ToolName  string  `json:"tool_name"`
	Payload   Payload `json:"payload"`
}

// Parse reads one JSON object per line and returns the events that decoded
// cleanly, in input order, plus the number of skipped lines. A line that is
// not valid JSON or has no recognizable kind is skipped, never fatal: a log
// whose tail was cut mid-write still parses. The returned error covers only
// reader failures.
func Parse(r io.Reader) ([]Event, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var evs []Event
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ev, ok := decodeLine(line)
		if !ok {
			skipped++
			continue
		}
		evs = append(evs, ev)
	}
	if err := scanner.Err(); err != nil {
		return evs, skipped, err
	}
	return evs, skipped, nil
}

func decodeLine(line string) (Event, bool) {
	var raw rawEvent
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Event{}, false
	}
	if !knownKind(raw.Kind) {
		return Event{}, false
	}
	ev := Event{
		Kind:     raw.Kind,
		ToolName: raw.ToolName,
		Payload:  raw.Payload,
	}
	// A bad timestamp does not disqualify the event; it just contributes
	// nothing to the duration calculation.
	if raw.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, raw.Timestamp); err == nil {
			ev.Timestamp = t
		}
	}
	return ev, true
}

func knownKind(kind string) bool {
	switch kind {
	case KindUserMessage, KindAssistantMessage, KindToolCall, KindToolResult:
		return true
	}
	return false
}
