// Package activity maintains the per-session activity counters that the
// Claude Code hooks feed, and decides whether a finished session is worth a
// build-in-public reminder.
package activity

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/strrl/build-in-public/internal/events"
)

const stateFileName = ".session_activity.json"

// Counters is the activity state accumulated across one session.
type Counters struct {
	FilesCreated  int `json:"files_created"`
	FilesModified int `json:"files_modified"`
	GitCommits    int `json:"git_commits"`
	CommandsRun   int `json:"commands_run"`
	Responses     int `json:"responses"`
}

// Substantial reports whether the session did enough to warrant a reminder.
func (c Counters) Substantial() bool {
	return c.FilesCreated > 0 || c.FilesModified > 0 || c.GitCommits > 0
}

// HookInput is the JSON Claude Code pipes to hook processes on stdin.
type HookInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
}

// DecodeHookInput tolerates empty or malformed hook payloads; hooks must
// never fail the session over bad input.
func DecodeHookInput(r io.Reader) HookInput {
	var in HookInput
	_ = json.NewDecoder(r).Decode(&in)
	return in
}

// Store reads and writes the activity state file under a root directory
// (normally the plugin root).
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("activity store needs a root directory (is %s set?)", "CLAUDE_PLUGIN_ROOT")
	}
	return &Store{root: root}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.root, stateFileName)
}

// Load returns the current counters, or zero counters when the file is
// missing or unreadable.
func (s *Store) Load() Counters {
	var c Counters
	raw, err := os.ReadFile(s.path())
	if err != nil {
		return c
	}
	_ = json.Unmarshal(raw, &c)
	return c
}

func (s *Store) Save(c Counters) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode activity state: %w", err)
	}
	if err := os.WriteFile(s.path(), raw, 0o644); err != nil {
		return fmt.Errorf("write activity state: %w", err)
	}
	return nil
}

// Reset removes the state file between sessions.
func (s *Store) Reset() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove activity state: %w", err)
	}
	return nil
}

// How many trailing transcript events a stop hook inspects.
const tailEvents = 20

// RecordStop bumps the response counter and folds the transcript tail's tool
// activity into the counters. Transcript problems are ignored: the hook's
// only job is best-effort counting.
func (s *Store) RecordStop(in HookInput) error {
	c := s.Load()
	c.Responses++

	if in.TranscriptPath != "" {
		if f, err := os.Open(in.TranscriptPath); err == nil {
			evs, _, _ := events.Parse(f)
			f.Close()
			if len(evs) > tailEvents {
				evs = evs[len(evs)-tailEvents:]
			}
			countTail(&c, evs)
		}
	}

	return s.Save(c)
}

func countTail(c *Counters, evs []events.Event) {
	for _, ev := range evs {
		if ev.Kind != events.KindToolCall {
			continue
		}
		switch ev.ToolName {
		case "Write", "create_file":
			c.FilesCreated++
		case "Edit", "MultiEdit", "str_replace":
			c.FilesModified++
		case "Bash":
			c.CommandsRun++
			if strings.Contains(ev.Payload.Command, "git commit") {
				c.GitCommits++
			}
		}
	}
}

// SessionEndReminder prints the reminder when the session was substantial
// and clears the state for the next session. It reports whether a reminder
// was shown.
func (s *Store) SessionEndReminder(w io.Writer) (bool, error) {
	c := s.Load()
	shown := false
	if c.Substantial() {
		divider := strings.Repeat("=", 50)
		fmt.Fprintf(w, "\n%s\n📱 BUILD IN PUBLIC REMINDER\n%s\n\n", divider, divider)
		fmt.Fprintln(w, "You had a productive session! Consider sharing your progress.")
		fmt.Fprintln(w, "\nRun build-in-public to create social media posts")
		fmt.Fprintln(w, "for Twitter/X, BlueSky, LinkedIn, and more.")
		fmt.Fprintf(w, "\n%s\n", divider)
		shown = true
	}
	return shown, s.Reset()
}
