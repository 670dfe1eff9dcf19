package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromPath(t *testing.T) {
	h := fromPath("/home/u/.claude/projects/-Users-u-code-app/abc-123.jsonl", "/Users/u/code/app")
	if h.SessionID != "abc-123" {
		t.Errorf("SessionID = %q, want abc-123", h.SessionID)
	}
	if h.RawProject != "/Users/u/code/app" {
		t.Errorf("RawProject = %q", h.RawProject)
	}

	// Without a recorded cwd the containing directory stands in.
	h = fromPath("/home/u/.claude/projects/-Users-u-code-app/abc-123.jsonl", "")
	if h.RawProject != "-Users-u-code-app" {
		t.Errorf("RawProject = %q, want the directory name", h.RawProject)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-session.jsonl")
	if err := os.WriteFile(path, []byte(`{"kind":"user_message","payload":{"text":"hi"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if h.Path != path {
		t.Errorf("Path = %q, want %q", h.Path, path)
	}
	if h.SessionID != "my-session" {
		t.Errorf("SessionID = %q, want my-session", h.SessionID)
	}
}

// The cross-project queries need a real ~/.claude/projects tree; skip when
// the environment has none, the way the session browser's tests do.
func TestLatestAgainstLocalLogs(t *testing.T) {
	if _, err := ProjectsDir(); err != nil {
		t.Skipf("Skipping, no projects directory: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h, err := Latest(ctx)
	if err != nil {
		t.Skipf("Skipping, no sessions available: %v", err)
	}
	if h.SessionID == "" {
		t.Error("Latest returned a handle with no session id")
	}
	if h.Path == "" {
		t.Error("Latest returned a handle with no path")
	}
}
