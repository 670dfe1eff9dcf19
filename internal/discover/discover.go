// Package discover resolves which session log a run should operate on. It
// is a collaborator around the core pipeline: the pipeline itself only ever
// sees the already-resolved handle.
package discover

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strrl/build-in-public/internal/db"
)

// ErrNoSession is the single terminal condition of a run: no log could be
// found or selected.
var ErrNoSession = errors.New("no session log found")

// Handle identifies one resolved session log.
type Handle struct {
	// Path is the JSONL file on disk.
	Path string
	// SessionID is the log's identifier (the file stem).
	SessionID string
	// RawProject is the unsanitized project identifier (the session's cwd
	// when recorded, otherwise the containing directory name). Callers must
	// sanitize it before display.
	RawProject string
}

// ProjectsDir locates the Claude Code projects directory.
func ProjectsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(homeDir, ".claude", "projects")
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrNoSession, dir)
	}
	return dir, nil
}

// Resolve turns a session selector into a handle. An empty selector means
// "the session with the newest activity"; a selector that names an existing
// file is used directly; anything else is treated as a session id and looked
// up across all projects.
func Resolve(ctx context.Context, selector string) (Handle, error) {
	if selector == "" {
		return Latest(ctx)
	}
	if info, err := os.Stat(selector); err == nil && !info.IsDir() {
		return fromPath(selector, ""), nil
	}
	return BySessionID(ctx, selector)
}

// Latest returns the session whose events carry the newest timestamp across
// every project, the same ordering the session browser uses.
func Latest(ctx context.Context) (Handle, error) {
	glob, err := sessionGlob()
	if err != nil {
		return Handle{}, err
	}
	database, err := db.Get()
	if err != nil {
		return Handle{}, err
	}

	query := fmt.Sprintf(`
		SELECT filename, MAX(cwd) as project_path
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			filename = true
		)
		GROUP BY filename
		ORDER BY MAX(timestamp) DESC
		LIMIT 1
	`, glob)

	return scanHandle(database.QueryRowContext(ctx, query))
}

// BySessionID locates a session's log file by its id.
func BySessionID(ctx context.Context, sessionID string) (Handle, error) {
	glob, err := sessionGlob()
	if err != nil {
		return Handle{}, err
	}
	database, err := db.Get()
	if err != nil {
		return Handle{}, err
	}

	query := fmt.Sprintf(`
		SELECT filename, MAX(cwd) as project_path
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			filename = true
		)
		WHERE CAST(sessionId AS VARCHAR) = ?
		GROUP BY filename
		ORDER BY MAX(timestamp) DESC
		LIMIT 1
	`, glob)

	h, err := scanHandle(database.QueryRowContext(ctx, query, sessionID))
	if errors.Is(err, ErrNoSession) {
		return Handle{}, fmt.Errorf("%w: session %q", ErrNoSession, sessionID)
	}
	return h, err
}

func sessionGlob() (string, error) {
	dir, err := ProjectsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "**", "*.jsonl"), nil
}

func scanHandle(row *sql.Row) (Handle, error) {
	var path string
	var project sql.NullString
	if err := row.Scan(&path, &project); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Handle{}, ErrNoSession
		}
		return Handle{}, fmt.Errorf("failed to query session logs: %w", err)
	}
	return fromPath(path, project.String), nil
}

func fromPath(path, project string) Handle {
	if project == "" {
		project = filepath.Base(filepath.Dir(path))
	}
	return Handle{
		Path:       path,
		SessionID:  strings.TrimSuffix(filepath.Base(path), ".jsonl"),
		RawProject: project,
	}
}
