// Package sanitize reduces filesystem paths and project identifiers to
// disclosure-safe display forms. Both functions are pure and idempotent and
// never fail: unusable input degrades to a generic placeholder.
package sanitize

import (
	"path"
	"strings"
)

const (
	placeholderFile    = "file"
	placeholderProject = "project"
)

// DisplayPath returns only the final segment of a path. Directory
// components, drive letters, and home-directory tokens never survive.
func DisplayPath(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimRight(s, "/")
	s = path.Base(s)
	if i := strings.Index(s, ":"); i >= 0 {
		// Windows drive or URI-ish prefix.
		s = s[i+1:]
	}
	if unusableSegment(s) {
		return placeholderFile
	}
	return s
}

// ProjectName derives a display name from the leaf directory of a project
// path. It also understands the dash-encoded directory names Claude Code
// uses under ~/.claude/projects (where "/Users/x/code/app" is stored as
// "-Users-x-code-app").
func ProjectName(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimRight(s, "/")
	s = path.Base(s)
	if strings.HasPrefix(s, "-") {
		parts := strings.Split(s, "-")
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				s = parts[i]
				break
			}
		}
	}
	if unusableSegment(s) {
		return placeholderProject
	}
	return s
}

func unusableSegment(s string) bool {
	switch s {
	case "", ".", "..", "/", "~":
		return true
	}
	return strings.Trim(s, "-.") == ""
}
