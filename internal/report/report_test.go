package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/strrl/build-in-public/pkg/models"
)

func sampleSummary() models.SessionSummary {
	return models.SessionSummary{
		SessionID:       "abc-123",
		ProjectName:     "widget",
		DurationMinutes: 42,
		FilesCreated:    []string{"login.go"},
		FilesModified:   []string{"routes.go"},
		GitCommits:      []string{"Add login form"},
		LanguagesUsed:   []string{"Go"},
		TestsStatus:     models.TestsPassed,
		ErrorsFixed:     1,
		TotalToolCalls:  9,
	}
}

func samplePosts() models.PostSet {
	return models.PostSet{
		Short:    []string{"short one", "short two"},
		Thread:   []string{"hook", "body", "question?"},
		Medium:   []string{"medium post"},
		Long:     []string{"long post"},
		Hashtags: []string{"#BuildingInPublic", "#golang"},
	}
}

func TestMarkdownDocument(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)
	doc := Markdown(sampleSummary(), samplePosts(), at)

	for _, want := range []string{
		"Session: abc-123",
		"Project: widget",
		"Generated: 2024-03-01 18:30",
		"## 📱 Short Posts",
		"## 🧵 Thread",
		"## 💼 Medium Posts",
		"## 📸 Long Form",
		"## #️⃣ Hashtags",
		"## 📊 Session Stats",
		"Files Created",
		"- `login.go`",
		"- Add login form",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown document missing %q", want)
		}
	}

	// Every candidate appears with its character count.
	if !strings.Contains(doc, fmt.Sprintf("(%d chars)", models.CharCount("short one"))) {
		t.Error("markdown document missing character counts")
	}
	// Thread segments are numbered.
	if !strings.Contains(doc, "**1/3**") || !strings.Contains(doc, "**3/3**") {
		t.Error("markdown document missing thread numbering")
	}
}

func TestJSONSchema(t *testing.T) {
	payload, err := JSON(sampleSummary(), samplePosts())
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	for _, key := range []string{"summary", "posts"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("payload missing top-level %q", key)
		}
	}

	var summary map[string]json.RawMessage
	if err := json.Unmarshal(doc["summary"], &summary); err != nil {
		t.Fatalf("summary is not an object: %v", err)
	}
	for _, key := range []string{
		"session_id", "project_name", "duration_minutes", "files_created",
		"files_modified", "git_commits", "languages_used", "tests_status",
		"errors_fixed", "total_tool_calls",
	} {
		if _, ok := summary[key]; !ok {
			t.Errorf("summary missing %q", key)
		}
	}

	var posts map[string]json.RawMessage
	if err := json.Unmarshal(doc["posts"], &posts); err != nil {
		t.Fatalf("posts is not an object: %v", err)
	}
	for _, key := range []string{"short", "thread", "medium", "long", "hashtags"} {
		if _, ok := posts[key]; !ok {
			t.Errorf("posts missing %q", key)
		}
	}
}

func TestJSONDeterministicAndNilSafe(t *testing.T) {
	first, err := JSON(sampleSummary(), samplePosts())
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	second, err := JSON(sampleSummary(), samplePosts())
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs over the same input produced different bytes")
	}

	// Empty summary serializes lists as [], never null.
	payload, err := JSON(models.SessionSummary{TestsStatus: models.TestsNotRun}, models.PostSet{})
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}
	if bytes.Contains(payload, []byte("null")) {
		t.Errorf("payload contains null lists:\n%s", payload)
	}
}
