// Package report serializes a session summary and its post set into the two
// hand-off documents: a human-readable markdown file and a structured JSON
// payload. It performs no disk I/O itself.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/strrl/build-in-public/pkg/models"
)

// Markdown renders the full human-readable document: every candidate per
// format with its character count, plus the session facts in tabular form.
// generatedAt is stamped into the header; pass a fixed time for reproducible
// output.
func Markdown(sum models.SessionSummary, set models.PostSet, generatedAt time.Time) string {
	var b strings.Builder

	langs := strings.Join(sum.LanguagesUsed, ", ")
	if langs == "" {
		langs = "N/A"
	}
	fmt.Fprintf(&b, "# Build in Public - Session Posts\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Session: %s\n", sum.SessionID)
	fmt.Fprintf(&b, "Project: %s\n", sum.ProjectName)
	fmt.Fprintf(&b, "Duration: %d minutes\n", sum.DurationMinutes)
	fmt.Fprintf(&b, "Languages: %s\n\n", langs)

	b.WriteString("---\n\n## 📱 Short Posts (Twitter/X, BlueSky)\n\n")
	for i, post := range set.Short {
		fmt.Fprintf(&b, "### Option %d (%d chars)\n\n```\n%s\n```\n\n", i+1, models.CharCount(post), post)
	}

	b.WriteString("---\n\n## 🧵 Thread (Twitter/X)\n\n")
	for i, segment := range set.Thread {
		fmt.Fprintf(&b, "**%d/%d** (%d chars)\n\n```\n%s\n```\n\n", i+1, len(set.Thread), models.CharCount(segment), segment)
	}

	b.WriteString("---\n\n## 💼 Medium Posts (LinkedIn, Mastodon)\n\n")
	for i, post := range set.Medium {
		fmt.Fprintf(&b, "### Option %d (%d chars)\n\n```\n%s\n```\n\n", i+1, models.CharCount(post), post)
	}

	b.WriteString("---\n\n## 📸 Long Form (Instagram, Blog)\n\n")
	for i, post := range set.Long {
		fmt.Fprintf(&b, "### Option %d (%d chars)\n\n```\n%s\n```\n\n", i+1, models.CharCount(post), post)
	}

	fmt.Fprintf(&b, "---\n\n## #️⃣ Hashtags\n\nCopy these: `%s`\n\n", strings.Join(set.Hashtags, " "))

	b.WriteString("---\n\n## 📊 Session Stats\n\n")
	b.WriteString(statsTable(sum))
	b.WriteString("\n")

	if len(sum.FilesCreated) > 0 {
		b.WriteString("\n### Files Created\n\n")
		for i, name := range sum.FilesCreated {
			if i >= 10 {
				break
			}
			fmt.Fprintf(&b, "- `%s`\n", name)
		}
	}
	if len(sum.GitCommits) > 0 {
		b.WriteString("\n### Commits\n\n")
		for _, c := range sum.GitCommits {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	return b.String()
}

func statsTable(sum models.SessionSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Files Created", len(sum.FilesCreated)},
		{"Files Modified", len(sum.FilesModified)},
		{"Git Commits", len(sum.GitCommits)},
		{"Bugs Fixed", sum.ErrorsFixed},
		{"Tests", string(sum.TestsStatus)},
		{"Total Operations", sum.TotalToolCalls},
	})
	return t.RenderMarkdown()
}

type jsonSummary struct {
	SessionID       string   `json:"session_id"`
	ProjectName     string   `json:"project_name"`
	DurationMinutes int      `json:"duration_minutes"`
	FilesCreated    []string `json:"files_created"`
	FilesModified   []string `json:"files_modified"`
	GitCommits      []string `json:"git_commits"`
	LanguagesUsed   []string `json:"languages_used"`
	TestsStatus     string   `json:"tests_status"`
	ErrorsFixed     int      `json:"errors_fixed"`
	TotalToolCalls  int      `json:"total_tool_calls"`
}

type jsonPosts struct {
	Short    []string `json:"short"`
	Thread   []string `json:"thread"`
	Medium   []string `json:"medium"`
	Long     []string `json:"long"`
	Hashtags []string `json:"hashtags"`
}

type jsonDocument struct {
	Summary jsonSummary `json:"summary"`
	Posts   jsonPosts   `json:"posts"`
}

// JSON renders the structured payload. Identical inputs produce identical
// bytes: field order is fixed by the struct definitions and nil slices are
// normalized to empty lists.
func JSON(sum models.SessionSummary, set models.PostSet) ([]byte, error) {
	doc := jsonDocument{
		Summary: jsonSummary{
			SessionID:       sum.SessionID,
			ProjectName:     sum.ProjectName,
			DurationMinutes: sum.DurationMinutes,
			FilesCreated:    emptyNotNil(sum.FilesCreated),
			FilesModified:   emptyNotNil(sum.FilesModified),
			GitCommits:      emptyNotNil(sum.GitCommits),
			LanguagesUsed:   emptyNotNil(sum.LanguagesUsed),
			TestsStatus:     string(sum.TestsStatus),
			ErrorsFixed:     sum.ErrorsFixed,
			TotalToolCalls:  sum.TotalToolCalls,
		},
		Posts: jsonPosts{
			Short:    emptyNotNil(set.Short),
			Thread:   emptyNotNil(set.Thread),
			Medium:   emptyNotNil(set.Medium),
			Long:     emptyNotNil(set.Long),
			Hashtags: emptyNotNil(set.Hashtags),
		},
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal structured output: %w", err)
	}
	return out, nil
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
