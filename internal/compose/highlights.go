package compose

import (
	"fmt"
	"sort"

	"github.com/strrl/build-in-public/pkg/models"
)

// Highlights derives the ranked, post-worthy facts from a summary. The
// first entry is the one short posts and thread hooks lead with: a commit
// subject when one exists, otherwise the most significant file or test fact.
func Highlights(sum models.SessionSummary) []models.Highlight {
	var hs []models.Highlight

	for i, commit := range sum.GitCommits {
		if i >= 3 {
			break
		}
		hs = append(hs, models.Highlight{
			Text:     commit,
			Category: models.HighlightCommit,
			Priority: 100 - i,
		})
	}

	if sum.ErrorsFixed > 0 {
		hs = append(hs, models.Highlight{
			Text:     fmt.Sprintf("Fixed %s", pluralize(sum.ErrorsFixed, "bug")),
			Category: models.HighlightBugfix,
			Priority: 80,
		})
	}

	if n := len(sum.FilesCreated); n > 0 {
		hs = append(hs, models.Highlight{
			Text:     fmt.Sprintf("Created %s", pluralize(n, "new file")),
			Category: models.HighlightFile,
			Priority: 70,
		})
	}

	switch sum.TestsStatus {
	case models.TestsPassed:
		hs = append(hs, models.Highlight{Text: "All tests passing", Category: models.HighlightTest, Priority: 60})
	case models.TestsMixed:
		hs = append(hs, models.Highlight{Text: "Got the test suite back to green", Category: models.HighlightTest, Priority: 55})
	case models.TestsFailed:
		hs = append(hs, models.Highlight{Text: "Wrestled with a failing test suite", Category: models.HighlightTest, Priority: 30})
	}

	if sum.TotalToolCalls > 0 {
		hs = append(hs, models.Highlight{
			Text:     fmt.Sprintf("%d operations across the session", sum.TotalToolCalls),
			Category: models.HighlightMilestone,
			Priority: 20,
		})
	}

	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Priority > hs[j].Priority })
	return hs
}

// topHighlight never comes back empty: a session with no facts still gets a
// generic placeholder so every format has something to say.
func topHighlight(sum models.SessionSummary) models.Highlight {
	if hs := Highlights(sum); len(hs) > 0 {
		return hs[0]
	}
	return models.Highlight{
		Text:     "Another coding session in the books",
		Category: models.HighlightMilestone,
		Priority: 0,
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
