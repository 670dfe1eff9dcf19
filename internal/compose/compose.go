// Package compose renders a SessionSummary into candidate posts per
// platform format, honoring each format's style and length budget.
package compose

import (
	"fmt"
	"strings"

	"github.com/strrl/build-in-public/pkg/models"
)

// Posts builds the full candidate set for a summary. The configuration is
// validated first so an invalid style surfaces here rather than deep inside
// a template. Output depends only on the summary and the configuration.
func Posts(sum models.SessionSummary, cfg models.StyleConfig) (models.PostSet, error) {
	if err := cfg.Validate(); err != nil {
		return models.PostSet{}, err
	}

	tags := hashtags(sum)
	set := models.PostSet{
		Short:    shortPosts(sum, cfg, tags),
		Thread:   threadPosts(sum, cfg, tags),
		Medium:   []string{mediumPost(sum, cfg, tags)},
		Long:     []string{longPost(sum, cfg, tags)},
		Hashtags: tags,
	}
	return set, nil
}

// shortTagLine honors the platform convention: short posts skip hashtags
// unless explicitly switched on.
func shortTagLine(cfg models.StyleConfig, tags []string) string {
	if cfg.Hashtags != models.HashtagsOn {
		return ""
	}
	return tagLine(tags, maxShortTags)
}

// blockTagLine is for formats whose convention is hashtags-on by default.
func blockTagLine(cfg models.StyleConfig, tags []string, max int) string {
	if cfg.Hashtags == models.HashtagsOff {
		return ""
	}
	return tagLine(tags, max)
}

// shortPosts produces two or three independent candidates, each under the
// configured limit.
func shortPosts(sum models.SessionSummary, cfg models.StyleConfig, tags []string) []string {
	line := shortTagLine(cfg, tags)
	var bodies []string

	if len(sum.GitCommits) > 0 {
		switch cfg.Twitter {
		case models.TwitterShip:
			bodies = append(bodies, fmt.Sprintf("🚀 Shipped: %s\n\nOut the door and on to the next one.", sum.GitCommits[0]))
		case models.TwitterMinimal:
			bodies = append(bodies, fmt.Sprintf("Shipped: %s", sum.GitCommits[0]))
		default:
			bodies = append(bodies, fmt.Sprintf("✅ Just shipped: %s", sum.GitCommits[0]))
		}
	}

	if n := len(sum.FilesCreated); n > 0 {
		switch cfg.Twitter {
		case models.TwitterShip:
			bodies = append(bodies, fmt.Sprintf("🛠️ %s shipped to %s today.", pluralize(n, "new file"), displayProject(sum)))
		case models.TwitterMinimal:
			bodies = append(bodies, fmt.Sprintf("Coding session done. %s created.", pluralize(n, "new file")))
		default:
			bodies = append(bodies, fmt.Sprintf("🛠️ Coding session complete!\n\nCreated %s today.", pluralize(n, "new file")))
		}
	}

	if sum.ErrorsFixed > 0 && len(bodies) < 3 {
		if cfg.Twitter == models.TwitterMinimal {
			bodies = append(bodies, fmt.Sprintf("Squashed %s today.", pluralize(sum.ErrorsFixed, "bug")))
		} else {
			bodies = append(bodies, fmt.Sprintf("🐛➡️✅ Squashed %s today!\n\nThe best feeling in coding.", pluralize(sum.ErrorsFixed, "bug")))
		}
	}

	if sum.DurationMinutes > 0 && len(bodies) < 3 {
		if cfg.Twitter == models.TwitterMinimal {
			bodies = append(bodies, fmt.Sprintf("%s of focused coding. %d operations later... progress.", formatDuration(sum.DurationMinutes), sum.TotalToolCalls))
		} else {
			bodies = append(bodies, fmt.Sprintf("⏱️ %s of focused coding\n\n%d operations later... progress!", formatDuration(sum.DurationMinutes), sum.TotalToolCalls))
		}
	}

	// A near-empty session still yields at least two candidates.
	for len(bodies) < 2 {
		if len(bodies) == 0 {
			bodies = append(bodies, fmt.Sprintf("Showed up and put in a coding session on %s today. Small steps still count.", displayProject(sum)))
		} else {
			bodies = append(bodies, "Quiet session today. Sometimes progress looks like thinking, reading, and planning the next move.")
		}
	}
	if len(bodies) > 3 {
		bodies = bodies[:3]
	}

	posts := make([]string, 0, len(bodies))
	for _, body := range bodies {
		if cfg.Twitter == models.TwitterMinimal {
			body = stripEmoji(body)
		}
		posts = append(posts, fitShort(body, line, cfg.ShortLimit))
	}
	return posts
}

// threadPosts builds 3 to 6 segments: a hook, one segment per non-empty
// category, and a closing engagement question. Each segment independently
// fits the short-post limit.
func threadPosts(sum models.SessionSummary, cfg models.StyleConfig, tags []string) []string {
	top := topHighlight(sum)

	var hook string
	switch cfg.Twitter {
	case models.TwitterShip:
		hook = fmt.Sprintf("🚀 %s — and that's just the headline. Here's how the session went 👇", top.Text)
	case models.TwitterMinimal:
		hook = fmt.Sprintf("%s. A short recap of today's session:", top.Text)
	default:
		hook = fmt.Sprintf("🧵 %s — today's coding session, unpacked 👇", top.Text)
	}

	var content []string
	if len(sum.LanguagesUsed) > 0 {
		langs := sum.LanguagesUsed
		if len(langs) > 4 {
			langs = langs[:4]
		}
		content = append(content, fmt.Sprintf("💻 Tech stack: %s", strings.Join(langs, ", ")))
	}
	if len(sum.FilesCreated) > 0 {
		var b strings.Builder
		b.WriteString("📝 New files:")
		for i, name := range sum.FilesCreated {
			if i >= 4 {
				break
			}
			b.WriteString(fmt.Sprintf("\n  • %s", name))
		}
		content = append(content, b.String())
	}
	if len(sum.GitCommits) > 0 {
		var b strings.Builder
		b.WriteString("📦 Commits:")
		for i, c := range sum.GitCommits {
			if i >= 3 {
				break
			}
			b.WriteString(fmt.Sprintf("\n  ✅ %s", truncate(c, 60)))
		}
		content = append(content, b.String())
	}
	switch sum.TestsStatus {
	case models.TestsPassed:
		content = append(content, "🧪 Tests: passing ✅")
	case models.TestsMixed:
		if sum.ErrorsFixed > 0 {
			content = append(content, fmt.Sprintf("🧪 Tests: failing, then passing. %s along the way.", pluralize(sum.ErrorsFixed, "fix")))
		} else {
			content = append(content, "🧪 Tests: red, then green. The good kind of session.")
		}
	case models.TestsFailed:
		content = append(content, "🧪 Tests: still red. Tomorrow's first job.")
	}

	if len(content) == 0 {
		content = append(content, fmt.Sprintf("⚙️ %d tool operations over %s — groundwork sessions matter too.", sum.TotalToolCalls, formatDuration(sum.DurationMinutes)))
	}
	// Hook + content + closing question stays within six segments.
	if len(content) > 4 {
		content = content[:4]
	}

	segments := append([]string{hook}, content...)
	segments = append(segments, "What are you building today? 👇")

	minimal := cfg.Twitter == models.TwitterMinimal
	for i, seg := range segments {
		if minimal {
			seg = stripEmoji(seg)
		}
		segments[i] = fitShort(seg, "", cfg.ShortLimit)
	}
	return segments
}

const mediumCommitCap = 5

// mediumPost renders the single LinkedIn-style block: headline, bulleted
// accomplishments, and a hashtag line when enabled.
func mediumPost(sum models.SessionSummary, cfg models.StyleConfig, tags []string) string {
	var b strings.Builder

	langs := "code"
	if len(sum.LanguagesUsed) > 0 {
		show := sum.LanguagesUsed
		if len(show) > 3 {
			show = show[:3]
		}
		langs = strings.Join(show, ", ")
	}

	switch cfg.LinkedIn {
	case models.LinkedInStory:
		fmt.Fprintf(&b, "Every project moves forward one session at a time.\n\nToday %s got %s of my attention, working in %s. ", displayProject(sum), formatDuration(sum.DurationMinutes), langs)
		b.WriteString("Here's what came out of it:\n")
	case models.LinkedInWins:
		fmt.Fprintf(&b, "Wins from today's session on %s 🏆\n", displayProject(sum))
	default:
		fmt.Fprintf(&b, "Coding session complete! 🚀\n\nToday I worked on %s using %s.\n\nKey accomplishments:\n", displayProject(sum), langs)
	}

	bullets := 0
	for i, commit := range sum.GitCommits {
		if i >= mediumCommitCap {
			break
		}
		fmt.Fprintf(&b, "• Shipped: %s\n", commit)
		bullets++
	}
	if n := len(sum.FilesCreated); n > 0 {
		fmt.Fprintf(&b, "• Created %s\n", pluralize(n, "new file"))
		bullets++
	}
	if n := len(sum.FilesModified); n > 0 {
		fmt.Fprintf(&b, "• Modified %s\n", pluralize(n, "existing file"))
		bullets++
	}
	if sum.ErrorsFixed > 0 {
		fmt.Fprintf(&b, "• Fixed %s\n", pluralize(sum.ErrorsFixed, "bug"))
		bullets++
	}
	if sum.TestsStatus == models.TestsPassed || sum.TestsStatus == models.TestsMixed {
		b.WriteString("• All tests passing ✅\n")
		bullets++
	}
	if bullets == 0 {
		b.WriteString("• Groundwork: reading, planning, and setting up the next move\n")
	}

	if line := blockTagLine(cfg, tags, len(tags)); line != "" {
		b.WriteString("\n" + line)
	}
	return strings.TrimRight(b.String(), "\n")
}

var categoryEmoji = map[models.HighlightCategory]string{
	models.HighlightFile:      "✨",
	models.HighlightCommit:    "🎯",
	models.HighlightTest:      "🧪",
	models.HighlightBugfix:    "🐛",
	models.HighlightMilestone: "•",
}

// longPost is the narrative form: every summary fact, a call to action, and
// the full hashtag set (capped). It has no hard ceiling.
func longPost(sum models.SessionSummary, cfg models.StyleConfig, tags []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today's build session 🛠️\n\n%s of focused coding on %s.\n\nThe journey:\n", formatDuration(sum.DurationMinutes), displayProject(sum))

	hs := Highlights(sum)
	if len(hs) == 0 {
		b.WriteString("• A quiet one: exploring, reading, and lining up the next feature\n")
	}
	for i, h := range hs {
		if i >= 5 {
			break
		}
		emoji := categoryEmoji[h.Category]
		if emoji == "" {
			emoji = "•"
		}
		fmt.Fprintf(&b, "%s %s\n", emoji, h.Text)
	}

	if len(sum.LanguagesUsed) > 0 {
		fmt.Fprintf(&b, "\nTech: %s\n", strings.Join(sum.LanguagesUsed, ", "))
	}

	b.WriteString("\nBuilding in public means sharing the journey: the wins, the bugs, and everything in between.\n\nWhat's your current project? Drop a comment! 👇")

	if line := blockTagLine(cfg, tags, maxLongTags); line != "" {
		b.WriteString("\n\n" + line)
	}
	return b.String()
}

// displayProject guards templates against an unset project name.
func displayProject(sum models.SessionSummary) string {
	if sum.ProjectName == "" {
		return "my project"
	}
	return sum.ProjectName
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "a stretch"
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%d minutes", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
