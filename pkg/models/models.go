package models

import (
	"fmt"
	"unicode/utf8"
)

// TestsStatus summarizes test-runner outcomes across a session.
type TestsStatus string

const (
	TestsNotRun TestsStatus = "not_run"
	TestsPassed TestsStatus = "passed"
	TestsFailed TestsStatus = "failed"
	TestsMixed  TestsStatus = "mixed"
)

// SessionSummary holds the aggregated, privacy-safe facts of one coding
// session. Every path-like field has already been reduced to a safe display
// form before it is stored here.
type SessionSummary struct {
	SessionID       string
	ProjectName     string
	DurationMinutes int
	FilesCreated    []string
	FilesModified   []string
	GitCommits      []string
	LanguagesUsed   []string // sorted for deterministic output
	TestsStatus     TestsStatus
	ErrorsFixed     int
	TotalToolCalls  int
}

// HighlightCategory classifies a highlight for template selection.
type HighlightCategory string

const (
	HighlightFile      HighlightCategory = "file"
	HighlightCommit    HighlightCategory = "commit"
	HighlightTest      HighlightCategory = "test"
	HighlightBugfix    HighlightCategory = "bugfix"
	HighlightMilestone HighlightCategory = "milestone"
)

// Highlight is a single post-worthy fact derived from a SessionSummary.
// Higher priority means more prominent placement.
type Highlight struct {
	Text     string
	Category HighlightCategory
	Priority int
}

// PostSet is the composer's output: candidate posts per platform format plus
// the derived hashtag set. Every short and thread entry is guaranteed to fit
// its platform's character limit.
type PostSet struct {
	Short    []string
	Thread   []string
	Medium   []string
	Long     []string
	Hashtags []string
}

// CharCount returns the character count of a post as platforms count it
// (runes, not bytes).
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// TwitterStyle controls the tone of short and thread posts.
type TwitterStyle int

const (
	TwitterDevlog TwitterStyle = iota
	TwitterShip
	TwitterMinimal
)

func (s TwitterStyle) String() string {
	switch s {
	case TwitterShip:
		return "ship"
	case TwitterMinimal:
		return "minimal"
	default:
		return "devlog"
	}
}

// ParseTwitterStyle rejects unknown styles at the configuration boundary.
func ParseTwitterStyle(raw string) (TwitterStyle, error) {
	switch raw {
	case "", "devlog":
		return TwitterDevlog, nil
	case "ship":
		return TwitterShip, nil
	case "minimal":
		return TwitterMinimal, nil
	default:
		return TwitterDevlog, fmt.Errorf("unknown twitter style %q (want devlog, ship, or minimal)", raw)
	}
}

// LinkedInStyle controls the structure of medium posts.
type LinkedInStyle int

const (
	LinkedInProfessional LinkedInStyle = iota
	LinkedInStory
	LinkedInWins
)

func (s LinkedInStyle) String() string {
	switch s {
	case LinkedInStory:
		return "story"
	case LinkedInWins:
		return "wins"
	default:
		return "professional"
	}
}

// ParseLinkedInStyle rejects unknown styles at the configuration boundary.
func ParseLinkedInStyle(raw string) (LinkedInStyle, error) {
	switch raw {
	case "", "professional":
		return LinkedInProfessional, nil
	case "story":
		return LinkedInStory, nil
	case "wins":
		return LinkedInWins, nil
	default:
		return LinkedInProfessional, fmt.Errorf("unknown linkedin style %q (want professional, story, or wins)", raw)
	}
}

// HashtagMode is a tri-state toggle: the zero value defers to each
// platform's convention (off for short/thread, on elsewhere).
type HashtagMode int

const (
	HashtagsPlatformDefault HashtagMode = iota
	HashtagsOn
	HashtagsOff
)

// ParseHashtagMode accepts auto/on/off.
func ParseHashtagMode(raw string) (HashtagMode, error) {
	switch raw {
	case "", "auto":
		return HashtagsPlatformDefault, nil
	case "on", "true", "yes":
		return HashtagsOn, nil
	case "off", "false", "no":
		return HashtagsOff, nil
	default:
		return HashtagsPlatformDefault, fmt.Errorf("unknown hashtag mode %q (want auto, on, or off)", raw)
	}
}

// Short-post character limits per platform flavor.
const (
	ShortLimitTwitter = 280
	ShortLimitBlueSky = 300
)

// StyleConfig selects the templates and budgets the composer works with.
type StyleConfig struct {
	Twitter    TwitterStyle
	LinkedIn   LinkedInStyle
	Hashtags   HashtagMode
	ShortLimit int // ShortLimitTwitter or ShortLimitBlueSky
}

// Validate normalizes the zero value and rejects unsupported limits.
func (c *StyleConfig) Validate() error {
	if c.ShortLimit == 0 {
		c.ShortLimit = ShortLimitTwitter
	}
	if c.ShortLimit != ShortLimitTwitter && c.ShortLimit != ShortLimitBlueSky {
		return fmt.Errorf("unsupported short post limit %d (want %d or %d)", c.ShortLimit, ShortLimitTwitter, ShortLimitBlueSky)
	}
	return nil
}
