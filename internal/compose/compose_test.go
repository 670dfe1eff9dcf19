package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/strrl/build-in-public/pkg/models"
)

func fullSummary() models.SessionSummary {
	return models.SessionSummary{
		SessionID:       "abc-123",
		ProjectName:     "widget",
		DurationMinutes: 95,
		FilesCreated:    []string{"login.go", "login_test.go"},
		FilesModified:   []string{"routes.go"},
		GitCommits:      []string{"Add login form", "Fix session bug"},
		LanguagesUsed:   []string{"Go", "TypeScript"},
		TestsStatus:     models.TestsPassed,
		ErrorsFixed:     2,
		TotalToolCalls:  48,
	}
}

func compose(t *testing.T, sum models.SessionSummary, cfg models.StyleConfig) models.PostSet {
	t.Helper()
	set, err := Posts(sum, cfg)
	if err != nil {
		t.Fatalf("Posts returned error: %v", err)
	}
	return set
}

func TestShortPostsRespectLimit(t *testing.T) {
	for _, limit := range []int{models.ShortLimitTwitter, models.ShortLimitBlueSky} {
		for _, style := range []models.TwitterStyle{models.TwitterDevlog, models.TwitterShip, models.TwitterMinimal} {
			set := compose(t, fullSummary(), models.StyleConfig{Twitter: style, ShortLimit: limit})
			if n := len(set.Short); n < 2 || n > 3 {
				t.Errorf("style %v: %d short candidates, want 2-3", style, n)
			}
			for i, post := range set.Short {
				if c := models.CharCount(post); c > limit {
					t.Errorf("style %v limit %d: candidate %d is %d chars:\n%s", style, limit, i, c, post)
				}
			}
		}
	}
}

func TestShortPostFitsEvenWithHugeCommit(t *testing.T) {
	sum := fullSummary()
	sum.GitCommits = []string{strings.Repeat("Refactor the authentication middleware ", 20)}
	set := compose(t, sum, models.StyleConfig{Hashtags: models.HashtagsOn})
	for i, post := range set.Short {
		if c := models.CharCount(post); c > models.ShortLimitTwitter {
			t.Errorf("candidate %d is %d chars, want <= %d", i, c, models.ShortLimitTwitter)
		}
	}
	// The first candidate had to be cut down to fit.
	if !strings.Contains(set.Short[0], "…") {
		t.Errorf("expected truncation marker in %q", set.Short[0])
	}
}

func TestThreadShape(t *testing.T) {
	set := compose(t, fullSummary(), models.StyleConfig{})
	if n := len(set.Thread); n < 3 || n > 6 {
		t.Fatalf("thread has %d segments, want 3-6", n)
	}
	for i, seg := range set.Thread {
		if c := models.CharCount(seg); c > models.ShortLimitTwitter {
			t.Errorf("segment %d is %d chars, over the limit", i, c)
		}
	}
	last := set.Thread[len(set.Thread)-1]
	if !strings.Contains(last, "?") {
		t.Errorf("closing segment %q is not a question", last)
	}
}

func TestThreadOmitsEmptyCategories(t *testing.T) {
	sum := models.SessionSummary{
		ProjectName:    "widget",
		GitCommits:     []string{"Add login form"},
		TotalToolCalls: 5,
	}
	set := compose(t, sum, models.StyleConfig{})
	for _, seg := range set.Thread {
		if strings.Contains(seg, "Tech stack") {
			t.Errorf("thread mentions tech stack with no languages: %q", seg)
		}
		if strings.Contains(seg, "New files") {
			t.Errorf("thread mentions files with none created: %q", seg)
		}
	}
	if n := len(set.Thread); n < 3 {
		t.Errorf("thread has %d segments, want >= 3", n)
	}
}

func TestCommitDrivesTheHook(t *testing.T) {
	sum := models.SessionSummary{
		ProjectName: "widget",
		GitCommits:  []string{"Add login form"},
	}
	set := compose(t, sum, models.StyleConfig{})
	if !strings.Contains(set.Thread[0], "Add login form") {
		t.Errorf("hook %q does not lead with the commit", set.Thread[0])
	}
	if !strings.Contains(set.Short[0], "Add login form") {
		t.Errorf("short candidate %q does not lead with the commit", set.Short[0])
	}
}

func TestEmptySummaryStillProducesEveryFormat(t *testing.T) {
	set := compose(t, models.SessionSummary{TestsStatus: models.TestsNotRun}, models.StyleConfig{})
	if len(set.Short) < 2 {
		t.Errorf("short candidates = %d, want >= 2", len(set.Short))
	}
	if n := len(set.Thread); n < 3 || n > 6 {
		t.Errorf("thread segments = %d, want 3-6", n)
	}
	if len(set.Medium) != 1 || set.Medium[0] == "" {
		t.Errorf("medium = %v, want one non-empty post", set.Medium)
	}
	if len(set.Long) != 1 || set.Long[0] == "" {
		t.Errorf("long = %v, want one non-empty post", set.Long)
	}
	if len(set.Hashtags) == 0 {
		t.Errorf("hashtags empty, want at least the base tag")
	}
}

func TestHashtagDefaults(t *testing.T) {
	sum := fullSummary()

	// Platform default: short posts carry no hashtags.
	set := compose(t, sum, models.StyleConfig{})
	for i, post := range set.Short {
		if strings.Contains(post, "#") {
			t.Errorf("short candidate %d has hashtags by default: %q", i, post)
		}
	}
	// Medium and long carry them by default.
	if !strings.Contains(set.Medium[0], BaseHashtag) {
		t.Errorf("medium post missing %s:\n%s", BaseHashtag, set.Medium[0])
	}
	if !strings.Contains(set.Long[0], BaseHashtag) {
		t.Errorf("long post missing %s:\n%s", BaseHashtag, set.Long[0])
	}

	// Explicit off strips them everywhere.
	off := compose(t, sum, models.StyleConfig{Hashtags: models.HashtagsOff})
	if strings.Contains(off.Medium[0], "#") {
		t.Errorf("medium post has hashtags when off:\n%s", off.Medium[0])
	}

	// Explicit on adds them to shorts that have room.
	on := compose(t, sum, models.StyleConfig{Hashtags: models.HashtagsOn})
	found := false
	for _, post := range on.Short {
		if strings.Contains(post, BaseHashtag) {
			found = true
		}
	}
	if !found {
		t.Errorf("no short candidate carries %s when hashtags are on", BaseHashtag)
	}
}

func TestHashtagDerivation(t *testing.T) {
	set := compose(t, fullSummary(), models.StyleConfig{})
	want := []string{BaseHashtag, "#CodingInPublic", "#golang", "#TypeScript", "#TDD"}
	if !reflect.DeepEqual(set.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", set.Hashtags, want)
	}

	// Unmapped languages contribute nothing.
	sum := fullSummary()
	sum.LanguagesUsed = []string{"Brainfuck"}
	sum.TestsStatus = models.TestsNotRun
	set = compose(t, sum, models.StyleConfig{})
	want = []string{BaseHashtag, "#CodingInPublic"}
	if !reflect.DeepEqual(set.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", set.Hashtags, want)
	}
}

func TestMediumStyles(t *testing.T) {
	sum := fullSummary()
	pro := compose(t, sum, models.StyleConfig{LinkedIn: models.LinkedInProfessional})
	if !strings.Contains(pro.Medium[0], "Key accomplishments:") {
		t.Errorf("professional medium post missing accomplishments header:\n%s", pro.Medium[0])
	}
	story := compose(t, sum, models.StyleConfig{LinkedIn: models.LinkedInStory})
	if !strings.Contains(story.Medium[0], "one session at a time") {
		t.Errorf("story medium post missing narrative opener:\n%s", story.Medium[0])
	}
	wins := compose(t, sum, models.StyleConfig{LinkedIn: models.LinkedInWins})
	if !strings.Contains(wins.Medium[0], "Wins from today's session") {
		t.Errorf("wins medium post missing wins header:\n%s", wins.Medium[0])
	}
	for _, set := range []models.PostSet{pro, story, wins} {
		if !strings.Contains(set.Medium[0], "Shipped: Add login form") {
			t.Errorf("medium post missing commit bullet:\n%s", set.Medium[0])
		}
	}
}

func TestMinimalStyleHasNoEmoji(t *testing.T) {
	set := compose(t, fullSummary(), models.StyleConfig{Twitter: models.TwitterMinimal})
	for _, post := range append(append([]string{}, set.Short...), set.Thread...) {
		for _, r := range post {
			if isEmoji(r) {
				t.Errorf("minimal style post contains emoji %q:\n%s", string(r), post)
			}
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	sum := fullSummary()
	cfg := models.StyleConfig{Twitter: models.TwitterShip, LinkedIn: models.LinkedInWins, Hashtags: models.HashtagsOn}
	first := compose(t, sum, cfg)
	second := compose(t, sum, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same summary differ:\n%+v\n%+v", first, second)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	if _, err := Posts(fullSummary(), models.StyleConfig{ShortLimit: 123}); err == nil {
		t.Error("expected error for unsupported short limit")
	}
	if _, err := models.ParseTwitterStyle("sarcastic"); err == nil {
		t.Error("expected error for unknown twitter style")
	}
	if _, err := models.ParseLinkedInStyle("bragging"); err == nil {
		t.Error("expected error for unknown linkedin style")
	}
	if _, err := models.ParseHashtagMode("maybe"); err == nil {
		t.Error("expected error for unknown hashtag mode")
	}
}

func TestHighlightRanking(t *testing.T) {
	hs := Highlights(fullSummary())
	if len(hs) == 0 {
		t.Fatal("no highlights from a full summary")
	}
	if hs[0].Category != models.HighlightCommit || hs[0].Text != "Add login form" {
		t.Errorf("top highlight = %+v, want the first commit", hs[0])
	}
	for i := 1; i < len(hs); i++ {
		if hs[i].Priority > hs[i-1].Priority {
			t.Errorf("highlights not sorted by priority at %d: %+v", i, hs)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short string = %q", got)
	}
	got := truncate(strings.Repeat("a", 50), 10)
	if models.CharCount(got) > 10 {
		t.Errorf("truncate produced %d chars, want <= 10", models.CharCount(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncate result %q missing ellipsis", got)
	}
}

func TestStripEmojiKeepsStructure(t *testing.T) {
	in := "📝 New files:\n  • login.go\n  • routes.go"
	out := stripEmoji(in)
	if strings.ContainsRune(out, '📝') {
		t.Errorf("emoji survived: %q", out)
	}
	if !strings.Contains(out, "• login.go") {
		t.Errorf("bullet lost: %q", out)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("line structure lost: %q", out)
	}
}
