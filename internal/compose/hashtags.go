package compose

import (
	"strings"

	"github.com/strrl/build-in-public/pkg/models"
)

// BaseHashtag always leads the tag set.
const BaseHashtag = "#BuildingInPublic"

const (
	maxLanguageTags = 3
	maxLongTags     = 30
	// Short posts carry at most this many tags when hashtags are on.
	maxShortTags = 4
)

var hashtagByLanguage = map[string]string{
	"Python":           "#Python",
	"JavaScript":       "#JavaScript",
	"TypeScript":       "#TypeScript",
	"React":            "#React",
	"React/TypeScript": "#React",
	"Go":               "#golang",
	"Rust":             "#rustlang",
	"Ruby":             "#Ruby",
	"Java":             "#Java",
	"C++":              "#cpp",
	"C":                "#clang",
	"Swift":            "#Swift",
	"Kotlin":           "#Kotlin",
	"SQL":              "#SQL",
	"HTML":             "#webdev",
	"CSS":              "#webdev",
	"SCSS":             "#webdev",
	"Vue":              "#vuejs",
	"Svelte":           "#svelte",
	"Bash":             "#Bash",
}

// hashtags builds the deterministic tag set for a summary: the community
// base tags, then up to maxLanguageTags derived from the languages used
// (already sorted), then #TDD when the session ran tests. Languages without
// a mapping contribute nothing.
func hashtags(sum models.SessionSummary) []string {
	tags := []string{BaseHashtag, "#CodingInPublic"}
	seen := map[string]bool{BaseHashtag: true, "#CodingInPublic": true}

	added := 0
	for _, lang := range sum.LanguagesUsed {
		if added >= maxLanguageTags {
			break
		}
		tag, ok := hashtagByLanguage[lang]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		added++
	}

	if sum.TestsStatus != models.TestsNotRun {
		tags = append(tags, "#TDD")
	}
	return tags
}

func tagLine(tags []string, max int) string {
	if max < len(tags) {
		tags = tags[:max]
	}
	return strings.Join(tags, " ")
}
