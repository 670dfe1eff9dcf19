package compose

import (
	"strings"

	"github.com/strrl/build-in-public/pkg/models"
)

const ellipsis = "…"

// fitShort applies the shared length-fit policy: the body goes in first,
// then the optional tag line only if it still fits. An oversized body loses
// its emoji decoration before anything else; hard truncation with an
// ellipsis is the last resort, so the result can never exceed the limit.
func fitShort(body, tags string, limit int) string {
	if fits(withTags(body, tags), limit) {
		return withTags(body, tags)
	}

	stripped := stripEmoji(body)
	if fits(withTags(stripped, tags), limit) {
		return withTags(stripped, tags)
	}

	// Drop the trailing hashtags next.
	if fits(body, limit) {
		return body
	}
	if fits(stripped, limit) {
		return stripped
	}

	return truncate(stripped, limit)
}

func withTags(body, tags string) string {
	if tags == "" {
		return body
	}
	return body + "\n\n" + tags
}

func fits(s string, limit int) bool {
	return models.CharCount(s) <= limit
}

// truncate shortens to limit runes, ellipsis included in the budget.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit-1])) + ellipsis
}

// stripEmoji removes decorative symbols while leaving ordinary punctuation
// (bullets, quotes, dashes) alone.
func stripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return tidySpaces(b.String())
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000: // pictographs, emoticons, symbols-extended
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols + dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // arrows and stars used as emoji
		return true
	case r >= 0x2190 && r <= 0x21FF: // arrows
		return true
	case r >= 0x2300 && r <= 0x23FF: // technical (stopwatch, hourglass)
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	}
	return false
}

// tidySpaces collapses the gaps stripping leaves behind without disturbing
// intentional line structure.
func tidySpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		// Collapse runs of interior spaces created by removed symbols, but
		// keep leading indentation for list items.
		lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		inner := strings.Join(strings.Fields(trimmed), " ")
		lines[i] = strings.Repeat(" ", lead) + inner
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
