// Package extract builds a SessionSummary from a session's event sequence in
// a single linear scan.
package extract

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/strrl/build-in-public/internal/events"
	"github.com/strrl/build-in-public/internal/sanitize"
	"github.com/strrl/build-in-public/pkg/models"
)

// Tool names that write a file.
var writeTools = map[string]bool{
	"Write":       true,
	"Edit":        true,
	"MultiEdit":   true,
	"create_file": true,
	"str_replace": true,
}

// Command substrings identifying a test-runner invocation.
var testMarkers = []string{
	"pytest", "jest", "npm test", "cargo test", "go test", "rspec",
}

var commitSubjectRe = regexp.MustCompile(`-m\s+["'](.+?)["']`)

var langByExt = map[string]string{
	".py":     "Python",
	".js":     "JavaScript",
	".ts":     "TypeScript",
	".jsx":    "React",
	".tsx":    "React/TypeScript",
	".go":     "Go",
	".rs":     "Rust",
	".rb":     "Ruby",
	".java":   "Java",
	".cpp":    "C++",
	".c":      "C",
	".swift":  "Swift",
	".kt":     "Kotlin",
	".sql":    "SQL",
	".html":   "HTML",
	".css":    "CSS",
	".scss":   "SCSS",
	".vue":    "Vue",
	".svelte": "Svelte",
	".md":     "Markdown",
	".json":   "JSON",
	".yaml":   "YAML",
	".yml":    "YAML",
	".sh":     "Bash",
}

type scanState struct {
	seen          map[string]bool
	createdOrder  []string
	movedToMod    map[string]bool
	modifiedOrder []string

	langs map[string]bool

	pendingTests map[string]int
	testPassed   bool
	testFailed   bool

	failedTargets map[string]bool
	fixCounted    map[string]bool
	errorsFixed   int

	commits        []string
	totalToolCalls int

	haveFirst   bool
	firstTSNano int64
	lastTSNano  int64
}

// Summarize scans the events once and aggregates the session's facts. All
// file names in the result have passed through the sanitizer; callers only
// fill in SessionID and ProjectName afterwards. Events missing the field a
// rule needs are skipped for that rule only.
func Summarize(evs []events.Event) models.SessionSummary {
	st := &scanState{
		seen:          map[string]bool{},
		movedToMod:    map[string]bool{},
		langs:         map[string]bool{},
		pendingTests:  map[string]int{},
		failedTargets: map[string]bool{},
		fixCounted:    map[string]bool{},
	}

	for _, ev := range evs {
		st.observeTimestamp(ev)
		switch ev.Kind {
		case events.KindToolCall:
			st.totalToolCalls++
			st.observeToolCall(ev)
		case events.KindToolResult:
			st.observeToolResult(ev)
		}
	}

	return st.summary()
}

func (st *scanState) observeTimestamp(ev events.Event) {
	if ev.Timestamp.IsZero() {
		return
	}
	ns := ev.Timestamp.UnixNano()
	if !st.haveFirst {
		st.haveFirst = true
		st.firstTSNano = ns
	}
	st.lastTSNano = ns
}

func (st *scanState) observeToolCall(ev events.Event) {
	if writeTools[ev.ToolName] && ev.Payload.FilePath != "" {
		st.observeWrite(ev.Payload.FilePath)
		return
	}
	if subject := commitSubject(ev); subject != "" {
		st.commits = append(st.commits, subject)
	}
	if ev.ToolName == "Bash" && isTestCommand(ev.Payload.Command) {
		st.pendingTests[ev.ResultTarget()]++
	}
}

// observeWrite applies the first-seen rule: the first write to a path counts
// as a creation; any later write moves the path into the modified set, so
// the two sets never overlap.
func (st *scanState) observeWrite(rawPath string) {
	norm := filepath.Clean(strings.ReplaceAll(rawPath, "\\", "/"))
	if !st.seen[norm] {
		st.seen[norm] = true
		st.createdOrder = append(st.createdOrder, norm)
	} else if !st.movedToMod[norm] {
		st.movedToMod[norm] = true
		st.modifiedOrder = append(st.modifiedOrder, norm)
	}
	if lang, ok := langByExt[strings.ToLower(filepath.Ext(norm))]; ok {
		st.langs[lang] = true
	}
}

func (st *scanState) observeToolResult(ev events.Event) {
	target := ev.ResultTarget()
	if target == "" || ev.Payload.ExitCode == nil {
		return
	}
	failed := *ev.Payload.ExitCode != 0

	if st.pendingTests[target] > 0 {
		st.pendingTests[target]--
		if failed {
			st.testFailed = true
		} else {
			st.testPassed = true
		}
	}

	if failed {
		if !st.fixCounted[target] {
			st.failedTargets[target] = true
		}
	} else if st.failedTargets[target] && !st.fixCounted[target] {
		st.fixCounted[target] = true
		delete(st.failedTargets, target)
		st.errorsFixed++
	}
}

func (st *scanState) summary() models.SessionSummary {
	sum := models.SessionSummary{
		FilesCreated:   displayNames(st.createdOrder, st.movedToMod),
		FilesModified:  displayNames(st.modifiedOrder, nil),
		GitCommits:     st.commits,
		LanguagesUsed:  sortedKeys(st.langs),
		TestsStatus:    testsStatus(st.testPassed, st.testFailed),
		ErrorsFixed:    st.errorsFixed,
		TotalToolCalls: st.totalToolCalls,
	}
	if st.haveFirst {
		sum.DurationMinutes = int((st.lastTSNano - st.firstTSNano) / int64(60*1e9))
	}
	return sum
}

// displayNames sanitizes paths to basenames, preserving insertion order and
// suppressing duplicates. Paths in the exclude set were re-written and have
// moved on to the modified list.
func displayNames(paths []string, exclude map[string]bool) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, p := range paths {
		if exclude[p] {
			continue
		}
		name := sanitize.DisplayPath(p)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func testsStatus(passed, failed bool) models.TestsStatus {
	switch {
	case passed && failed:
		return models.TestsMixed
	case passed:
		return models.TestsPassed
	case failed:
		return models.TestsFailed
	default:
		return models.TestsNotRun
	}
}

// commitSubject recognizes a commit either from a dedicated tool carrying a
// subject field or from a Bash `git commit -m "..."` command.
func commitSubject(ev events.Event) string {
	if ev.Payload.Subject != "" && strings.Contains(strings.ToLower(ev.ToolName), "commit") {
		return ev.Payload.Subject
	}
	if ev.ToolName != "Bash" || !strings.Contains(ev.Payload.Command, "git commit") {
		return ""
	}
	if m := commitSubjectRe.FindStringSubmatch(ev.Payload.Command); m != nil {
		return m[1]
	}
	return ""
}

func isTestCommand(command string) bool {
	for _, marker := range testMarkers {
		if strings.Contains(command, marker) {
			return true
		}
	}
	return false
}
