// Package tui is the interactive preview for generated posts: one tab per
// platform format, a viewport for the active candidate, and a spinner while
// the pipeline runs.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/strrl/build-in-public/pkg/models"
)

type formatTab int

const (
	tabShort formatTab = iota
	tabThread
	tabMedium
	tabLong
	tabHashtags
	tabCount
)

func (t formatTab) title() string {
	switch t {
	case tabShort:
		return "Short"
	case tabThread:
		return "Thread"
	case tabMedium:
		return "Medium"
	case tabLong:
		return "Long"
	default:
		return "Hashtags"
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	overStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	load      Loader
	requestID string
	cancel    context.CancelFunc

	spinner *Spinner
	loading bool
	err     error

	result    Result
	tab       formatTab
	candidate int
	viewport  viewport.Model
	ready     bool
	width     int
	height    int
}

func newModel(load Loader) model {
	return model{
		load:    load,
		spinner: NewSpinner(),
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	requestID := uuid.New().String()
	// The cancel func and id live on the model so a quit during loading
	// stops the pipeline and stale results are dropped.
	return tea.Batch(
		tea.EnterAltScreen,
		func() tea.Msg { return startedMsg{requestID: requestID, cancel: cancel} },
		generateCmd(ctx, requestID, m.load),
		tickCmd(),
	)
}

type startedMsg struct {
	requestID string
	cancel    context.CancelFunc
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		m.requestID = msg.requestID
		m.cancel = msg.cancel
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.refreshContent()
		return m, nil

	case TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner.Next()
		return m, tickCmd()

	case GenerateCompletedMsg:
		if msg.RequestID != m.requestID {
			return m, nil
		}
		m.loading = false
		if msg.Error != nil {
			m.err = msg.Error
			return m, nil
		}
		m.result = msg.Result
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "tab", "l", "right":
		if !m.loading && m.err == nil {
			m.tab = (m.tab + 1) % tabCount
			m.candidate = 0
			m.refreshContent()
		}
	case "shift+tab", "h", "left":
		if !m.loading && m.err == nil {
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.candidate = 0
			m.refreshContent()
		}
	case "n":
		if n := len(m.candidates()); n > 0 {
			m.candidate = (m.candidate + 1) % n
			m.refreshContent()
		}
	case "p":
		if n := len(m.candidates()); n > 0 {
			m.candidate = (m.candidate + n - 1) % n
			m.refreshContent()
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// candidates returns the post list behind the active tab. The thread and
// hashtag tabs render as one block, so they expose a single candidate.
func (m model) candidates() []string {
	switch m.tab {
	case tabShort:
		return m.result.Posts.Short
	case tabThread:
		if len(m.result.Posts.Thread) == 0 {
			return nil
		}
		return []string{renderThread(m.result.Posts.Thread)}
	case tabMedium:
		return m.result.Posts.Medium
	case tabLong:
		return m.result.Posts.Long
	default:
		if len(m.result.Posts.Hashtags) == 0 {
			return nil
		}
		return []string{strings.Join(m.result.Posts.Hashtags, " ")}
	}
}

func renderThread(segments []string) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d/%d (%d chars)\n%s\n\n", i+1, len(segments), models.CharCount(seg), seg)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *model) refreshContent() {
	if !m.ready || m.loading || m.err != nil {
		return
	}
	cands := m.candidates()
	if len(cands) == 0 {
		m.viewport.SetContent("(nothing to show)")
		return
	}
	if m.candidate >= len(cands) {
		m.candidate = 0
	}
	m.viewport.SetContent(cands[m.candidate])
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.loading {
		return LoadingOverlay(m.width, m.height, m.spinner, "Generating posts...")
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	var tabs []string
	for t := formatTab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.title()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.title()))
		}
	}

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render(fmt.Sprintf("build-in-public · %s", m.result.Summary.ProjectName)),
		strings.Join(tabs, " | "))

	meta := ""
	if cands := m.candidates(); len(cands) > 0 {
		count := models.CharCount(cands[m.candidate])
		meta = metaStyle.Render(fmt.Sprintf("candidate %d/%d · %d chars", m.candidate+1, len(cands), count))
		if m.tab == tabShort && count > models.ShortLimitBlueSky {
			meta += " " + overStyle.Render("OVER LIMIT")
		}
	}

	help := helpStyle.Render("tab: format · n/p: candidate · j/k: scroll · q: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, meta, m.viewport.View(), help)
}

// Preview runs the interactive preview over a pipeline run.
func Preview(load Loader) error {
	p := tea.NewProgram(newModel(load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
