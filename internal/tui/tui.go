// Package tui provides a Bubble Tea terminal user interface for browsing the
// site index that blog-index builds.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/blog-index/internal/config"
	"github.com/handiism/blog-index/internal/content"
	"github.com/handiism/blog-index/internal/model"
	"github.com/handiism/blog-index/internal/site"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			Underline(true)
)

// State represents the current UI state.
type State int

const (
	StateBuilding State = iota
	StateBrowsing
	StateError
)

// Tab identifies one page of the index browser.
type Tab int

const (
	TabPosts Tab = iota
	TabTags
	TabCategories
	TabAnime
	tabCount
)

var tabNames = [tabCount]string{"Posts", "Tags", "Categories", "Anime"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   site.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	tab      Tab
	spinner  spinner.Model
	progress progress.Model
	filter   textinput.Model
	settings *config.Settings
	source   content.Source
	logs     []LogEntry
	index    *site.Index
	err      error

	filtering bool
	offset    int

	// Build context
	ctx    context.Context
	cancel context.CancelFunc
	events chan site.ProgressEvent

	width  int
	height int
}

// NewModel creates a new TUI model. If source is nil, posts are read from
// settings.ContentDir.
func NewModel(settings *config.Settings, source content.Source) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 30

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateBuilding,
		spinner:  sp,
		progress: prog,
		filter:   ti,
		settings: settings,
		source:   source,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan site.ProgressEvent, 64),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.build(), m.listen())
}

// Message types
type (
	// ProgressMsg is sent for every build progress event.
	ProgressMsg struct {
		Event site.ProgressEvent
	}

	// BuildDoneMsg is sent when the index build completes.
	BuildDoneMsg struct {
		Index *site.Index
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width/3, 10), 40)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateBuilding {
				m.cancel()
			} else if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.offset = 0
			}

		case "tab", "right", "l":
			if m.state == StateBrowsing {
				m.tab = (m.tab + 1) % tabCount
				m.offset = 0
			}

		case "shift+tab", "left", "h":
			if m.state == StateBrowsing {
				m.tab = (m.tab + tabCount - 1) % tabCount
				m.offset = 0
			}

		case "down", "j":
			if m.state == StateBrowsing && m.offset < len(m.lines())-1 {
				m.offset++
			}

		case "up", "k":
			if m.state == StateBrowsing && m.offset > 0 {
				m.offset--
			}

		case "/":
			if m.state == StateBrowsing {
				m.filtering = true
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "r":
			if m.state != StateBuilding {
				// Rebuild from scratch
				m.state = StateBuilding
				m.logs = nil
				m.index = nil
				m.err = nil
				m.offset = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.events = make(chan site.ProgressEvent, 64)
				return m, tea.Batch(m.spinner.Tick, m.build(), m.listen())
			}
		}

	case spinner.TickMsg:
		if m.state == StateBuilding {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ProgressMsg:
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		cmds = append(cmds, m.listen())

	case BuildDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			if m.ctx.Err() != nil {
				m.err = fmt.Errorf("cancelled by user")
			}
		} else {
			m.state = StateBrowsing
			m.index = msg.Index
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filter.Blur()
		if msg.String() == "esc" {
			m.filter.SetValue("")
		}
		m.offset = 0
		return m, nil
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.offset = 0
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📚 Blog Index"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.settings.ContentDir))
	b.WriteString("\n\n")

	switch m.state {
	case StateBuilding:
		b.WriteString(m.viewBuilding())
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewBuilding() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Building index..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder

	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, dimStyle.Render(t.String()))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if m.tab == TabAnime && m.index.Anime != nil {
		s := m.index.Anime.Stats
		b.WriteString(boxStyle.Render(fmt.Sprintf(
			"Total: %d\nWatching: %d\nCompleted: %d", s.Total, s.Watching, s.Completed,
		)))
		b.WriteString("\n")
	}

	lines := m.lines()
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("  nothing here"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(len(lines), m.offset+m.pageSize())
	for _, line := range lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(lines) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(lines)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case site.LevelError:
			style = errorStyle
			prefix = "✗"
		case site.LevelWarning:
			style = warningStyle
			prefix = "!"
		case site.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case site.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBuilding:
		return "esc: cancel • q: quit"
	case StateBrowsing:
		if m.filtering {
			return "enter: apply • esc: clear"
		}
		return "tab: switch • /: filter • ↑/↓: scroll • r: rebuild • q: quit"
	case StateError:
		return "r: retry • q: quit"
	}
	return ""
}

func (m Model) pageSize() int {
	if m.height <= 0 {
		return 20
	}
	return max(m.height-12, 5)
}

// lines renders the rows of the active tab that match the filter.
func (m Model) lines() []string {
	if m.index == nil {
		return nil
	}
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	switch m.tab {
	case TabPosts:
		return postLines(m.index.Posts, query)
	case TabTags:
		return tagLines(m.index.Tags, query)
	case TabCategories:
		return categoryLines(m.index.CategoryTree, query)
	case TabAnime:
		if m.index.Anime == nil {
			return nil
		}
		return animeLines(m.index.Anime.AnimeList, query, m.progress)
	}
	return nil
}

func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func postLines(posts []*model.Post, query string) []string {
	var lines []string
	for _, p := range posts {
		if !matches(query, p.Title, p.Slug) {
			continue
		}
		line := infoStyle.Render(p.Published.Format("2006-01-02")) + "  " + p.Title
		if p.Draft {
			line += warningStyle.Render(" [draft]")
		}

		var nav []string
		if p.NextSlug != "" {
			nav = append(nav, "← "+p.NextTitle)
		}
		if p.PrevSlug != "" {
			nav = append(nav, "→ "+p.PrevTitle)
		}
		if len(nav) > 0 {
			line += "  " + dimStyle.Render(strings.Join(nav, " · "))
		}
		lines = append(lines, line)
	}
	return lines
}

func tagLines(tags []model.Tag, query string) []string {
	var lines []string
	for _, t := range tags {
		if matches(query, t.Name) {
			lines = append(lines, fmt.Sprintf("%s %s", t.Name, dimStyle.Render(fmt.Sprintf("(%d)", t.Count))))
		}
	}
	return lines
}

func categoryLines(tree []*model.CategoryNode, query string) []string {
	var lines []string
	for _, root := range tree {
		root.Walk(func(n *model.CategoryNode, depth int) {
			if matches(query, n.FullPath) {
				lines = append(lines, fmt.Sprintf("%s%s %s",
					strings.Repeat("  ", depth), n.Name, dimStyle.Render(fmt.Sprintf("(%d)", n.Count))))
			}
		})
	}
	return lines
}

func animeLines(list []model.Anime, query string, bar progress.Model) []string {
	var lines []string
	for _, a := range list {
		if !matches(query, a.Title, a.OriginalTitle) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			bar.ViewAs(a.Percent()),
			dimStyle.Render(fmt.Sprintf("%d/%d", a.Progress, a.TotalEpisodes)),
			a.Title,
		))
	}
	return lines
}

// build runs the site build in the background.
func (m Model) build() tea.Cmd {
	ctx, events, settings, source := m.ctx, m.events, m.settings, m.source
	return func() tea.Msg {
		defer close(events)

		manager := site.NewManager(settings, source, func(event site.ProgressEvent) {
			select {
			case events <- event:
			default: // drop events the UI cannot keep up with
			}
		})

		index, err := manager.Build(ctx)
		return BuildDoneMsg{Index: index, Err: err}
	}
}

// listen waits for the next progress event of the running build.
func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings, nil), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
