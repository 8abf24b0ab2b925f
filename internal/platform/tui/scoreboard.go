package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxScores          = 100 // Max runs to load
)

// ScoreView selects which runs the scoreboard lists.
type ScoreView int

const (
	ViewTop ScoreView = iota
	ViewRecent
)

func (v ScoreView) String() string {
	if v == ViewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store    *storage.Store
	view     ScoreView
	scores   []storage.ScoreEntry
	stats    *storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	now      func() time.Time
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		now:    time.Now,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// whenWidth sizes the "When" column: it takes the spare table width, between
// the minimum and what humanized times need.
func (m ScoreboardModel) whenWidth() int {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3
	}
	return core.Clamp(tableWidth-30, 16, 24)
}

// createTable creates a new table with columns sized for the screen.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "When", Width: m.whenWidth()},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current view and the aggregate stats from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.view == ViewRecent {
			m.scores, m.err = m.store.RecentScores(maxScores)
		} else {
			m.scores, m.err = m.store.TopScores(maxScores)
		}
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	now := m.now()
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rank := fmt.Sprintf("#%d", i+1)
		if m.view == ViewRecent {
			rank = fmt.Sprintf("%d", s.ID)
		}
		rows[i] = table.Row{
			rank,
			humanize.Comma(int64(s.Score)),
			formatDuration(s.Duration),
			humanize.RelTime(s.CreatedAt, now, "ago", "from now"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a run length as MM:SS.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SNAKE - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregate stats box.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	st := m.stats
	if st == nil {
		st = &storage.Stats{}
	}
	lastPlayed := "never"
	if !st.LastPlayed.IsZero() {
		lastPlayed = humanize.RelTime(st.LastPlayed, m.now(), "ago", "from now")
	}
	fmt.Fprintf(&sb, "Games:  %s\n", humanize.Comma(int64(st.GamesCount)))
	fmt.Fprintf(&sb, "Best:   %s\n", humanize.Comma(int64(st.HighScore)))
	fmt.Fprintf(&sb, "Avg:    %s\n", humanize.CommafWithDigits(st.AvgScore, 1))
	fmt.Fprintf(&sb, "Total:  %s\n", humanize.Comma(st.TotalScore))
	fmt.Fprintf(&sb, "Played: %s\n", formatDuration(st.PlayTime))
	fmt.Fprintf(&sb, "Last:   %s", lastPlayed)

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load scores:\n" + m.err.Error())
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Scores returns the runs currently listed.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
