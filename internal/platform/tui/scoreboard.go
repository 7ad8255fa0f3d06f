package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/registry"
	"github.com/vovakirdan/trio-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	historyLimit       = 100
	timeLayout         = "Jan 02 15:04"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
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
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/l", "next game"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/h", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gameSummary is what the scoreboard knows about one game.
type gameSummary struct {
	info  registry.GameInfo
	best  int
	stats storage.GameStats
}

// ScoreboardModel shows the persisted best, aggregate run statistics and
// the run history of one game at a time.
type ScoreboardModel struct {
	games     []gameSummary
	cursor    int
	store     *storage.Store
	history   []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. A nil store shows
// every game with empty statistics.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, info := range registry.List() {
		m.games = append(m.games, gameSummary{info: info, stats: storage.GameStats{GameID: info.ID}})
	}
	m.loadSummaries()
	m.table = m.newTable()
	m.loadHistory()
	return m
}

// loadSummaries reads the best score and run statistics of every game.
// Unreadable values stay zero.
func (m *ScoreboardModel) loadSummaries() {
	if m.store == nil {
		return
	}
	all, err := m.store.GetAllGamesStats()
	if err != nil {
		all = nil
	}
	for i := range m.games {
		g := &m.games[i]
		g.best = core.ReadBestOrZero(m.store, g.info.ID)
		if s, ok := all[g.info.ID]; ok {
			g.stats = *s
		}
	}
}

// selected returns the game under the cursor, or nil without games.
func (m *ScoreboardModel) selected() *gameSummary {
	if len(m.games) == 0 {
		return nil
	}
	return &m.games[m.cursor]
}

// cycle moves the cursor by step, wrapping at both ends, and reloads
// the selected game's history and statistics.
func (m *ScoreboardModel) cycle(step int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+step)%n + n) % n
	m.refreshSelected()
	m.loadHistory()
}

// refreshSelected re-reads the selected game so runs finished in other
// sessions show up.
func (m *ScoreboardModel) refreshSelected() {
	g := m.selected()
	if g == nil || m.store == nil {
		return
	}
	g.best = core.ReadBestOrZero(m.store, g.info.ID)
	if s, err := m.store.GetGameStats(g.info.ID); err == nil {
		g.stats = *s
	}
}

func (m *ScoreboardModel) newTable() table.Model {
	// Room left beside the sidebar, less borders and padding
	avail := m.width - 4
	if m.width >= minWidthForSidebar {
		avail -= sidebarWidth + 4
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Played", Width: core.Clamp(avail-18, 12, 20)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
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

// loadHistory fills the table with the selected game's best runs.
func (m *ScoreboardModel) loadHistory() {
	m.history = nil
	if g := m.selected(); g != nil && m.store != nil {
		if entries, err := m.store.TopScores(g.info.ID, historyLimit); err == nil {
			m.history = entries
		}
	}

	rows := make([]table.Row, len(m.history))
	for i, e := range m.history {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format(timeLayout),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.loadHistory()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	title := "HIGH SCORES"
	if g := m.selected(); g != nil {
		title += " - " + g.info.Title
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.summaryLine(), m.width)))
	b.WriteString("\n\n")

	if m.width >= minWidthForSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", m.historyView()))
	} else {
		if g := m.selected(); g != nil {
			b.WriteString(centerText(fmt.Sprintf("< %s >", g.info.Title), m.width))
			b.WriteString("\n\n")
		}
		b.WriteString(m.historyView())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summaryLine describes the selected game's best and run statistics.
func (m ScoreboardModel) summaryLine() string {
	g := m.selected()
	if g == nil {
		return "No games registered."
	}
	if g.stats.GamesCount == 0 {
		return fmt.Sprintf("Best %d  |  no runs recorded", g.best)
	}
	return fmt.Sprintf("Best %d  |  Runs %d  |  Avg %.1f  |  Last %s",
		g.best, g.stats.GamesCount, g.stats.AvgScore, g.stats.LastPlayed.Format(timeLayout))
}

// sidebar lists the games with their best scores.
func (m ScoreboardModel) sidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	nameW := sidebarWidth - 10
	var sb strings.Builder
	for i, g := range m.games {
		name := g.info.Title
		if len(name) > nameW {
			name = name[:nameW-1] + "."
		}
		line := fmt.Sprintf("  %-*s %5d", nameW, name, g.best)
		if i == m.cursor {
			line = active.Render("> " + line[2:])
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return style.Render(strings.TrimSuffix(sb.String(), "\n"))
}

// historyView renders the run table or a hint when nothing was recorded.
func (m ScoreboardModel) historyView() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.history) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return style.Render(empty.Render("No runs recorded yet."))
	}
	return style.Render(m.table.View())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
