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

	"github.com/vovakirdan/neon-pong/internal/storage"
)

// maxSessions is how many sessions the stats screen loads.
const maxSessions = 100

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model listing recorded sessions.
type StatsModel struct {
	store    *storage.Store
	sessions []storage.Session
	longest  int
	err      error
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model and loads the sessions.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newSessionsTable(height-8, true)
	m.load()
	return m
}

// sessionColumns are the columns of the sessions table.
func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 14},
		{Title: "Where", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Points", Width: 6},
		{Title: "Hits", Width: 6},
		{Title: "Best rally", Width: 10},
	}
}

func newSessionsTable(height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(sessionColumns()),
		table.WithFocused(focused),
		table.WithHeight(max(height, 3)),
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

// sessionRows converts sessions to table rows.
func sessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			s.CreatedAt.Local().Format("Jan 02 15:04"),
			s.Frontend,
			s.Player,
			s.Duration.Round(time.Second).String(),
			fmt.Sprintf("%d", s.Points),
			fmt.Sprintf("%d", s.PaddleHits),
			fmt.Sprintf("%d", s.LongestRally),
		}
	}
	return rows
}

// load reads sessions from the store into the table.
func (m *StatsModel) load() {
	m.sessions, m.longest, m.err = nil, 0, nil
	if m.store != nil {
		m.sessions, m.err = m.store.RecentSessions(maxSessions)
		if m.err == nil {
			m.longest, m.err = m.store.LongestRally()
		}
	}
	m.table.SetRows(sessionRows(m.sessions))
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statsBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statsDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(statsTitleStyle.Render(centerText("NEON PONG - SESSIONS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(statsBoxStyle.Render(m.content()))
	b.WriteString("\n")
	b.WriteString(statsDimStyle.Render(fmt.Sprintf("Longest rally ever: %d", m.longest)))
	b.WriteString("\n")
	b.WriteString(statsDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m StatsModel) content() string {
	switch {
	case m.err != nil:
		return "Could not read sessions: " + m.err.Error()
	case len(m.sessions) == 0:
		return statsDimStyle.Italic(true).Render("No sessions recorded yet.\nPlay a game and quit with q to record one.")
	}
	return m.table.View()
}

// RenderSessions renders sessions as a static table for non-interactive
// output.
func RenderSessions(sessions []storage.Session, longest int) string {
	t := newSessionsTable(len(sessions)+4, false)
	t.SetRows(sessionRows(sessions))

	var b strings.Builder
	b.WriteString(t.View())
	b.WriteString(fmt.Sprintf("\n\n%d sessions, longest rally %d\n", len(sessions), longest))
	return b.String()
}

// RunStats runs the interactive stats screen.
func RunStats(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewStatsModel(store, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
