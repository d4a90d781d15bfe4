package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/engine"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

// Rows taken by the score header and the help footer.
const chromeRows = 2

// Options configure a game model beyond the runtime config.
type Options struct {
	Store         *storage.Store     // May be nil; sessions are then not saved
	Logger        *log.Logger        // May be nil
	Renderer      *lipgloss.Renderer // Nil uses the default renderer
	Frontend      string             // Recorded with the session, e.g. "tui" or "ssh"
	Player        string
	ScreenshotDir string // Empty uses ~/.neonpong/screenshots
}

// scoreLine is the game's score sink; the header reads it.
type scoreLine struct {
	player, computer int
}

func (s *scoreLine) SetScores(player, computer int) {
	s.player, s.computer = player, computer
}

// Model is the Bubble Tea model for playing Pong in a terminal.
type Model struct {
	game     *pong.Game
	loop     *engine.Loop
	cells    *canvas.Cells
	screen   *core.Screen
	renderer *ScreenRenderer
	styles   chromeStyles
	scores   *scoreLine
	hold     *keyHold
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	started  time.Time
	status   string
	paused   bool
	quitting bool
	saved    bool
}

// NewModel creates a new model running a fresh game.
func NewModel(cfg config.PongConfig, rc core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Frontend == "" {
		opts.Frontend = "tui"
	}

	game := pong.New(cfg)
	game.SetLogger(logger)
	game.Reset(rc)

	scores := &scoreLine{}
	game.SetScoreSink(scores)

	loop := engine.New(game, rc.TickRate)
	if rc.Debug {
		loop.OnStep(func(frame uint64) {
			if err := game.Validate(); err != nil {
				logger.Warn("state check failed", "frame", frame, "error", err)
			}
		})
	}

	renderer := NewScreenRenderer(opts.Renderer)
	cols, rows := playfieldSize(rc.ScreenW, rc.ScreenH)
	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:     game,
		loop:     loop,
		cells:    canvas.NewCells(cfg.Surface.Width, cfg.Surface.Height, cols, rows),
		screen:   core.NewScreen(cols, rows),
		renderer: renderer,
		styles:   newChromeStyles(renderer.r),
		scores:   scores,
		hold:     newKeyHold(cfg.Input.KeyHoldFrames),
		keys:     DefaultKeyMap(),
		help:     h,
		config:   rc,
		opts:     opts,
		logger:   logger,
		started:  time.Now(),
	}
}

// playfieldSize returns the cell grid left for the game after the chrome.
func playfieldSize(w, h int) (int, int) {
	return max(w, 1), max(h-chromeRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.loop.TickRate()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.saveSession()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.releaseKeys()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.saveSession()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.releaseKeys()
		m.started = time.Now()
		m.saved = false
		m.paused = false
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if dir := m.keys.Direction(msg); dir != core.KeyNone {
		if released := m.hold.Press(dir); released != core.KeyNone {
			m.game.KeyUp(released)
		}
		m.game.KeyDown(dir)
	}
	return m, nil
}

// handleMouse moves the player paddle to the pointer row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	row := msg.Y - 1 // below the score header
	if row < 0 || row >= m.cells.Rows() {
		return m, nil
	}
	_, h := m.cells.Size()
	y := (float64(row) + 0.5) * h / float64(m.cells.Rows())
	m.game.PointerMove(y)
	return m, nil
}

// handleResize rescales the playfield. The game keeps its state since it
// runs on a fixed logical surface.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cols, rows := playfieldSize(msg.Width, msg.Height)
	m.cells.Resize(cols, rows)
	m.screen.Resize(cols, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		for _, k := range m.hold.Tick() {
			m.game.KeyUp(k)
		}
		m.loop.Step()
	}
	return m, tickCmd(m.loop.TickRate())
}

// releaseKeys drops all held keys.
func (m *Model) releaseKeys() {
	m.hold.Reset()
	m.game.KeyUp(core.KeyUp)
	m.game.KeyUp(core.KeyDown)
}

// saveSession records the session's rally statistics once.
func (m *Model) saveSession() {
	if m.opts.Store == nil || m.saved {
		return
	}
	m.saved = true

	st := m.game.Stats()
	if st.Frames == 0 {
		return
	}
	_, err := m.opts.Store.SaveSession(storage.Session{
		Frontend:     m.opts.Frontend,
		Player:       m.opts.Player,
		Frames:       st.Frames,
		PaddleHits:   st.PaddleHits,
		LongestRally: st.LongestRally,
		Points:       st.Points,
		Duration:     time.Since(m.started),
	})
	if err != nil {
		m.logger.Error("could not save session", "error", err)
		return
	}
	m.logger.Info("session saved", "frames", st.Frames, "longest_rally", st.LongestRally)
}

// saveScreenshot writes the current frame as a PNG at the logical
// surface resolution.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
			return
		}
		dir = filepath.Join(home, config.AppDir, "screenshots")
	}

	path, err := WriteScreenshot(m.game, dir, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// WriteScreenshot renders game into a PNG file in dir and returns its path.
func WriteScreenshot(game *pong.Game, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	cfg := game.Config()
	raster := canvas.NewRaster(cfg.Surface.Width, cfg.Surface.Height, 1)
	game.Render(raster)
	s := game.State()
	raster.SetScores(s.PlayerScore, s.ComputerScore)

	path := filepath.Join(dir, fmt.Sprintf("pong_%s.png", now.Format("20060102_150405")))
	if err := raster.WritePNGFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// chromeStyles style the header and footer lines.
type chromeStyles struct {
	header, paused, footer lipgloss.Style
}

func newChromeStyles(r *lipgloss.Renderer) chromeStyles {
	return chromeStyles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		paused: r.NewStyle().Foreground(lipgloss.Color("#FF5FD7")),
		footer: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Draw(m.cells)
	m.cells.Flush(m.screen, 0, 0)
	if m.paused {
		m.drawPauseOverlay()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.renderer.Render(m.screen),
		m.footer(),
	)
}

func (m Model) header() string {
	text := fmt.Sprintf("PLAYER %d   %d COMPUTER", m.scores.player, m.scores.computer)
	if m.paused {
		text += m.styles.paused.Render("  [paused]")
	}
	return lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, m.styles.header.Render(text))
}

func (m Model) footer() string {
	if m.status != "" {
		return m.styles.footer.Render(m.status)
	}
	return m.styles.footer.Render(m.help.View(m.keys))
}

// drawPauseOverlay draws a boxed message over the playfield.
func (m Model) drawPauseOverlay() {
	const text = "PAUSED - press p to resume"
	w, h := len(text)+4, 5
	r := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.DrawRect(r, ' ')
	m.screen.DrawBox(r)
	m.screen.DrawTextCentered(r.Y+2, text)
}

// Game returns the running game.
func (m Model) Game() *pong.Game {
	return m.game
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.PongConfig, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	// Interrupted programs skip the quit key; record the session anyway.
	if fm, ok := final.(Model); ok {
		fm.saveSession()
	}
	return nil
}
