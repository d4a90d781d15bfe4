// Package window runs the game in a desktop window using Ebiten.
// Ebiten calls Update at a fixed tick rate and Draw once per display frame,
// which maps directly onto the simulate-then-render loop.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/engine"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

// paddleKeys are the keyboard keys that move the paddle.
var paddleKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyW,
	ebiten.KeyArrowDown,
	ebiten.KeyS,
}

// Options configure the window front-end.
type Options struct {
	Store  *storage.Store // May be nil
	Logger *log.Logger    // May be nil
	Scale  float64        // Window size relative to the logical surface; 0 means 1
}

// Game adapts a pong.Game to ebiten.Game.
type Game struct {
	game     *pong.Game
	loop     *engine.Loop
	surface  *Surface
	cfg      config.PongConfig
	opts     Options
	logger   *log.Logger
	player   int
	computer int
	cursorY  int
	paused   bool
	started  time.Time
}

// New creates a window game.
func New(cfg config.PongConfig, rc core.RuntimeConfig, opts Options) *Game {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:    pong.New(cfg),
		surface: NewSurface(cfg.Surface.Width, cfg.Surface.Height),
		cfg:     cfg,
		opts:    opts,
		logger:  logger,
		cursorY: -1,
		started: time.Now(),
	}
	g.game.SetLogger(logger)
	g.game.Reset(rc)
	g.game.SetScoreSink(pong.ScoreSinkFunc(func(player, computer int) {
		g.player, g.computer = player, computer
	}))

	g.loop = engine.New(g.game, rc.TickRate)
	if rc.Debug {
		g.loop.OnStep(func(frame uint64) {
			if err := g.game.Validate(); err != nil {
				logger.Warn("state check failed", "frame", frame, "error", err)
			}
		})
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	for _, ek := range paddleKeys {
		k := core.KeyFromName(ek.String())
		if inpututil.IsKeyJustPressed(ek) {
			g.game.KeyDown(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			g.game.KeyUp(k)
		}
	}

	// Pointer input applies only when the cursor moves.
	_, y := ebiten.CursorPosition()
	if y != g.cursorY {
		if g.cursorY >= 0 {
			g.game.PointerMove(float64(y))
		}
		g.cursorY = y
	}

	g.loop.Step()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.loop.Draw(g.surface)

	w := int(g.cfg.Surface.Width)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", g.player), w/4, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", g.computer), 3*w/4, 20)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", w/2-78, int(g.cfg.Surface.Height)/2)
	}
}

// Layout implements ebiten.Game. The screen always has the logical
// surface size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Surface.Width), int(g.cfg.Surface.Height)
}

// Stats returns the rally statistics so far.
func (g *Game) Stats() pong.Stats {
	return g.game.Stats()
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.PongConfig, rc core.RuntimeConfig, opts Options) error {
	g := New(cfg, rc, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.Surface.Width*scale), int(cfg.Surface.Height*scale))
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.loop.TickRate())

	err := ebiten.RunGame(g)
	g.saveSession()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// saveSession records the session's rally statistics.
func (g *Game) saveSession() {
	st := g.game.Stats()
	if g.opts.Store == nil || st.Frames == 0 {
		return
	}
	_, err := g.opts.Store.SaveSession(storage.Session{
		Frontend:     "window",
		Frames:       st.Frames,
		PaddleHits:   st.PaddleHits,
		LongestRally: st.LongestRally,
		Points:       st.Points,
		Duration:     time.Since(g.started),
	})
	if err != nil {
		g.logger.Error("could not save session", "error", err)
	}
}
