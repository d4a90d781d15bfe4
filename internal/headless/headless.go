// Package headless runs the game without a display, for soak runs,
// reproducing serves by seed and rendering single frames to files.
package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/engine"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
)

// Options configure a headless run.
type Options struct {
	// Frames to simulate as fast as possible. Zero runs in real time at
	// the runtime tick rate until the context is done.
	Frames int

	// Raster draws the final frame to an offscreen image.
	Raster bool
}

// Result is what a run leaves behind.
type Result struct {
	Game    *pong.Game
	Raster  *canvas.Raster // nil unless requested
	Elapsed time.Duration
}

// ScoreLogger is a score sink that logs every score change.
type ScoreLogger struct {
	logger           *log.Logger
	frame            func() uint64
	player, computer int
}

// NewScoreLogger creates a sink that tags entries with frame().
func NewScoreLogger(logger *log.Logger, frame func() uint64) *ScoreLogger {
	return &ScoreLogger{logger: logger, frame: frame}
}

// SetScores implements pong.ScoreSink.
func (s *ScoreLogger) SetScores(player, computer int) {
	if player == s.player && computer == s.computer {
		return
	}
	s.player, s.computer = player, computer
	s.logger.Info("score", "frame", s.frame(), "player", player, "computer", computer)
}

// Run simulates a game. Nobody moves the player paddle.
func Run(ctx context.Context, cfg config.PongConfig, rc core.RuntimeConfig, logger *log.Logger, opts Options) Result {
	game := pong.New(cfg)
	game.SetLogger(logger)
	game.Reset(rc)

	loop := engine.New(game, rc.TickRate)
	game.SetScoreSink(NewScoreLogger(logger, loop.Frames))
	if rc.Debug {
		loop.OnStep(func(frame uint64) {
			if err := game.Validate(); err != nil {
				logger.Warn("state check failed", "frame", frame, "error", err)
			}
		})
	}

	var raster *canvas.Raster
	var dst canvas.Surface
	if opts.Raster {
		raster = canvas.NewRaster(cfg.Surface.Width, cfg.Surface.Height, 1)
		dst = raster
	}

	start := time.Now()
	if opts.Frames > 0 {
		loop.RunFrames(opts.Frames, dst)
	} else {
		logger.Info("running until interrupted", "fps", loop.TickRate())
		loop.Run(ctx, dst)
	}

	if raster != nil {
		s := game.State()
		raster.SetScores(s.PlayerScore, s.ComputerScore)
	}
	return Result{Game: game, Raster: raster, Elapsed: time.Since(start)}
}

// TextFrame renders the game at cols x rows cells and maps each cell to
// a character by brightness.
func TextFrame(game *pong.Game, cols, rows int) string {
	cfg := game.Config()
	cells := canvas.NewCells(cfg.Surface.Width, cfg.Surface.Height, cols, rows)
	game.Render(cells)
	return asciiFrame(cells)
}

func asciiFrame(cells *canvas.Cells) string {
	const ramp = " .:-=+*#%@"
	out := make([]byte, 0, (cells.Cols()+1)*cells.Rows())
	for y := 0; y < cells.Rows(); y++ {
		if y > 0 {
			out = append(out, '\n')
		}
		for x := 0; x < cells.Cols(); x++ {
			top, bottom := cells.Pixel(x, 2*y), cells.Pixel(x, 2*y+1)
			lum := (luma(top) + luma(bottom)) / 2
			out = append(out, ramp[lum*(len(ramp)-1)/255])
		}
	}
	return string(out)
}

// luma is the integer Rec. 601 brightness of a colour.
func luma(c core.Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
