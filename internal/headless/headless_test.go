package headless

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

func TestRunFrames(t *testing.T) {
	cfg := config.DefaultPongConfig()
	rc := core.RuntimeConfig{TickRate: 60, Seed: 1, Debug: true}

	var buf bytes.Buffer
	res := Run(context.Background(), cfg, rc, log.New(&buf), Options{Frames: 1200, Raster: true})

	if got := res.Game.Stats().Frames; got != 1200 {
		t.Errorf("Frames = %d, want 1200", got)
	}
	if res.Raster == nil {
		t.Fatal("raster requested but not created")
	}
	if err := res.Game.Validate(); err != nil {
		t.Errorf("final state invalid: %v", err)
	}
	if strings.Contains(buf.String(), "state check failed") {
		t.Errorf("debug checks reported violations:\n%s", buf.String())
	}
}

func TestRunWithoutRaster(t *testing.T) {
	res := Run(context.Background(), config.DefaultPongConfig(), core.RuntimeConfig{Seed: 3}, log.New(io.Discard), Options{Frames: 10})
	if res.Raster != nil {
		t.Error("raster created without being requested")
	}
}

func TestRunRealTimeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res := Run(ctx, config.DefaultPongConfig(), core.RuntimeConfig{TickRate: 200, Seed: 3}, log.New(io.Discard), Options{})
	if res.Game.Stats().Frames == 0 {
		t.Error("real-time run stepped no frames")
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := config.DefaultPongConfig()
	rc := core.RuntimeConfig{TickRate: 60, Seed: 99}
	opts := Options{Frames: 3000}

	a := Run(context.Background(), cfg, rc, log.New(io.Discard), opts).Game.State()
	b := Run(context.Background(), cfg, rc, log.New(io.Discard), opts).Game.State()

	if a.PlayerScore != b.PlayerScore || a.ComputerScore != b.ComputerScore || a.BallX != b.BallX {
		t.Errorf("runs with the same seed differ: %d-%d x=%g vs %d-%d x=%g",
			a.PlayerScore, a.ComputerScore, a.BallX, b.PlayerScore, b.ComputerScore, b.BallX)
	}
}

func TestScoreLoggerOnlyLogsChanges(t *testing.T) {
	var buf bytes.Buffer
	sl := NewScoreLogger(log.New(&buf), func() uint64 { return 7 })

	sl.SetScores(0, 0)
	sl.SetScores(0, 1)
	sl.SetScores(0, 1)
	sl.SetScores(1, 1)

	if n := strings.Count(buf.String(), "score"); n != 2 {
		t.Errorf("logged %d score lines, want 2:\n%s", n, buf.String())
	}
}

func TestAsciiFrame(t *testing.T) {
	cells := canvas.NewCells(800, 600, 40, 10)
	cells.FillRect(core.NewBox(0, 0, 800, 600), core.ColorWhite)

	lines := strings.Split(asciiFrame(cells), "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}
	if lines[0] != strings.Repeat("@", 40) {
		t.Errorf("white frame row = %q, want all @", lines[0])
	}

	cells.ClearRect(core.NewBox(0, 0, 800, 600))
	if got := strings.Split(asciiFrame(cells), "\n")[0]; got != strings.Repeat(" ", 40) {
		t.Errorf("black frame row = %q, want blank", got)
	}
}

func TestTextFrame(t *testing.T) {
	res := Run(context.Background(), config.DefaultPongConfig(), core.RuntimeConfig{Seed: 5}, log.New(io.Discard), Options{Frames: 1})
	out := TextFrame(res.Game, 80, 30)

	lines := strings.Split(out, "\n")
	if len(lines) != 30 || len(lines[0]) != 80 {
		t.Fatalf("frame is %d lines of %d, want 30 of 80", len(lines), len(lines[0]))
	}
	// Paddles are white and span several rows at the edges.
	if !strings.Contains(out, "@") {
		t.Error("frame shows no paddles")
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		c    core.Color
		want int
	}{
		{core.ColorBlack, 0},
		{core.ColorWhite, 255},
		{core.RGB(255, 0, 0), 76},
	}
	for _, tt := range tests {
		if got := luma(tt.c); got != tt.want {
			t.Errorf("luma(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
