package engine

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/neon-pong/internal/canvas"
	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
)

// countingGame records the order of calls.
type countingGame struct {
	calls []string
}

func (g *countingGame) Step() { g.calls = append(g.calls, "step") }
func (g *countingGame) Render(canvas.Surface) { g.calls = append(g.calls, "render") }

func TestFrameStepsThenRenders(t *testing.T) {
	g := &countingGame{}
	l := New(g, 60)

	l.Frame(canvas.NewRecorder(10, 10))
	l.Frame(canvas.NewRecorder(10, 10))

	want := []string{"step", "render", "step", "render"}
	if len(g.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", g.calls, want)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, g.calls[i], want[i])
		}
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", l.Frames())
	}
}

func TestDrawNilSurface(t *testing.T) {
	g := &countingGame{}
	l := New(g, 60)
	l.Frame(nil)

	if len(g.calls) != 1 || g.calls[0] != "step" {
		t.Errorf("calls = %v, want only a step", g.calls)
	}
}

func TestRunFramesDrawsOnce(t *testing.T) {
	g := &countingGame{}
	l := New(g, 60)
	l.RunFrames(5, canvas.NewRecorder(10, 10))

	renders := 0
	for _, c := range g.calls {
		if c == "render" {
			renders++
		}
	}
	if l.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", l.Frames())
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1", renders)
	}
}

func TestOnStepHook(t *testing.T) {
	l := New(&countingGame{}, 60)
	var seen []uint64
	l.OnStep(func(frame uint64) { seen = append(seen, frame) })
	l.RunFrames(3, nil)

	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("hook frames = %v, want [1 2 3]", seen)
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		rate         int
		wantRate     int
		wantInterval time.Duration
	}{
		{60, 60, time.Second / 60},
		{30, 30, time.Second / 30},
		{0, 60, time.Second / 60},
		{-5, 60, time.Second / 60},
	}

	for _, tt := range tests {
		l := New(&countingGame{}, tt.rate)
		if l.TickRate() != tt.wantRate {
			t.Errorf("New(%d).TickRate() = %d, want %d", tt.rate, l.TickRate(), tt.wantRate)
		}
		if l.Interval() != tt.wantInterval {
			t.Errorf("New(%d).Interval() = %v, want %v", tt.rate, l.Interval(), tt.wantInterval)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := &countingGame{}
	l := New(g, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		l.Run(ctx, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if l.Frames() == 0 {
		t.Error("Run stepped no frames")
	}
}

func TestLoopDrivesPong(t *testing.T) {
	cfg := config.DefaultPongConfig()
	g := pong.New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 7})

	l := New(g, 60)
	l.OnStep(func(uint64) {
		if err := g.Validate(); err != nil {
			t.Fatalf("invalid state: %v", err)
		}
	})

	cells := canvas.NewCells(cfg.Surface.Width, cfg.Surface.Height, 80, 30)
	for i := 0; i < 600; i++ {
		l.Frame(cells)
	}
	if got := g.Stats().Frames; got != 600 {
		t.Errorf("game frames = %d, want 600", got)
	}
}
