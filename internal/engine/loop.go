// Package engine drives a game with a fixed-timestep simulate-then-render
// loop. Front-ends that own their own clock (Bubble Tea ticks, Ebiten's
// Update/Draw) call Frame or Step and Draw directly; headless runs use
// RunFrames or Run.
package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/neon-pong/internal/canvas"
)

// Game is what the loop drives.
type Game interface {
	Step()
	Render(dst canvas.Surface)
}

// StepHook is called after every simulation step with the number of
// frames stepped so far.
type StepHook func(frame uint64)

// Loop is a fixed-timestep scheduler for one game.
// It is not safe for concurrent use.
type Loop struct {
	game     Game
	tickRate int
	frames   uint64
	hooks    []StepHook
}

// New creates a loop running game at tickRate frames per second.
// A non-positive tick rate falls back to 60.
func New(game Game, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{game: game, tickRate: tickRate}
}

// OnStep registers a hook run after every step.
func (l *Loop) OnStep(h StepHook) {
	l.hooks = append(l.hooks, h)
}

// TickRate returns the frames per second the loop runs at.
func (l *Loop) TickRate() int {
	return l.tickRate
}

// Interval returns the wall-clock duration of one frame.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Frames returns the number of steps taken.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step advances the simulation by one frame without drawing.
func (l *Loop) Step() {
	l.game.Step()
	l.frames++
	for _, h := range l.hooks {
		h(l.frames)
	}
}

// Draw renders the current state. A nil surface is a no-op.
func (l *Loop) Draw(dst canvas.Surface) {
	if dst == nil {
		return
	}
	l.game.Render(dst)
}

// Frame runs one step followed by one draw.
func (l *Loop) Frame(dst canvas.Surface) {
	l.Step()
	l.Draw(dst)
}

// RunFrames runs n frames as fast as possible.
// Only the final frame is drawn.
func (l *Loop) RunFrames(n int, dst canvas.Surface) {
	for i := 0; i < n; i++ {
		l.Step()
	}
	l.Draw(dst)
}

// Run steps and draws once per tick until ctx is done.
func (l *Loop) Run(ctx context.Context, dst canvas.Surface) {
	ticker := time.NewTicker(l.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Frame(dst)
		}
	}
}
