package canvas

import "github.com/vovakirdan/neon-pong/internal/core"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpGlow
	OpLine
)

// String returns a short name for the operation.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpGlow:
		return "glow"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Box    core.Box // clear, rect
	X, Y   float64  // circle/glow center, line start
	X1, Y1 float64  // line end
	Radius float64
	Blur   float64
	Width  float64
	Dash   float64
	Gap    float64
	Color  core.Color
}

// Recorder is a Surface that records every call instead of drawing.
// It is used to inspect render passes without pixels.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Size implements Surface.
func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// ClearRect implements Surface.
func (r *Recorder) ClearRect(b core.Box) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Box: b})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(b core.Box, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Box: b, Color: c})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

// DashedLine implements Surface.
func (r *Recorder) DashedLine(x0, y0, x1, y1, width, dash, gap float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Dash: dash, Gap: gap, Color: c})
}

// FillCircleGlow implements Glower.
func (r *Recorder) FillCircleGlow(cx, cy, radius, blur float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, X: cx, Y: cy, Radius: radius, Blur: blur, Color: c})
}

// Kinds returns the sequence of recorded operation kinds.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
