package pong

// TrailSample is one remembered ball position and colour.
type TrailSample struct {
	X, Y float64
	Hue  float64
}

// Trail is a fixed-capacity FIFO of recent ball samples.
// Pushing onto a full trail evicts the oldest sample.
type Trail struct {
	buf   []TrailSample
	start int
	n     int
}

// NewTrail creates an empty trail holding at most capacity samples.
func NewTrail(capacity int) Trail {
	return Trail{buf: make([]TrailSample, max(capacity, 0))}
}

// Push appends a sample, evicting the oldest one when full.
func (t *Trail) Push(s TrailSample) {
	c := len(t.buf)
	if c == 0 {
		return
	}
	if t.n < c {
		t.buf[(t.start+t.n)%c] = s
		t.n++
		return
	}
	t.buf[t.start] = s
	t.start = (t.start + 1) % c
}

// Len returns the number of stored samples.
func (t Trail) Len() int { return t.n }

// Cap returns the maximum number of samples.
func (t Trail) Cap() int { return len(t.buf) }

// At returns the i-th sample, oldest first.
func (t Trail) At(i int) TrailSample {
	return t.buf[(t.start+i)%len(t.buf)]
}

// Samples returns a copy of all samples, oldest first.
func (t Trail) Samples() []TrailSample {
	out := make([]TrailSample, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Clear drops all samples, keeping the capacity.
func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}

// Clone returns an independent copy with the given capacity.
// When shrinking, the newest samples are kept.
func (t Trail) Clone(capacity int) Trail {
	out := NewTrail(capacity)
	for _, s := range t.Samples() {
		out.Push(s)
	}
	return out
}
