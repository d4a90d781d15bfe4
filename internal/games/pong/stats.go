package pong

// Stats are per-session rally statistics. They are not scores and are the
// only thing the front-ends persist.
type Stats struct {
	Frames       uint64
	PaddleHits   int
	Rally        int // Paddle hits since the last serve
	LongestRally int
	Points       int // Points played
}

// hit records a paddle hit.
func (s *Stats) hit() {
	s.PaddleHits++
	s.Rally++
	if s.Rally > s.LongestRally {
		s.LongestRally = s.Rally
	}
}

// point records the end of a rally.
func (s *Stats) point() {
	s.Points++
	s.Rally = 0
}
