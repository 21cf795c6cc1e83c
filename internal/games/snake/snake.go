package snake

import (
	"github.com/vovakirdan/xenzia/internal/core"
)

// Snake is the head, heading and trailing body of the player.
//
// The head is tracked in a doubled coordinate space [0, 2W] x [0, 2H] and
// drawn at half of that, so every step of 10 tracked units moves the head box
// 5 canvas units. The most recent tail line is held as the neck and only
// joins the body on the following append, so a line created on tick t is
// first collision-checked on tick t+2.
type Snake struct {
	pos  core.Point // Tracked head position (doubled space)
	dir  Direction
	head core.Box // Head box on the canvas

	neck    core.Segment
	hasNeck bool
	body    []core.Segment // Oldest first
	target  int            // Target body length

	width, height int
	step          int
	headSize      int
	segmentLength int
}

// newSnake creates a snake at the centre of the canvas heading right, with
// no body.
func newSnake(o Options) *Snake {
	s := &Snake{
		pos:           core.Point{X: o.Width, Y: o.Height},
		dir:           DirRight,
		width:         o.Width,
		height:        o.Height,
		step:          o.Step,
		headSize:      o.HeadSize,
		segmentLength: o.SegmentLength,
	}
	s.place()
	return s
}

// advance moves the tracked head one step along the current direction.
func (s *Snake) advance() {
	dx, dy := s.dir.Delta()
	s.pos = s.pos.Add(dx*s.step, dy*s.step)
	s.place()
}

// place rebuilds the head box from the tracked position and then applies the
// wrap reset. The box uses the pre-wrap coordinate, so the head is drawn once
// at the far edge before reappearing on the other side.
func (s *Snake) place() {
	s.head = core.NewBox(s.pos.X/2, s.pos.Y/2, s.headSize)
	s.pos.X = wrapAxis(s.pos.X, s.headSize, 2*s.width)
	s.pos.Y = wrapAxis(s.pos.Y, s.headSize, 2*s.height)
}

// wrapAxis resets a tracked coordinate whose leading edge passed limit to 0,
// and a negative one to limit.
func wrapAxis(v, edge, limit int) int {
	switch {
	case limit < v+edge:
		return 0
	case v < 0:
		return limit
	}
	return v
}

// grow raises the target body length.
func (s *Snake) grow(amount int) {
	s.target += amount
}

// appendSegment lays a new tail line behind the head midpoint, opposite to
// the direction of travel. The previous neck joins the body and the oldest
// body segments are evicted while the body is longer than the target.
func (s *Snake) appendSegment() {
	mid := s.head.Center()
	dx, dy := s.dir.Delta()
	seg := core.Segment{
		From: mid.Add(-dx*s.segmentLength, -dy*s.segmentLength),
		To:   mid,
	}

	if s.hasNeck {
		s.body = append(s.body, s.neck)
	}
	for len(s.body) > s.target {
		s.body = s.body[1:]
	}
	s.neck, s.hasNeck = seg, true
}

// Position returns the tracked head position.
func (s *Snake) Position() core.Point {
	return s.pos
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Head returns the head box on the canvas.
func (s *Snake) Head() core.Box {
	return s.head
}

// Body returns a copy of the collidable body segments, oldest first.
func (s *Snake) Body() []core.Segment {
	out := make([]core.Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Neck returns the newest tail line, which is drawn but not yet collidable.
func (s *Snake) Neck() (core.Segment, bool) {
	return s.neck, s.hasNeck
}

// TargetLength returns the number of body segments the snake grows toward.
func (s *Snake) TargetLength() int {
	return s.target
}
