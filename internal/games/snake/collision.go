package snake

import (
	"github.com/vovakirdan/xenzia/internal/core"
)

// touches reports whether either of the two corner points falls inside
// area, edges included. Food boxes pass their corners, body segments their
// endpoints.
func touches(area core.Box, a, b core.Point) bool {
	return area.Contains(a) || area.Contains(b)
}

// eatFood handles a head-vs-food hit: the snake grows and a new food item
// replaces the eaten one. At most one food is eaten per call.
func (s *Session) eatFood() bool {
	if !touches(s.snake.head, s.food.Min(), s.food.Max()) {
		return false
	}
	s.snake.grow(s.opts.Growth)
	s.food = s.spawner.spawn()
	return true
}

// hitsBody reports whether the head touches any collidable body segment.
// The neck is excluded.
func (s *Session) hitsBody() bool {
	for _, seg := range s.snake.body {
		if touches(s.snake.head, seg.From, seg.To) {
			return true
		}
	}
	return false
}
