package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/xenzia/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	TargetLength int
	HeadX        int // Tracked head position
	HeadY        int
	Head         core.Box
	Dir          Direction
	BodyLen      int
	HasNeck      bool
	Food         core.Box
	Interval     time.Duration
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	_, hasNeck := s.snake.Neck()
	return Snapshot{
		Tick:         s.tick,
		State:        s.state,
		Score:        s.Score(),
		TargetLength: s.snake.target,
		HeadX:        s.snake.pos.X,
		HeadY:        s.snake.pos.Y,
		Head:         s.snake.head,
		Dir:          s.snake.dir,
		BodyLen:      len(s.snake.body),
		HasNeck:      hasNeck,
		Food:         s.food,
		Interval:     s.NextInterval(),
	}
}

// String renders the snapshot as aligned key/value lines.
func (sn Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick:     %d\n", sn.Tick)
	fmt.Fprintf(&b, "state:    %s\n", sn.State)
	fmt.Fprintf(&b, "score:    %d\n", sn.Score)
	fmt.Fprintf(&b, "head:     (%d, %d) box (%d, %d)-(%d, %d)\n",
		sn.HeadX, sn.HeadY, sn.Head.X1, sn.Head.Y1, sn.Head.X2, sn.Head.Y2)
	fmt.Fprintf(&b, "dir:      %s\n", sn.Dir)
	fmt.Fprintf(&b, "body:     %d/%d\n", sn.BodyLen, sn.TargetLength)
	fmt.Fprintf(&b, "food:     (%d, %d)\n", sn.Food.X1, sn.Food.Y1)
	fmt.Fprintf(&b, "interval: %s", sn.Interval)
	return b.String()
}
