package snake

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Scheduler arms a one-shot callback to run after d.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Run arms the first tick after the base interval. Each tick re-arms the
// next one with the interval it returns, until the game ends.
func (s *Session) Run(sched Scheduler) {
	var step func()
	step = func() {
		res := s.Tick()
		if res.Ended {
			return
		}
		sched.After(res.Next, step)
	}
	sched.After(s.opts.BaseInterval, step)
}

// VirtualClock is a Scheduler that runs callbacks on demand, in due order,
// on the caller's goroutine. Time only moves when Step is called.
type VirtualClock struct {
	now    time.Duration
	timers []virtualTimer
}

type virtualTimer struct {
	at time.Duration
	fn func()
}

// NewVirtualClock creates a clock at time zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// After implements Scheduler. Timers due at the same instant run in the
// order they were armed.
func (c *VirtualClock) After(d time.Duration, fn func()) {
	t := virtualTimer{at: c.now + max(d, 0), fn: fn}
	i, _ := slices.BinarySearchFunc(c.timers, t.at, func(v virtualTimer, at time.Duration) int {
		if v.at <= at {
			return -1
		}
		return 1
	})
	c.timers = slices.Insert(c.timers, i, t)
}

// Step advances to the earliest timer and runs it. It returns false if no
// timer is pending.
func (c *VirtualClock) Step() bool {
	if len(c.timers) == 0 {
		return false
	}
	t := c.timers[0]
	c.timers = c.timers[1:]
	c.now = t.at
	t.fn()
	return true
}

// Now returns the virtual time elapsed.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of armed timers.
func (c *VirtualClock) Pending() int {
	return len(c.timers)
}

// Move is a scripted direction event delivered just before tick Tick.
type Move struct {
	Tick uint64
	Dir  Direction
}

// ParseMoves parses a script such as "12:up,30:left". Entries are sorted by
// tick; entries for the same tick keep their order.
func ParseMoves(script string) ([]Move, error) {
	var moves []Move
	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tickStr, dirStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("snake: move %q: expected <tick>:<direction>", entry)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("snake: move %q: tick must be a positive integer", entry)
		}
		dir, ok := ParseDirection(dirStr)
		if !ok {
			return nil, fmt.Errorf("snake: move %q: unknown direction %q", entry, dirStr)
		}
		moves = append(moves, Move{Tick: tick, Dir: dir})
	}
	slices.SortStableFunc(moves, func(a, b Move) int {
		switch {
		case a.Tick < b.Tick:
			return -1
		case a.Tick > b.Tick:
			return 1
		}
		return 0
	})
	return moves, nil
}

// Simulate runs s on clock until the game ends or maxTicks ticks have run.
// Moves are delivered between ticks, just before the tick they name, the
// way key presses land between two scheduled ticks.
func Simulate(s *Session, clock *VirtualClock, moves []Move, maxTicks uint64) Snapshot {
	s.Run(clock)

	next := 0
	for clock.Pending() > 0 && s.TickCount() < maxTicks {
		upcoming := s.TickCount() + 1
		for next < len(moves) && moves[next].Tick <= upcoming {
			s.Turn(moves[next].Dir)
			next++
		}
		clock.Step()
	}
	return s.Snapshot()
}
