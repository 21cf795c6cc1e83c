// Package snake implements Snake Xenzia: a snake that wraps around a
// 500x300 canvas, grows by eating food, speeds up as it grows and dies when
// its head touches its own body.
//
// A Session owns all game state and is driven by two entry points, Turn for
// directional input and Tick for the scheduled update. Both must be called
// from the same goroutine.
package snake

import (
	"time"

	"github.com/vovakirdan/xenzia/internal/config"
	"github.com/vovakirdan/xenzia/internal/core"
)

// State is the lifecycle of a session. Ended is terminal.
type State int

const (
	StateRunning State = iota
	StateEnded
)

func (st State) String() string {
	if st == StateEnded {
		return "ended"
	}
	return "running"
}

// Options holds the tunables of a session.
type Options struct {
	Width, Height int // Logical canvas size

	Step          int // Tracked units per move
	HeadSize      int // Head box edge
	SegmentLength int // Tail line length

	FoodSize int
	Growth   int // Target length gained per food, also the score per food

	BaseInterval time.Duration
	MinInterval  time.Duration
	SpeedupPer   int  // Target length per 1ms of speed-up
	FixedSpeed   bool // Disables the speed-up

	Seed int64
}

// DefaultOptions returns the options of the classic game.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultSnakeConfig(), 0)
}

// OptionsFromConfig builds session options from a loaded config.
func OptionsFromConfig(cfg config.SnakeConfig, seed int64) Options {
	return Options{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		Step:          cfg.Snake.Step,
		HeadSize:      cfg.Snake.HeadSize,
		SegmentLength: cfg.Snake.SegmentLength,
		FoodSize:      cfg.Food.Size,
		Growth:        cfg.Food.Growth,
		BaseInterval:  time.Duration(cfg.Timing.BaseIntervalMS) * time.Millisecond,
		MinInterval:   time.Duration(cfg.Timing.MinIntervalMS) * time.Millisecond,
		SpeedupPer:    cfg.Timing.SpeedupPer,
		FixedSpeed:    config.IsFixedPreset(cfg.Difficulty.Preset),
		Seed:          seed,
	}
}

// normalized guards against values that would stall or crash the loop.
func (o Options) normalized() Options {
	o.MinInterval = max(o.MinInterval, time.Millisecond)
	o.BaseInterval = max(o.BaseInterval, o.MinInterval)
	o.SpeedupPer = max(o.SpeedupPer, 1)
	return o
}

// Presenter receives one-way notifications from a session.
type Presenter interface {
	// ScoreChanged is called at the end of every tick that did not end the game.
	ScoreChanged(score int)
	// GameEnded is called once, on the tick that ends the game.
	GameEnded(score int)
}

// NopPresenter ignores all notifications.
type NopPresenter struct{}

func (NopPresenter) ScoreChanged(int) {}
func (NopPresenter) GameEnded(int)    {}

// TickResult describes the outcome of a single tick.
type TickResult struct {
	Tick  uint64
	Score int
	Ate   bool          // Food was eaten this tick
	Ended bool          // The game is over; no further tick should be scheduled
	Next  time.Duration // Delay before the next tick, zero when Ended
}

// Session is one game from start to game over.
type Session struct {
	opts      Options
	snake     *Snake
	food      core.Box
	spawner   *foodSpawner
	state     State
	tick      uint64
	presenter Presenter
}

// NewSession creates a running session. A nil presenter is replaced with
// NopPresenter.
func NewSession(opts Options, p Presenter) *Session {
	opts = opts.normalized()
	if p == nil {
		p = NopPresenter{}
	}

	s := &Session{
		opts:      opts,
		snake:     newSnake(opts),
		spawner:   newFoodSpawner(opts),
		presenter: p,
	}
	s.food = s.spawner.spawn()
	return s
}

// Turn delivers a directional event. Reversing into the body, invalid
// directions and any input after the game ended are ignored. An accepted
// event, including one repeating the current direction, moves the snake one
// step right away, independent of the tick schedule.
func (s *Session) Turn(d Direction) bool {
	if s.state == StateEnded || !d.Valid() || d == s.snake.dir.Opposite() {
		return false
	}
	s.applyDirectionStep(d)
	return true
}

// applyDirectionStep is the single movement routine shared by input and
// ticks: set the heading, drop the old head box and rebuild it one step on.
func (s *Session) applyDirectionStep(d Direction) {
	s.snake.dir = d
	s.snake.advance()
}

// Tick runs one update in a fixed order:
//
//  1. move one step in the current direction
//  2. head vs food, then head vs body
//  3. on a body hit, end the game and stop
//  4. append a tail line
//  5. report the score
//  6. compute the next interval
//
// Appending after the collision checks, together with the neck, is what
// keeps the newest tail lines out of the current check.
func (s *Session) Tick() TickResult {
	if s.state == StateEnded {
		return TickResult{Tick: s.tick, Score: s.Score(), Ended: true}
	}

	s.tick++
	s.applyDirectionStep(s.snake.dir)

	ate := s.eatFood()
	if s.hitsBody() {
		s.state = StateEnded
		s.presenter.GameEnded(s.Score())
		return TickResult{Tick: s.tick, Score: s.Score(), Ate: ate, Ended: true}
	}

	s.snake.appendSegment()
	s.presenter.ScoreChanged(s.Score())

	return TickResult{
		Tick:  s.tick,
		Score: s.Score(),
		Ate:   ate,
		Next:  s.NextInterval(),
	}
}

// NextInterval is the base interval shortened by 1ms per SpeedupPer of
// target length, never below MinInterval.
func (s *Session) NextInterval() time.Duration {
	d := s.opts.BaseInterval
	if !s.opts.FixedSpeed {
		d -= time.Duration(s.snake.target/s.opts.SpeedupPer) * time.Millisecond
	}
	return max(d, s.opts.MinInterval)
}

// Score returns the current score, which equals the target length.
func (s *Session) Score() int {
	return s.snake.target
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Ended reports whether the game is over.
func (s *Session) Ended() bool {
	return s.state == StateEnded
}

// TickCount returns the number of ticks run so far.
func (s *Session) TickCount() uint64 {
	return s.tick
}

// Snake returns the snake. Callers must treat it as read-only.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the current food box.
func (s *Session) Food() core.Box {
	return s.food
}

// Options returns the normalized options of the session.
func (s *Session) Options() Options {
	return s.opts
}
