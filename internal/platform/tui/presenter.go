package tui

import (
	"github.com/charmbracelet/log"
)

// statusPresenter receives session notifications. View draws the score bar
// and the game-over banner from its state. It is shared by pointer across
// model copies.
type statusPresenter struct {
	logger *log.Logger
	score  int
	ended  bool
}

func newStatusPresenter(logger *log.Logger) *statusPresenter {
	return &statusPresenter{logger: logger}
}

func (p *statusPresenter) ScoreChanged(score int) {
	if score != p.score {
		p.logger.Debug("score changed", "score", score)
	}
	p.score = score
}

func (p *statusPresenter) GameEnded(score int) {
	p.score = score
	p.ended = true
	p.logger.Info("game over", "score", score)
}

// reset prepares the presenter for a new session.
func (p *statusPresenter) reset() {
	p.score = 0
	p.ended = false
}
