package main

import (
	"github.com/charmbracelet/log"
)

// logPresenter reports session events to the log for headless runs.
type logPresenter struct {
	logger *log.Logger
	last   int
}

func newLogPresenter(logger *log.Logger) *logPresenter {
	return &logPresenter{logger: logger}
}

func (p *logPresenter) ScoreChanged(score int) {
	if score != p.last {
		p.logger.Debug("score changed", "score", score)
		p.last = score
	}
}

func (p *logPresenter) GameEnded(score int) {
	p.logger.Info("game over", "score", score)
}
