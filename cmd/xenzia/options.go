package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xenzia/internal/config"
	"github.com/vovakirdan/xenzia/internal/games/snake"
)

// loadOptions resolves the config file, applies the difficulty preset and
// validates the result. The --difficulty flag wins over the preset in the
// file.
func loadOptions(configPath, difficulty string, seed int64) (snake.Options, error) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return snake.Options{}, err
	}

	preset := config.DifficultyPreset(difficulty)
	if !preset.Valid() {
		return snake.Options{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	if preset == "" {
		config.ApplyConfiguredPreset(&cfg)
	} else {
		config.ApplySnakePreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return snake.Options{}, err
	}
	return snake.OptionsFromConfig(cfg, seed), nil
}

// newLogger builds the process logger. An empty path writes to fallback;
// a nil fallback discards output. The returned close func is never nil.
func newLogger(path string, fallback io.Writer, debug bool) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "xenzia",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
