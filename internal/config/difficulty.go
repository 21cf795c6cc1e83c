package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Valid reports whether the preset is known. Empty means "keep the config".
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// BaseIntervalForPreset returns the starting tick interval in milliseconds
// for a preset, or 0 if the preset keeps the configured value.
func BaseIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 70
	case DifficultyNormal:
		return 50
	case DifficultyHard:
		return 35
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the score speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	if ms := BaseIntervalForPreset(preset); ms > 0 {
		cfg.Timing.BaseIntervalMS = ms
	}
}

// ApplyConfiguredPreset applies the preset named in the config itself.
// Normal keeps the configured base interval, so a file that only sets
// timing.base_interval_ms is not overridden by the default preset.
func ApplyConfiguredPreset(cfg *SnakeConfig) {
	if cfg.Difficulty.Preset == DifficultyNormal {
		return
	}
	ApplySnakePreset(cfg, cfg.Difficulty.Preset)
}
