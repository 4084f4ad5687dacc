package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.SpeedIncrement = 0.01
		cfg.Scoring.MultiplierTicks = 900
		cfg.Elements.SpawnChance = 0.75
		cfg.Snake.InvincibleTicks = 768
	case DifficultyHard:
		cfg.Snake.InitialSpeed = 0.15
		cfg.Snake.SpeedIncrement = 0.03
		cfg.Scoring.MultiplierTicks = 360
		cfg.Elements.SpawnChance = 0.35
		cfg.Snake.InvincibleTicks = 384
	case DifficultyFixed:
		// No progression: eating food never speeds the snake up.
		cfg.Snake.SpeedIncrement = 0
	}
}
