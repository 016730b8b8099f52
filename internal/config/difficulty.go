package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how forgiving a run is; platformer physics stay fixed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the tuning based on a difficulty preset.
func ApplyPreset(t *Tuning, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		t.Player.StartLives = 5
	case DifficultyHard:
		t.Player.StartLives = 1
	}
}
