package config

import "fmt"

// ParsePreset converts a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps whatever the config file says. Easy only widens the paddle and
// slows the ball, since lives are already at MaxLives by default.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 4
		cfg.Ball.SpeedPerLevel = 0.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 6.5
		cfg.Ball.SpeedPerLevel = 0.75
	}
}
