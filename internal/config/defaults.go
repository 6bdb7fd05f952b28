package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default snake configuration.
// It matches defaults/snake.yaml.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:    80,
			Height:   50,
			Title:    "Snake",
			TickRate: 60,
		},
		Snake: SnakeConfig{
			MoveIntervalMs: 75,
			StartX:         5,
			StartY:         25,
			StartDirection: "right",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
