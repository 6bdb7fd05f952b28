// Package config holds the fixed constants of the game, shipped as an
// embedded YAML document.
package config

// Config contains all configuration for the snake game.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Snake   SnakeConfig   `yaml:"snake"`
}

// DisplayConfig defines the character grid and the frame loop.
type DisplayConfig struct {
	Width    int    `yaml:"width"`     // Grid width in cells
	Height   int    `yaml:"height"`    // Grid height in cells
	Title    string `yaml:"title"`     // Terminal window title
	TickRate int    `yaml:"tick_rate"` // Frames per second
}

// SnakeConfig defines the movement cadence and the start of a round.
type SnakeConfig struct {
	MoveIntervalMs float64 `yaml:"move_interval_ms"`
	StartX         int     `yaml:"start_x"`
	StartY         int     `yaml:"start_y"`
	StartDirection string  `yaml:"start_direction"` // right, down, left or up
}
