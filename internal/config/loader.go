package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Smallest grid that still leaves room between the border and the food area.
const (
	minWidth  = 8
	minHeight = 8
)

// Load decodes and validates the embedded configuration.
func Load() (Config, error) {
	return Parse(defaultSnakeYAML)
}

// Parse decodes a configuration document on top of DefaultConfig and validates it.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the values describe a playable arena.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width < minWidth || c.Display.Height < minHeight {
		errs = append(errs, fmt.Errorf("display %dx%d is smaller than %dx%d",
			c.Display.Width, c.Display.Height, minWidth, minHeight))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if c.Snake.MoveIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("move_interval_ms must be positive, got %v", c.Snake.MoveIntervalMs))
	}

	// The start cell must lie strictly inside the border at margin 2
	if c.Snake.StartX <= 2 || c.Snake.StartX >= c.Display.Width-3 ||
		c.Snake.StartY <= 2 || c.Snake.StartY >= c.Display.Height-3 {
		errs = append(errs, fmt.Errorf("start (%d, %d) is outside the arena",
			c.Snake.StartX, c.Snake.StartY))
	}

	switch c.Snake.StartDirection {
	case "right", "down", "left", "up":
	default:
		errs = append(errs, fmt.Errorf("unknown start_direction %q", c.Snake.StartDirection))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
