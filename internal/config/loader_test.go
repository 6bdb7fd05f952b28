package config

import (
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Embedded config %+v differs from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Width != 80 || cfg.Display.Height != 50 {
		t.Errorf("Expected 80x50 display, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
	if cfg.Snake.MoveIntervalMs != 75 {
		t.Errorf("Expected 75ms cadence, got %v", cfg.Snake.MoveIntervalMs)
	}
	if cfg.Snake.StartX != 5 || cfg.Snake.StartY != 25 || cfg.Snake.StartDirection != "right" {
		t.Errorf("Unexpected start: (%d, %d) %s", cfg.Snake.StartX, cfg.Snake.StartY, cfg.Snake.StartDirection)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  tick_rate: 30\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Display.TickRate != 30 {
		t.Errorf("Expected tick_rate 30, got %d", cfg.Display.TickRate)
	}
	if cfg.Display.Width != 80 || cfg.Snake.MoveIntervalMs != 75 {
		t.Error("Unspecified fields should keep their defaults")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{"malformed", "display: [", "failed to parse"},
		{"tiny display", "display:\n  width: 4\n  height: 4\n", "smaller than"},
		{"zero tick rate", "display:\n  tick_rate: 0\n", "tick_rate"},
		{"negative cadence", "snake:\n  move_interval_ms: -1\n", "move_interval_ms"},
		{"start on border", "snake:\n  start_x: 2\n", "outside the arena"},
		{"start past bottom", "snake:\n  start_y: 47\n", "outside the arena"},
		{"bad direction", "snake:\n  start_direction: north\n", "start_direction"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Error %q should mention %q", err.Error(), tc.wantMsg)
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("Error %q should carry the package prefix", err.Error())
			}
		})
	}
}
