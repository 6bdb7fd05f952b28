package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// IsOpposite reports whether turning from d to other would reverse the snake.
func (d Direction) IsOpposite(other Direction) bool {
	return (d == DirRight && other == DirLeft) ||
		(d == DirLeft && other == DirRight) ||
		(d == DirDown && other == DirUp) ||
		(d == DirUp && other == DirDown)
}

// Delta returns the one-cell step for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirRight:
		return core.Point{X: 1}
	case DirLeft:
		return core.Point{X: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirUp:
		return core.Point{Y: -1}
	default:
		return core.Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name ("right", "down", "left", "up") to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	default:
		return DirRight, fmt.Errorf("snake: unknown direction %q", name)
	}
}

// directionForAction maps a movement action to a direction.
func directionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}
