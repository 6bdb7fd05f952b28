// Package snake implements the snake game: a menu, an endless round in a
// walled arena, and a death screen. It draws into a core.Surface and never
// touches the terminal directly.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Mode selects which handler runs on each tick.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Playfield colors.
const playBackground = core.ColorNavy

// Settings holds the fixed parameters of a game.
type Settings struct {
	Width          int        // Display width in cells
	Height         int        // Display height in cells
	MoveInterval   float64    // Milliseconds between snake steps
	Start          core.Point // Head position at the start of a round
	StartDirection Direction
}

// DefaultSettings returns the classic 80x50 setup.
func DefaultSettings() Settings {
	return Settings{
		Width:          80,
		Height:         50,
		MoveInterval:   75,
		Start:          core.Point{X: 5, Y: 25},
		StartDirection: DirRight,
	}
}

// Game owns every entity of the snake game and its current mode.
type Game struct {
	settings Settings
	rng      RandomSource

	player    *Player
	obstacle  Obstacle
	food      Food
	mode      Mode
	score     int
	frameTime float64 // Milliseconds accumulated since the last step
}

// New creates a game sitting in the menu.
func New(settings Settings, rng RandomSource) *Game {
	return &Game{
		settings: settings,
		rng:      rng,
		player:   NewPlayer(settings.Start, settings.StartDirection),
		obstacle: NewObstacle(settings.Width, settings.Height),
		food:     NewFood(rng, settings.Width, settings.Height),
		mode:     ModeMenu,
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the food eaten in the current (or last) round.
func (g *Game) Score() int {
	return g.score
}

// Tick runs one frame: it draws the current mode into f.Surface and reacts
// to f.Key. Leaving the game is requested through f.Quitting.
func (g *Game) Tick(f *core.Frame) {
	switch g.mode {
	case ModeMenu:
		g.mainMenu(f)
	case ModeEnd:
		g.dead(f)
	case ModePlaying:
		g.play(f)
	}
}

// restart starts a fresh round.
func (g *Game) restart() {
	g.player = NewPlayer(g.settings.Start, g.settings.StartDirection)
	g.frameTime = 0
	g.obstacle = NewObstacle(g.settings.Width, g.settings.Height)
	g.food = NewFood(g.rng, g.settings.Width, g.settings.Height)
	g.mode = ModePlaying
	g.score = 0
}

func (g *Game) mainMenu(f *core.Frame) {
	dst := f.Surface
	dst.Clear()
	dst.DrawTextCentered(5, "Welcome")
	dst.DrawTextCentered(8, "(P) Play game")
	dst.DrawTextCentered(9, "(Q) Quit game")
	g.handleMenuKey(f)
}

func (g *Game) dead(f *core.Frame) {
	dst := f.Surface
	dst.Clear()
	dst.DrawTextCentered(5, "You are dead")
	dst.DrawTextCentered(6, fmt.Sprintf("You earned %d points", g.score))
	dst.DrawTextCentered(8, "(P) Play game")
	dst.DrawTextCentered(9, "(Q) Quit game")
	g.handleMenuKey(f)
}

// handleMenuKey is shared by the menu and the death screen.
func (g *Game) handleMenuKey(f *core.Frame) {
	switch f.Key {
	case core.ActionPlay:
		g.restart()
	case core.ActionQuit:
		f.Quitting = true
	}
}

func (g *Game) play(f *core.Frame) {
	dst := f.Surface
	dst.ClearBg(playBackground)
	dst.DrawText(0, 0, "Use WASD to move")
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score))
	g.obstacle.Render(dst)
	g.food.Render(dst)

	g.frameTime += f.FrameTimeMs
	if g.frameTime > g.settings.MoveInterval {
		g.frameTime = 0
		g.player.Move()
	}

	if dir, ok := directionForAction(f.Key); ok {
		if !g.player.Direction().IsOpposite(dir) {
			g.player.SetDirection(dir)
		}
	}

	g.player.Render(dst)

	// Every check runs; End wins for the tick either way.
	if g.obstacle.Hit(g.player) {
		g.mode = ModeEnd
	}
	if g.player.CheckSelfCollision() {
		g.mode = ModeEnd
	}
	if g.player.Position() == g.food.Position() {
		g.player.Grow()
		g.score++
		g.food = NewFood(g.rng, g.settings.Width, g.settings.Height)
	}
}
