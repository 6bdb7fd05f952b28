// snake is a terminal snake game.
//
// Usage:
//
//	snake    - Start the game on the main menu
//
// Controls:
//
//	W/A/S/D  - Steer the snake
//	P        - Play (from the menu or after death)
//	Q        - Quit (from the menu or after death)
//	Ctrl+C   - Exit at any time
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, don't hit anything",
	Long: `Snake is a terminal game on a fixed 80x50 grid.

Eat food to score a point and grow. Running into the border or
into your own body ends the round.

Controls:
  W/A/S/D  - Steer
  P        - Play
  Q        - Quit (menu and end screen)
  Ctrl+C   - Exit immediately`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("tui: stdout is not a terminal")
	}
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		if w < cfg.Display.Width || h < cfg.Display.Height {
			logger.Warn("terminal is smaller than the game grid",
				"have", fmt.Sprintf("%dx%d", w, h),
				"need", fmt.Sprintf("%dx%d", cfg.Display.Width, cfg.Display.Height))
		}
	}

	settings, err := settingsFromConfig(cfg)
	if err != nil {
		return err
	}

	game := snake.New(settings, rand.New(rand.NewSource(time.Now().UnixNano())))

	summary, err := tui.Run(game, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("thanks for playing",
		"rounds", summary.Rounds,
		"best", summary.BestScore,
		"last", summary.LastScore)
	return nil
}

// settingsFromConfig converts the loaded configuration to game settings.
func settingsFromConfig(cfg config.Config) (snake.Settings, error) {
	dir, err := snake.ParseDirection(cfg.Snake.StartDirection)
	if err != nil {
		return snake.Settings{}, err
	}

	return snake.Settings{
		Width:          cfg.Display.Width,
		Height:         cfg.Display.Height,
		MoveInterval:   cfg.Snake.MoveIntervalMs,
		Start:          core.Point{X: cfg.Snake.StartX, Y: cfg.Snake.StartY},
		StartDirection: dir,
	}, nil
}
