package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Food glyph and colors.
const (
	foodGlyph = '█'
	foodFg    = core.ColorYellow
	foodBg    = core.ColorBlack
)

// foodMargin keeps food one cell inside the border.
const foodMargin = arenaMargin + 1

// RandomSource is the randomness food placement draws from.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Food is the single pickup on the board.
type Food struct {
	pos core.Point
}

// NewFood places food uniformly in [3, width-4] x [3, height-4].
// The snake body is not avoided.
func NewFood(rng RandomSource, width, height int) Food {
	x := randRange(rng, foodMargin, width-foodMargin-1)
	y := randRange(rng, foodMargin, height-foodMargin-1)
	return Food{pos: core.Point{X: x, Y: y}}
}

// randRange returns a value in [lo, hi]. It collapses to lo when the range is empty.
func randRange(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Position returns where the food sits.
func (f Food) Position() core.Point {
	return f.pos
}

// Render draws the food glyph.
func (f Food) Render(dst core.Surface) {
	dst.SetCell(f.pos.X, f.pos.Y, foodFg, foodBg, foodGlyph)
}
