package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Border glyphs and colors.
const (
	borderVertical   = '|'
	borderHorizontal = '-'
	borderFg         = core.ColorRed
	borderBg         = core.ColorBlack
)

// arenaMargin is the distance from the display edge to the border line.
const arenaMargin = 2

// Obstacle is the rectangular arena border, inclusive on all four sides.
type Obstacle struct {
	x1, y1 int
	x2, y2 int
}

// NewObstacle builds the border for a display of the given size.
func NewObstacle(width, height int) Obstacle {
	return Obstacle{
		x1: arenaMargin,
		y1: arenaMargin,
		x2: width - arenaMargin - 1,
		y2: height - arenaMargin - 1,
	}
}

// Bounds returns the border corners (x1, y1, x2, y2).
func (o Obstacle) Bounds() (x1, y1, x2, y2 int) {
	return o.x1, o.y1, o.x2, o.y2
}

// Render draws the vertical sides first, then the horizontal ones,
// so the corners end up horizontal.
func (o Obstacle) Render(dst core.Surface) {
	for y := o.y1; y <= o.y2; y++ {
		dst.SetCell(o.x1, y, borderFg, borderBg, borderVertical)
		dst.SetCell(o.x2, y, borderFg, borderBg, borderVertical)
	}
	for x := o.x1; x <= o.x2; x++ {
		dst.SetCell(x, o.y1, borderFg, borderBg, borderHorizontal)
		dst.SetCell(x, o.y2, borderFg, borderBg, borderHorizontal)
	}
}

// Hit reports whether the player's head is on or beyond the border.
func (o Obstacle) Hit(p *Player) bool {
	pos := p.Position()
	return pos.X <= o.x1 || pos.X >= o.x2 || pos.Y <= o.y1 || pos.Y >= o.y2
}
