package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Player glyph and colors.
const (
	snakeGlyph = '█'
	snakeFg    = core.ColorYellow
	snakeBg    = core.ColorBlack
)

// Player is the snake: a head, a heading and the trailing body.
type Player struct {
	pos       core.Point
	direction Direction
	body      []core.Point // Head-adjacent segment first
	growing   bool         // Add a segment on the next move
}

// NewPlayer creates a body-less snake at pos heading dir.
func NewPlayer(pos core.Point, dir Direction) *Player {
	return &Player{
		pos:       pos,
		direction: dir,
	}
}

// Position returns the head position.
func (p *Player) Position() core.Point {
	return p.pos
}

// Direction returns the current heading.
func (p *Player) Direction() Direction {
	return p.direction
}

// SetDirection changes the heading. Reversal checks are the caller's job.
func (p *Player) SetDirection(d Direction) {
	p.direction = d
}

// Body returns a copy of the trailing segments, head-adjacent first.
func (p *Player) Body() []core.Point {
	body := make([]core.Point, len(p.body))
	copy(body, p.body)
	return body
}

// Len returns the number of body segments, not counting the head.
func (p *Player) Len() int {
	return len(p.body)
}

// Move advances the head one cell and drags the body behind it.
// A pending growth appends a segment first, so after the shift it ends up
// where the tail used to be.
func (p *Player) Move() {
	oldHead := p.pos
	p.pos = p.pos.Add(p.direction.Delta())

	if p.growing {
		p.body = append(p.body, oldHead)
		p.growing = false
	}

	if len(p.body) > 0 {
		copy(p.body[1:], p.body[:len(p.body)-1])
		p.body[0] = oldHead
	}
}

// Grow schedules one new segment for the next Move.
func (p *Player) Grow() {
	p.growing = true
}

// CheckSelfCollision reports whether the head overlaps any body segment.
func (p *Player) CheckSelfCollision() bool {
	for _, seg := range p.body {
		if seg == p.pos {
			return true
		}
	}
	return false
}

// Render draws the head and every body segment.
func (p *Player) Render(dst core.Surface) {
	dst.SetCell(p.pos.X, p.pos.Y, snakeFg, snakeBg, snakeGlyph)
	for _, seg := range p.body {
		dst.SetCell(seg.X, seg.Y, snakeFg, snakeBg, snakeGlyph)
	}
}
