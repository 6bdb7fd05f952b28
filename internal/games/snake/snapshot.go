package snake

// Snapshot captures the game state for determinism testing and debug logging.
type Snapshot struct {
	Mode      Mode
	Score     int
	HeadX     int
	HeadY     int
	Dir       Direction
	BodyLen   int
	FoodX     int
	FoodY     int
	FrameTime float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.player.Position()
	food := g.food.Position()

	return Snapshot{
		Mode:      g.mode,
		Score:     g.score,
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.player.Direction(),
		BodyLen:   g.player.Len(),
		FoodX:     food.X,
		FoodY:     food.Y,
		FrameTime: g.frameTime,
	}
}
