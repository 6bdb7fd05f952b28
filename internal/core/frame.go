package core

// Surface is the drawing contract the platform offers to the game.
// *Screen is the only implementation; tests use it directly.
type Surface interface {
	Width() int
	Height() int

	// Clear resets every cell to a space with default colors.
	Clear()

	// ClearBg resets every cell to a space on the given background.
	ClearBg(bg Color)

	// SetCell writes one glyph with explicit colors.
	// Out-of-bounds coordinates are silently ignored.
	SetCell(x, y int, fg, bg Color, r rune)

	// DrawText writes a string horizontally starting at (x, y).
	DrawText(x, y int, text string)

	// DrawTextCentered draws text centered horizontally on row y.
	DrawTextCentered(y int, text string)
}

// Frame is what the platform hands the game once per rendered frame.
type Frame struct {
	Surface Surface

	// FrameTimeMs is the wall-clock time since the previous frame, in milliseconds.
	FrameTimeMs float64

	// Key is the single pending input for this frame, ActionNone if there is none.
	Key Action

	// Quitting is set by the game to ask the platform to stop the loop.
	Quitting bool
}
