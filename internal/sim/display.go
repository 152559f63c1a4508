package sim

// Display is the terminal the simulator draws on.
type Display interface {
	// Size reports the current terminal width and height in cells.
	Size() (width, height int)
	// DrawChar puts glyph at (row, column) in the color of colorIndex.
	DrawChar(row, column int, glyph rune, colorIndex int)
	// Clear blanks the frame before drawing.
	Clear()
	// Refresh publishes the drawn frame.
	Refresh()
	// PollKey returns a pending key without blocking.
	PollKey() (rune, bool)
	// Resized reports a pending terminal size change.
	Resized() bool
	// ClearResized acknowledges the pending size change.
	ClearResized()
	// EnterRawMode acquires terminal control and checks capabilities.
	EnterRawMode() error
	// RestoreMode releases terminal control. It must be safe to call more than once.
	RestoreMode() error
}
