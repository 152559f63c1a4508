package viz

import (
	"strings"
)

const blank = ' '

// Cell is one character of the frame. Color 0 means unstyled.
type Cell struct {
	Glyph rune
	Color int
}

type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid when the dimensions change.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == c.Width && h == c.Height && c.Grid != nil {
		return
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]Cell, h)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
	}
	c.Clear()
}

// Set puts glyph at (row, col). Cells outside the canvas are dropped.
func (c *Canvas) Set(row, col int, glyph rune, color int) {
	if row < 0 || col < 0 || row >= c.Height || col >= c.Width {
		return
	}
	c.Grid[row][col] = Cell{Glyph: glyph, Color: color}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = Cell{Glyph: blank}
		}
	}
}

// Render paints the grid row by row, one style per run of equal color.
// The result has exactly Height lines.
func (c *Canvas) Render(p *Palette) string {
	var b strings.Builder
	run := make([]rune, 0, c.Width)

	for y, row := range c.Grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		color := 0
		for _, cell := range row {
			if cell.Color != color {
				b.WriteString(p.Paint(color, string(run)))
				run = run[:0]
				color = cell.Color
			}
			run = append(run, cell.Glyph)
		}
		b.WriteString(p.Paint(color, string(run)))
		run = run[:0]
	}
	return b.String()
}

func (c *Canvas) String() string {
	return c.Render(nil)
}
