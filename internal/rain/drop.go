package rain

// Glyphs for slow and fast drops.
const (
	GlyphSlow = '|'
	GlyphFast = ':'
)

// ResetRows is the range a drop re-enters at after falling past the bottom.
// It does not depend on the terminal height.
const ResetRows = 10

// Rand is the randomness a drop needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Drop is one falling character.
type Drop struct {
	Column     int
	Row        int
	Speed      int
	Glyph      rune
	ColorIndex int
}

// NewDrop creates a drop at a random cell of a width x height terminal.
// Slow mode draws speed from {1,2}, otherwise from {1..5}.
func NewDrop(width, height int, slow bool, rng Rand) Drop {
	d := Drop{
		Column: rng.Intn(width),
		Row:    rng.Intn(height),
	}

	if slow {
		d.Speed = 1 + rng.Intn(2)
		d.Glyph = glyphFor(d.Speed, 2)
	} else {
		d.Speed = 1 + rng.Intn(5)
		d.Glyph = glyphFor(d.Speed, 3)
	}

	d.ColorIndex = ColorIndex(d.Speed)
	return d
}

func glyphFor(speed, threshold int) rune {
	if speed < threshold {
		return GlyphSlow
	}
	return GlyphFast
}

// ColorIndex maps a speed to a color pair index. The result is truncated
// toward zero: speeds 1..5 give 255, 251, 247, 243, 239.
func ColorIndex(speed int) int {
	x := float64(speed)
	return int((0.0416*(x-4)*(x-3)*(x-2)-4)*(x-1) + 255)
}

// Advance moves the drop down by its speed. A drop reaching the last line
// re-enters at a random row in [0, ResetRows).
func (d *Drop) Advance(height int, rng Rand) {
	d.Row += d.Speed
	if d.Row >= height-1 {
		d.Row = rng.Intn(ResetRows)
	}
}
