package viz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/san-kum/termrain/internal/rain"
)

// Palette maps drop color indices to 256-color foreground styles.
// Color pair n draws with palette entry n-1.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[int]lipgloss.Style
}

func NewPalette(r *lipgloss.Renderer) *Palette {
	return &Palette{
		renderer: r,
		styles:   make(map[int]lipgloss.Style),
	}
}

func (p *Palette) Style(colorIndex int) lipgloss.Style {
	if s, ok := p.styles[colorIndex]; ok {
		return s
	}
	s := p.renderer.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(colorIndex - 1)))
	p.styles[colorIndex] = s
	return s
}

// Paint renders text in the color of colorIndex. A nil palette, color 0
// or empty text leaves the text as is.
func (p *Palette) Paint(colorIndex int, text string) string {
	if p == nil || colorIndex <= 0 || text == "" {
		return text
	}
	return p.Style(colorIndex).Render(text)
}

func (p *Palette) Profile() termenv.Profile {
	return p.renderer.ColorProfile()
}

// ProfileColors is the number of colors a profile can show.
func ProfileColors(profile termenv.Profile) int {
	switch profile {
	case termenv.TrueColor:
		return 1 << 24
	case termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	}
	return 1
}

// CheckColors fails with rain.ErrCapability when profile shows fewer than
// minColors colors.
func CheckColors(profile termenv.Profile, minColors int) error {
	if n := ProfileColors(profile); n < minColors {
		return &rain.Error{Op: "colors", Value: n, Wrapped: rain.ErrCapability}
	}
	return nil
}
