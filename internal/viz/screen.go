package viz

import (
	"github.com/charmbracelet/lipgloss"
)

// Screen is the display the simulator draws on. Bubble Tea feeds it size
// and key messages; the simulator consumes them between frames.
type Screen struct {
	canvas        *Canvas
	palette       *Palette
	minColors     int
	width, height int
	resized       bool
	keys          []rune
	frame         string
	active        bool
}

func NewScreen(r *lipgloss.Renderer, minColors int) *Screen {
	return &Screen{
		canvas:    NewCanvas(0, 0),
		palette:   NewPalette(r),
		minColors: minColors,
	}
}

func (s *Screen) Size() (int, int) { return s.width, s.height }

func (s *Screen) DrawChar(row, column int, glyph rune, colorIndex int) {
	s.canvas.Set(row, column, glyph, colorIndex)
}

func (s *Screen) Clear() {
	s.canvas.Resize(s.width, s.height)
	s.canvas.Clear()
}

func (s *Screen) Refresh() {
	s.frame = s.canvas.Render(s.palette)
}

func (s *Screen) PollKey() (rune, bool) {
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

func (s *Screen) Resized() bool { return s.resized }
func (s *Screen) ClearResized() { s.resized = false }

// EnterRawMode checks the palette. The terminal itself is switched by the
// Bubble Tea program that owns the screen.
func (s *Screen) EnterRawMode() error {
	if err := CheckColors(s.palette.Profile(), s.minColors); err != nil {
		return err
	}
	s.active = true
	return nil
}

func (s *Screen) RestoreMode() error {
	s.active = false
	s.frame = ""
	s.keys = nil
	return nil
}

// SetSize records the geometry without raising the resize flag.
func (s *Screen) SetSize(w, h int) {
	s.width, s.height = w, h
}

// NotifyResize records a new geometry and raises the resize flag. The
// stale frame is dropped so nothing is drawn at the old size.
func (s *Screen) NotifyResize(w, h int) {
	s.SetSize(w, h)
	s.resized = true
	s.frame = ""
}

// PushKey queues a key for PollKey.
func (s *Screen) PushKey(r rune) {
	s.keys = append(s.keys, r)
}

func (s *Screen) Active() bool { return s.active }
func (s *Screen) View() string { return s.frame }
