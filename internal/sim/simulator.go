package sim

import (
	"errors"

	"github.com/san-kum/termrain/internal/rain"
)

// QuitKey stops the rain.
const QuitKey = 'q'

// ErrNoGeometry indicates the terminal reported a non-positive size.
var ErrNoGeometry = errors.New("sim: terminal has no usable size")

type Phase int

const (
	Running Phase = iota
	Resizing
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Resizing:
		return "resizing"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Simulator owns the drop collection and moves it through the frame loop.
// It is driven from a single goroutine.
type Simulator struct {
	display Display
	rng     rain.Rand
	drops   *rain.Collection
	phase   Phase
	slow    bool
	started bool
}

func New(display Display, rng rain.Rand) *Simulator {
	return &Simulator{
		display: display,
		rng:     rng,
		drops:   &rain.Collection{},
		phase:   Stopped,
	}
}

func (s *Simulator) Phase() Phase            { return s.phase }
func (s *Simulator) Slow() bool              { return s.slow }
func (s *Simulator) Drops() *rain.Collection { return s.drops }

// Start takes over the display and populates the collection for the
// current geometry.
func (s *Simulator) Start() error {
	if s.started {
		return nil
	}
	if err := s.display.EnterRawMode(); err != nil {
		_ = s.display.RestoreMode()
		return err
	}
	s.started = true

	w, h := s.display.Size()
	if w <= 0 || h <= 0 {
		_, err := s.fail(ErrNoGeometry)
		return err
	}

	count, slow := rain.TargetCount(w, h)
	s.slow = slow
	if err := s.drops.Init(count); err != nil {
		_, err = s.fail(err)
		return err
	}
	for i := 0; i < count; i++ {
		if err := s.drops.Add(rain.NewDrop(w, h, slow, s.rng)); err != nil {
			_, err = s.fail(err)
			return err
		}
	}

	s.phase = Running
	return nil
}

// Frame advances and draws every drop once, then polls for the quit key.
// A pending resize moves the simulator to Resizing without drawing.
func (s *Simulator) Frame() (Phase, error) {
	if s.phase != Running {
		return s.phase, nil
	}
	if s.display.Resized() {
		s.phase = Resizing
		return s.phase, nil
	}

	w, h := s.display.Size()
	_, s.slow = rain.TargetCount(w, h)

	s.display.Clear()
	for i := 0; i < s.drops.Len(); i++ {
		d, err := s.drops.At(i)
		if err != nil {
			return s.fail(err)
		}
		d.Advance(h, s.rng)
		s.display.DrawChar(d.Row, d.Column, d.Glyph, d.ColorIndex)
	}
	s.display.Refresh()

	for {
		key, ok := s.display.PollKey()
		if !ok {
			break
		}
		if key == QuitKey {
			return s.Stop()
		}
	}
	return s.phase, nil
}

// Settle regenerates the whole collection for the geometry after a resize.
// It stays in Resizing while the terminal has no usable size.
func (s *Simulator) Settle() (Phase, error) {
	if s.phase != Resizing {
		return s.phase, nil
	}

	s.display.ClearResized()
	w, h := s.display.Size()
	if w <= 0 || h <= 0 {
		return s.phase, nil
	}

	count, slow := rain.TargetCount(w, h)
	s.slow = slow
	err := s.drops.ResizeTo(count, func() rain.Drop {
		return rain.NewDrop(w, h, slow, s.rng)
	})
	if err != nil {
		return s.fail(err)
	}

	s.phase = Running
	return s.phase, nil
}

// Stop releases the drops and the display. Calling it again is a no-op.
func (s *Simulator) Stop() (Phase, error) {
	if !s.started {
		s.phase = Stopped
		return s.phase, nil
	}
	s.drops.Destroy()
	s.phase = Stopped
	s.started = false
	return s.phase, s.display.RestoreMode()
}

func (s *Simulator) fail(err error) (Phase, error) {
	_, _ = s.Stop()
	return s.phase, err
}
