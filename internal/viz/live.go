package viz

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/rain"
	"github.com/san-kum/termrain/internal/sim"
)

type TickMsg time.Time

type settleMsg time.Time

// Model connects the simulator to the Bubble Tea event loop. Frames are
// ticks FrameDelay apart; a resize waits SettleDelay before regenerating.
type Model struct {
	sim     *sim.Simulator
	screen  *Screen
	cfg     *config.Config
	started bool
	err     error
}

func NewModel(s *sim.Simulator, screen *Screen, cfg *config.Config) Model {
	return Model{
		sim:    s,
		screen: screen,
		cfg:    cfg,
	}
}

// Init waits for the first window size before starting.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.started {
			m.screen.NotifyResize(msg.Width, msg.Height)
			return m, tea.ClearScreen
		}
		m.screen.SetSize(msg.Width, msg.Height)
		if msg.Width <= 0 || msg.Height <= 0 {
			return m, nil
		}
		m.started = true
		if err := m.sim.Start(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			_, err := m.sim.Stop()
			m.err = err
			return m, tea.Quit
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.screen.PushKey(r)
			}
		}
		return m, nil
	case TickMsg:
		return m.next(m.sim.Frame())
	case settleMsg:
		return m.next(m.sim.Settle())
	}
	return m, nil
}

func (m Model) next(phase sim.Phase, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	switch phase {
	case sim.Running:
		return m, m.tick()
	case sim.Resizing:
		return m, m.settle()
	}
	return m, tea.Quit
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDelay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) settle() tea.Cmd {
	return tea.Tick(m.cfg.SettleDelay, func(t time.Time) tea.Msg { return settleMsg(t) })
}

func (m Model) View() string {
	return m.screen.View()
}

// Run shows the rain until the user quits. The terminal is restored before
// Run returns, so the caller can print the returned error.
func Run(cfg *config.Config, rng rain.Rand) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen := NewScreen(lipgloss.NewRenderer(os.Stdout), cfg.MinColors)
	m := NewModel(sim.New(screen, rng), screen, cfg)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
