package sim_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termrain/internal/rain"
	"github.com/san-kum/termrain/internal/sim"
)

var _ = Describe("Simulator", func() {
	var (
		display *fakeDisplay
		s       *sim.Simulator
	)

	BeforeEach(func() {
		display = newFakeDisplay(150, 15)
		s = sim.New(display, rand.New(rand.NewSource(42)))
	})

	Describe("Start", func() {
		It("populates the collection for the terminal geometry", func() {
			Expect(s.Start()).To(Succeed())
			Expect(s.Phase()).To(Equal(sim.Running))
			Expect(s.Slow()).To(BeTrue())
			Expect(s.Drops().Len()).To(Equal(113))
			Expect(s.Drops().Cap()).To(Equal(113))
			Expect(display.raw).To(BeTrue())
		})

		It("uses fast mode on large terminals", func() {
			display.width, display.height = 150, 50
			Expect(s.Start()).To(Succeed())
			Expect(s.Slow()).To(BeFalse())
			Expect(s.Drops().Len()).To(Equal(225))
		})

		It("restores the display when capabilities are missing", func() {
			display.rawErr = errNoColors
			Expect(s.Start()).To(MatchError(errNoColors))
			Expect(display.restores).To(Equal(1))
			Expect(s.Phase()).To(Equal(sim.Stopped))
		})

		It("fails and restores on a terminal without size", func() {
			display.width = 0
			Expect(s.Start()).To(MatchError(sim.ErrNoGeometry))
			Expect(display.raw).To(BeFalse())
			Expect(s.Phase()).To(Equal(sim.Stopped))
		})
	})

	Describe("Frame", func() {
		BeforeEach(func() {
			Expect(s.Start()).To(Succeed())
		})

		It("clears, draws every drop and refreshes", func() {
			phase, err := s.Frame()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Running))
			Expect(display.clears).To(Equal(1))
			Expect(display.refreshes).To(Equal(1))
			Expect(display.cells).To(HaveLen(s.Drops().Len()))

			for i, c := range display.cells {
				d, err := s.Drops().At(i)
				Expect(err).NotTo(HaveOccurred())
				Expect(c.row).To(Equal(d.Row))
				Expect(c.column).To(Equal(d.Column))
				Expect(c.glyph).To(Equal(d.Glyph))
				Expect(c.color).To(Equal(rain.ColorIndex(d.Speed)))
			}
		})

		It("keeps every drop within the terminal over many frames", func() {
			for n := 0; n < 200; n++ {
				_, err := s.Frame()
				Expect(err).NotTo(HaveOccurred())
			}
			for _, c := range display.cells {
				Expect(c.column).To(BeNumerically("<", display.width))
				Expect(c.row).To(BeNumerically("<", display.height-1))
			}
		})

		It("stops and restores the terminal on the quit key", func() {
			display.keys = []rune{'x', 'q'}
			phase, err := s.Frame()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Stopped))
			Expect(display.raw).To(BeFalse())
			Expect(s.Drops().Len()).To(BeZero())

			phase, err = s.Frame()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Stopped))
			Expect(display.clears).To(Equal(1))
		})

		It("ignores other keys", func() {
			display.keys = []rune{'a', 'Q'}
			phase, _ := s.Frame()
			Expect(phase).To(Equal(sim.Running))
			Expect(display.keys).To(BeEmpty())
		})

		It("recomputes slow mode from the current geometry", func() {
			display.width, display.height = 150, 50
			_, err := s.Frame()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Slow()).To(BeFalse())
			Expect(s.Drops().Len()).To(Equal(113))
		})
	})

	Describe("resize", func() {
		BeforeEach(func() {
			Expect(s.Start()).To(Succeed())
			_, _ = s.Frame()
		})

		It("moves to Resizing without drawing", func() {
			display.resize(60, 20)
			phase, err := s.Frame()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Resizing))
			Expect(display.clears).To(Equal(1))
		})

		It("regenerates the collection within the new bounds", func() {
			display.resize(60, 20)
			_, _ = s.Frame()

			phase, err := s.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Running))
			Expect(display.resized).To(BeFalse())
			Expect(s.Drops().Len()).To(Equal(45))
			Expect(s.Drops().Cap()).To(Equal(45))

			for i := 0; i < s.Drops().Len(); i++ {
				d, _ := s.Drops().At(i)
				Expect(d.Column).To(BeNumerically("<", 60))
				Expect(d.Row).To(BeNumerically("<", 20))
				Expect(d.Speed).To(BeNumerically("<=", 2))
			}

			_, err = s.Frame()
			Expect(err).NotTo(HaveOccurred())
			for _, c := range display.cells {
				Expect(c.column).To(BeNumerically("<", 60))
			}
		})

		It("waits while the terminal has no size", func() {
			display.resize(0, 0)
			_, _ = s.Frame()

			phase, err := s.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Resizing))
			Expect(s.Drops().Len()).To(Equal(113))

			display.resize(200, 60)
			phase, err = s.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Running))
			Expect(s.Drops().Len()).To(Equal(300))
		})

		It("is a no-op while running", func() {
			phase, err := s.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Running))
			Expect(s.Drops().Len()).To(Equal(113))
		})
	})

	Describe("Stop", func() {
		It("restores the display once", func() {
			Expect(s.Start()).To(Succeed())
			phase, err := s.Stop()
			Expect(err).NotTo(HaveOccurred())
			Expect(phase).To(Equal(sim.Stopped))
			_, _ = s.Stop()
			Expect(display.restores).To(Equal(1))
			Expect(s.Drops().Cap()).To(BeZero())
		})
	})
})

var _ = DescribeTable("Phase names",
	func(p sim.Phase, name string) {
		Expect(p.String()).To(Equal(name))
	},
	Entry("running", sim.Running, "running"),
	Entry("resizing", sim.Resizing, "resizing"),
	Entry("stopped", sim.Stopped, "stopped"),
	Entry("unknown", sim.Phase(9), "unknown"),
)
