package sim

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/daisyworld/internal/daisy"
)

type countingMetric struct {
	count int
	last  int
	sum   float64
}

func (c *countingMetric) Name() string { return "count" }
func (c *countingMetric) Observe(gen int, x daisy.State) {
	c.count++
	c.last = gen
	c.sum += x.TempPlanet
}
func (c *countingMetric) Value() float64 { return float64(c.count) }
func (c *countingMetric) Reset()         { c.count, c.last, c.sum = 0, 0, 0 }

type recordingObserver struct {
	gens []int
}

func (r *recordingObserver) OnGeneration(gen int, x daisy.State) { r.gens = append(r.gens, gen) }

var _ = Describe("RunConstantFlux", func() {
	var p daisy.Params

	BeforeEach(func() {
		p = daisy.DefaultParams()
	})

	It("returns one indexed state per generation starting from the seed", func() {
		gens, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())
		Expect(gens).To(HaveLen(40))

		for i, g := range gens {
			Expect(g.Index).To(Equal(i))
		}
		Expect(gens[0].State).To(Equal(daisy.InitialState(3668, p)))
		Expect(gens[0].State.AreaWhite).To(Equal(0.01))
		Expect(gens[0].State.AreaBlack).To(Equal(0.01))
		Expect(gens[0].State.AreaBare).To(BeNumerically("~", 0.98, 1e-12))
	})

	It("keeps areas conserved and above the floor", func() {
		gens, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())

		for _, g := range gens {
			x := g.State
			Expect(x.AreaWhite + x.AreaBlack + x.AreaBare).To(BeNumerically("~", 1, 1e-9))
			Expect(x.AreaWhite).To(BeNumerically(">=", p.MinArea))
			Expect(x.AreaBlack).To(BeNumerically(">=", p.MinArea))
			Expect(x.AreaWhite).To(BeNumerically("<=", 1))
			Expect(x.AreaBlack).To(BeNumerically("<=", 1))
			Expect(x.AlbedoMean).To(BeNumerically(">=", p.Albedo.Min()-1e-12))
			Expect(x.AlbedoMean).To(BeNumerically("<=", p.Albedo.Max()+1e-12))
		}
	})

	It("settles towards an equilibrium temperature", func() {
		gens, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())

		deltas := make([]float64, len(gens)-1)
		for i := range deltas {
			deltas[i] = math.Abs(gens[i+1].State.TempPlanet - gens[i].State.TempPlanet)
		}

		peak := 0.0
		for _, d := range deltas[:20] {
			peak = math.Max(peak, d)
		}
		for i := 20; i < len(deltas); i++ {
			Expect(deltas[i]).To(BeNumerically("<", deltas[i-1]), "generation %d", i+1)
		}
		Expect(deltas[len(deltas)-1]).To(BeNumerically("<", 1e-3))
		Expect(deltas[len(deltas)-1]).To(BeNumerically("<", peak/100))
	})

	It("is deterministic", func() {
		a, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())
		b, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("collapses local temperatures without insulation", func() {
		p.Insulation = 0
		gens, err := RunConstantFlux(p, 3668, 40)
		Expect(err).NotTo(HaveOccurred())

		for _, g := range gens {
			Expect(g.State.TempWhite).To(Equal(g.State.TempPlanet))
			Expect(g.State.TempBlack).To(Equal(g.State.TempPlanet))
		}
	})

	It("returns a single seed state for one generation", func() {
		gens, err := RunConstantFlux(p, 3668, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(gens).To(HaveLen(1))
	})

	DescribeTable("rejects invalid input before running",
		func(edit func(p *daisy.Params), flux float64, generations int, target error) {
			edit(&p)
			gens, err := RunConstantFlux(p, flux, generations)
			Expect(err).To(MatchError(target))
			Expect(gens).To(BeNil())
		},
		Entry("zero flux", func(*daisy.Params) {}, 0.0, 40, daisy.ErrInvalidFlux),
		Entry("negative flux", func(*daisy.Params) {}, -10.0, 40, daisy.ErrInvalidFlux),
		Entry("zero generations", func(*daisy.Params) {}, 3668.0, 0, daisy.ErrInvalidGenerations),
		Entry("albedo out of range", func(p *daisy.Params) { p.Albedo.White = 1.1 }, 3668.0, 40, daisy.ErrInvalidParams),
		Entry("degenerate growth curve", func(p *daisy.Params) { p.TempMin.Black = p.TempOpt.Black }, 3668.0, 40, daisy.ErrInvalidParams),
	)
})

var _ = Describe("Simulator", func() {
	It("feeds every generation to metrics and observers", func() {
		s := New(daisy.DefaultParams())
		m := &countingMetric{}
		obs := &recordingObserver{}
		s.AddMetric(m)
		s.AddObserver(obs)

		result, err := s.Run(3668, 25)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Generations).To(HaveLen(25))
		Expect(result.Metrics).To(HaveKeyWithValue("count", 25.0))
		Expect(m.last).To(Equal(24))
		Expect(obs.gens).To(HaveLen(25))
		Expect(obs.gens[0]).To(Equal(0))
		Expect(result.Final()).To(Equal(result.Generations[24].State))
		Expect(result.States()).To(HaveLen(25))
	})

	It("resets metrics between runs", func() {
		s := New(daisy.DefaultParams())
		m := &countingMetric{}
		s.AddMetric(m)

		_, err := s.Run(3668, 10)
		Expect(err).NotTo(HaveOccurred())
		result, err := s.Run(3668, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics["count"]).To(Equal(10.0))
	})

	It("propagates configuration errors", func() {
		p := daisy.DefaultParams()
		p.Insulation = -1
		_, err := New(p).Run(3668, 10)
		Expect(err).To(MatchError(daisy.ErrInvalidParams))
	})

	It("formats simulation errors", func() {
		err := SimError{Generation: 3, Flux: 3668, Message: "invalid state (NaN/Inf)"}
		Expect(err.Error()).To(Equal("generation 3 (flux=3668.00): invalid state (NaN/Inf)"))
	})
})
