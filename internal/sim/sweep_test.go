package sim

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/daisyworld/internal/daisy"
)

var _ = Describe("SweepSpec", func() {
	It("lists multipliers without accumulating rounding", func() {
		spec := SweepSpec{Min: 0.5, Max: 1.7, Step: 0.02, GenerationsPerStep: 40}
		m := spec.Multipliers()
		Expect(m).To(HaveLen(61))
		Expect(m[0]).To(Equal(0.5))
		Expect(m[60]).To(BeNumerically("~", 1.7, 1e-12))
	})

	It("includes a single point when min equals max", func() {
		spec := SweepSpec{Min: 1, Max: 1, Step: 0.1, GenerationsPerStep: 1}
		Expect(spec.Validate()).To(Succeed())
		Expect(spec.Multipliers()).To(Equal([]float64{1}))
	})

	It("does not pad a tiny step with points past max", func() {
		spec := SweepSpec{Min: 1, Max: 1, Step: 1e-12, GenerationsPerStep: 1}
		Expect(spec.Validate()).To(Succeed())
		Expect(spec.Multipliers()).To(Equal([]float64{1}))
	})

	It("stops at max when the step is below the end tolerance", func() {
		spec := SweepSpec{Min: 1, Max: 1 + 3.5e-12, Step: 1e-12, GenerationsPerStep: 1}
		Expect(spec.Validate()).To(Succeed())
		m := spec.Multipliers()
		Expect(m).To(HaveLen(4))
		Expect(m[3]).To(BeNumerically("<=", spec.Max+1e-15))
	})

	It("lists nothing for a spec that fails validation", func() {
		spec := SweepSpec{Min: 1, Max: 1, Step: 1e-17, GenerationsPerStep: 1}
		Expect(spec.Multipliers()).To(BeEmpty())
	})

	DescribeTable("rejects unusable sweeps",
		func(spec SweepSpec) {
			Expect(spec.Validate()).To(MatchError(daisy.ErrInvalidSweep))
		},
		Entry("zero step", SweepSpec{Min: 0.5, Max: 1.5, Step: 0, GenerationsPerStep: 40}),
		Entry("negative step", SweepSpec{Min: 0.5, Max: 1.5, Step: -0.1, GenerationsPerStep: 40}),
		Entry("zero min", SweepSpec{Min: 0, Max: 1.5, Step: 0.1, GenerationsPerStep: 40}),
		Entry("max below min", SweepSpec{Min: 1.5, Max: 0.5, Step: 0.1, GenerationsPerStep: 40}),
		Entry("no generations", SweepSpec{Min: 0.5, Max: 1.5, Step: 0.1, GenerationsPerStep: 0}),
		Entry("too many points", SweepSpec{Min: 0.5, Max: 1.5, Step: 1e-9, GenerationsPerStep: 1}),
		Entry("step lost in rounding", SweepSpec{Min: 1, Max: 1, Step: 1e-17, GenerationsPerStep: 1}),
		Entry("huge max", SweepSpec{Min: 0.5, Max: 1e300, Step: 0.1, GenerationsPerStep: 1}),
	)
})

var _ = Describe("RunFluxSweep", func() {
	var (
		p    daisy.Params
		spec SweepSpec
	)

	BeforeEach(func() {
		p = daisy.DefaultParams()
		spec = SweepSpec{Min: 0.5, Max: 1.7, Step: 0.02, GenerationsPerStep: 40, Reverse: true}
	})

	It("returns parallel sequences indexed by flux", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Len()).To(Equal(61))
		Expect(res.Ascending).To(HaveLen(61))
		Expect(res.Descending).To(HaveLen(61))
		Expect(res.Barren).To(HaveLen(61))
		Expect(res.Multipliers).To(HaveLen(61))
		for i := 1; i < res.Len(); i++ {
			Expect(res.Flux[i]).To(BeNumerically(">", res.Flux[i-1]))
		}
		Expect(res.Flux[0]).To(BeNumerically("~", 0.5*3668, 1e-9))
	})

	It("leaves the descending pass empty unless requested", func() {
		spec.Reverse = false
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Descending).To(BeEmpty())
	})

	It("computes the no-life curve from the soil albedo alone", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		q := p
		q.Albedo.White, q.Albedo.Black = 0.9, 0.1
		q.Insulation = 0.7
		q.DeathRate = daisy.Pair{White: 0.5, Black: 0.1}
		other, err := RunFluxSweep(q, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		for i := range res.Barren {
			Expect(res.Barren[i].TempPlanet).To(Equal(other.Barren[i].TempPlanet))
			Expect(res.Barren[i].AreaBare).To(Equal(1.0))
		}
	})

	It("keeps every equilibrium state physical", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		for _, states := range [][]daisy.State{res.Ascending, res.Descending} {
			for _, x := range states {
				Expect(x.AreaWhite + x.AreaBlack + x.AreaBare).To(BeNumerically("~", 1, 1e-9))
				Expect(x.AreaWhite).To(BeNumerically(">=", p.MinArea))
				Expect(x.AreaBlack).To(BeNumerically(">=", p.MinArea))
				Expect(x.IsValid()).To(BeTrue())
			}
		}
	})

	It("regulates temperature where daisies thrive", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		// multiplier 1.0 is index 25
		Expect(res.Multipliers[25]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(res.Ascending[25].Coverage()).To(BeNumerically(">", 0.5))
		Expect(res.Ascending[25].TempPlanet).To(BeNumerically("<", res.Barren[25].TempPlanet))
		Expect(math.Abs(res.Ascending[25].TempPlanet - res.Descending[25].TempPlanet)).To(BeNumerically("<", 0.05))
	})

	It("follows a different path on the way down", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		// multiplier 1.3 (index 40): white daisies still hold the planet cool
		// on the way up, while the way down arrives from a barren hot planet
		Expect(res.Multipliers[40]).To(BeNumerically("~", 1.3, 1e-12))
		up, down := res.Ascending[40], res.Descending[40]
		Expect(up.AreaWhite).To(BeNumerically(">", 0.5))
		Expect(down.AreaWhite).To(BeNumerically("~", p.MinArea, 1e-9))
		Expect(down.TempPlanet - up.TempPlanet).To(BeNumerically(">", 20))
	})

	It("is not equivalent to re-seeding every flux", func() {
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).NotTo(HaveOccurred())

		reseeded, err := RunConstantFlux(p, res.Flux[40], spec.GenerationsPerStep+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(reseeded[len(reseeded)-1].State).NotTo(Equal(res.Ascending[40]))
	})

	It("rejects a bad sweep before doing any work", func() {
		spec.Step = 0
		res, err := RunFluxSweep(p, 3668, spec)
		Expect(err).To(MatchError(daisy.ErrInvalidSweep))
		Expect(res).To(BeNil())
	})

	It("rejects a non-positive nominal flux", func() {
		_, err := RunFluxSweep(p, 0, spec)
		Expect(err).To(MatchError(daisy.ErrInvalidFlux))
	})
})
