package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/daisyworld/internal/daisy"
)

// Validate rejects sweeps that are empty or never advance.
func (s SweepSpec) Validate() error {
	switch {
	case math.IsNaN(s.Step) || s.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %g", daisy.ErrInvalidSweep, s.Step)
	case math.IsNaN(s.Min) || s.Min <= 0:
		return fmt.Errorf("%w: min must be positive, got %g", daisy.ErrInvalidSweep, s.Min)
	case math.IsNaN(s.Max) || math.IsInf(s.Max, 0) || s.Max < s.Min:
		return fmt.Errorf("%w: max %g below min %g", daisy.ErrInvalidSweep, s.Max, s.Min)
	case s.GenerationsPerStep < 1:
		return fmt.Errorf("%w: generations per step must be at least 1, got %d", daisy.ErrInvalidSweep, s.GenerationsPerStep)
	}
	if s.Min+s.Step == s.Min {
		return fmt.Errorf("%w: step %g too small to advance from %g", daisy.ErrInvalidSweep, s.Step, s.Min)
	}
	if n := s.span() + 1; n > maxSweepPoints {
		return fmt.Errorf("%w: %.0f flux points exceeds limit of %d", daisy.ErrInvalidSweep, n, maxSweepPoints)
	}
	return nil
}

// span is the number of whole steps between Min and Max. The end tolerance
// is measured in steps so a Max that is an exact multiple survives rounding.
func (s SweepSpec) span() float64 {
	return math.Floor((s.Max-s.Min)/s.Step + sweepEndTolerance)
}

// Multipliers lists the flux multiples visited by the sweep, Min first.
// Points are computed as Min + k*Step so rounding does not accumulate.
// An invalid spec yields no points.
func (s SweepSpec) Multipliers() []float64 {
	if s.Validate() != nil {
		return nil
	}
	n := int(s.span()) + 1
	out := make([]float64, n)
	for k := range out {
		out[k] = s.Min + float64(k)*s.Step
	}
	return out
}

// RunFluxSweep walks the flux upward from spec.Min to spec.Max times
// fluxNominal. Each flux continues from the previous flux's final state, so
// the result depends on the direction of travel. With spec.Reverse the
// sweep then walks back down from the high-flux equilibrium.
func RunFluxSweep(p daisy.Params, fluxNominal float64, spec SweepSpec) (*SweepResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := daisy.CheckFlux(fluxNominal); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	mults := spec.Multipliers()
	n := len(mults)
	res := &SweepResult{
		Multipliers: mults,
		Flux:        make([]float64, n),
		Ascending:   make([]daisy.State, n),
		Barren:      make([]daisy.State, n),
	}
	for i, m := range mults {
		res.Flux[i] = m * fluxNominal
		res.Barren[i] = daisy.Barren(res.Flux[i], p)
	}

	x := daisy.InitialState(res.Flux[0], p)
	for i, flux := range res.Flux {
		x = settle(x, flux, p, spec.GenerationsPerStep)
		res.Ascending[i] = x
	}

	if spec.Reverse {
		res.Descending = make([]daisy.State, n)
		for i := n - 1; i >= 0; i-- {
			x = settle(x, res.Flux[i], p, spec.GenerationsPerStep)
			res.Descending[i] = x
		}
	}
	return res, nil
}

// settle applies a fixed budget of generations at one flux.
func settle(x daisy.State, flux float64, p daisy.Params, generations int) daisy.State {
	for i := 0; i < generations; i++ {
		x = daisy.Step(x, flux, p)
	}
	return x
}
