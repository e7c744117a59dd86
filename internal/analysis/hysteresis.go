package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/daisyworld/internal/sim"
)

// DefaultHysteresisTolerance is the temperature gap in K below which the two
// sweep directions count as agreeing.
const DefaultHysteresisTolerance = 0.5

// ErrNoDescent is returned when a sweep was run without its reverse pass.
var ErrNoDescent = errors.New("analysis: sweep has no descending pass")

// Loop is a contiguous flux range where the two sweep directions disagree.
type Loop struct {
	FluxLow  float64 `json:"flux_low"`
	FluxHigh float64 `json:"flux_high"`
	MaxGap   float64 `json:"max_gap"`
}

// HysteresisReport compares the ascending and descending sweeps.
type HysteresisReport struct {
	Flux    []float64 `json:"flux"`
	Gap     []float64 `json:"gap"` // descending minus ascending planet temperature, K
	Loops   []Loop    `json:"loops"`
	MaxGap  float64   `json:"max_gap"`
	MaxFlux float64   `json:"max_flux"`
}

// Hysteresis reports where |descending - ascending| planet temperature
// exceeds tol.
func Hysteresis(res *sim.SweepResult, tol float64) (*HysteresisReport, error) {
	if len(res.Descending) != len(res.Ascending) || len(res.Descending) == 0 {
		return nil, ErrNoDescent
	}

	rep := &HysteresisReport{
		Flux: res.Flux,
		Gap:  make([]float64, res.Len()),
	}

	var cur *Loop
	for i := range res.Flux {
		gap := res.Descending[i].TempPlanet - res.Ascending[i].TempPlanet
		rep.Gap[i] = gap
		abs := math.Abs(gap)

		if abs > rep.MaxGap {
			rep.MaxGap = abs
			rep.MaxFlux = res.Flux[i]
		}

		if abs <= tol {
			cur = nil
			continue
		}
		if cur == nil {
			rep.Loops = append(rep.Loops, Loop{FluxLow: res.Flux[i]})
			cur = &rep.Loops[len(rep.Loops)-1]
		}
		cur.FluxHigh = res.Flux[i]
		cur.MaxGap = math.Max(cur.MaxGap, abs)
	}
	return rep, nil
}
