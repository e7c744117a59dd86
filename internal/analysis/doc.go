// Package analysis derives secondary curves from Daisyworld runs.
//
//   - [GrowthCurve]: growth rate of both species over a temperature range
//   - [Hysteresis]: gap between the ascending and descending flux sweeps
//
// # Hysteresis
//
// A sweep that walks the flux up and back down may settle on different
// equilibria at the same flux. The loop regions are where the two passes
// disagree:
//
//	res, _ := sim.RunFluxSweep(p, p.FluxNominal, spec)
//	h, _ := analysis.Hysteresis(res, 0.5)
//	for _, l := range h.Loops {
//	    fmt.Println(l.FluxLow, l.FluxHigh)
//	}
package analysis
