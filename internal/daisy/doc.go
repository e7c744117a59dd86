// Package daisy implements the Daisyworld state recurrence.
//
// A planet is covered by bare ground, white daisies and black daisies. Each
// generation the package inverts Stefan-Boltzmann's law for the planet and
// for the two daisy patches, grows or shrinks the daisy areas according to
// a parabolic growth curve, and remixes the planetary albedo:
//
//   - [Params]: immutable planetary and biological parameters
//   - [State]: one generation snapshot (areas, albedo, temperatures)
//   - [Step]: the transition function, state(n) -> state(n+1)
//   - [Growth]: clamped growth rate of a species at a temperature
//   - [FluxAtDistance]: inverse-square law flux at an orbital distance
//
// # Example
//
//	p := daisy.DefaultParams()
//	x := daisy.InitialState(p.FluxNominal, p)
//	for i := 0; i < 40; i++ {
//	    x = daisy.Step(x, p.FluxNominal, p)
//	}
//
// Step is pure. Parameters are validated once with [Params.Validate] so the
// recurrence itself never has to fail.
package daisy
