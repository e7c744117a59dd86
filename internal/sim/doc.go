// Package sim drives the Daisyworld recurrence.
//
// Two analyses are provided:
//
//   - [RunConstantFlux]: a fixed number of generations at one flux
//   - [RunFluxSweep]: equilibrium states across a range of fluxes, with a
//     no-life reference and an optional descending pass that exposes
//     hysteresis
//
// Both are pure functions of their inputs. [Simulator] wraps the
// constant-flux run with metric and observer hooks.
//
// The sweep runs a fixed number of generations per flux and does not test
// for convergence. Extreme parameter sets may be reported before they have
// settled.
package sim
