// Package viz is the terminal dashboard for Daisyworld.
//
// The dashboard has two tabs:
//
//   - constant flux: temperatures and daisy areas over the generations of a
//     single run at the flux of the chosen orbital distance
//   - varying flux: equilibrium temperature and areas across a flux sweep,
//     with and without life
//
// Every slider change rebuilds the parameter set and recomputes the tab.
//
// # Key Bindings
//
//	Tab, 1, 2 - Switch tab
//	j/k       - Select slider
//	h/l       - Adjust slider
//	R         - Reset sliders of the tab
//	T         - Cycle color themes
//	Q         - Quit
package viz
