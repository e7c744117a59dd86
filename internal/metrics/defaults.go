package metrics

import (
	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

// Default returns the metrics recorded for every constant-flux run.
func Default(p daisy.Params) []sim.Metric {
	return []sim.Metric{
		NewFinalTemperature(),
		NewMeanTemperature(),
		NewResidual(),
		NewCoverage(),
		NewHabitable(p),
	}
}
