package analysis

import (
	"fmt"

	"github.com/san-kum/daisyworld/internal/daisy"
)

const (
	DefaultGrowthFrom      = 0.0  // °C
	DefaultGrowthTo        = 45.0 // °C
	DefaultGrowthIntervals = 20
)

// GrowthPoint is the growth rate of both species at one temperature.
type GrowthPoint struct {
	Celsius float64 `json:"celsius"`
	White   float64 `json:"white"`
	Black   float64 `json:"black"`
}

// GrowthCurve samples the growth rates at intervals equally spaced points
// starting at from °C; the upper bound to is not included.
func GrowthCurve(p daisy.Params, from, to float64, intervals int) ([]GrowthPoint, error) {
	if intervals < 1 {
		return nil, fmt.Errorf("growth curve needs at least one interval, got %d", intervals)
	}
	if to <= from {
		return nil, fmt.Errorf("growth curve range is empty: %g..%g", from, to)
	}

	dT := (to - from) / float64(intervals)
	out := make([]GrowthPoint, intervals)
	for i := range out {
		c := from + float64(i)*dT
		k := c + daisy.ZeroCelsius
		out[i] = GrowthPoint{
			Celsius: c,
			White:   daisy.Growth(k, daisy.White, p),
			Black:   daisy.Growth(k, daisy.Black, p),
		}
	}
	return out, nil
}
