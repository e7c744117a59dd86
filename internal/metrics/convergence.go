package metrics

import (
	"math"

	"github.com/san-kum/daisyworld/internal/daisy"
)

// Residual is the absolute planetary temperature change over the last
// generation. It only reports how settled a run is; nothing stops on it.
type Residual struct {
	name    string
	prev    float64
	delta   float64
	samples int
}

func NewResidual() *Residual {
	return &Residual{name: "residual"}
}

func (r *Residual) Name() string { return r.name }

func (r *Residual) Observe(gen int, x daisy.State) {
	if r.samples > 0 {
		r.delta = math.Abs(x.TempPlanet - r.prev)
	}
	r.prev = x.TempPlanet
	r.samples++
}

func (r *Residual) Value() float64 { return r.delta }

func (r *Residual) Reset() {
	r.prev = 0
	r.delta = 0
	r.samples = 0
}
