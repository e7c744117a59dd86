package metrics

import "github.com/san-kum/daisyworld/internal/daisy"

// Coverage reports the daisy-covered area of the last generation.
type Coverage struct {
	name string
	last float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string                   { return c.name }
func (c *Coverage) Observe(gen int, x daisy.State) { c.last = x.Coverage() }
func (c *Coverage) Value() float64                 { return c.last }
func (c *Coverage) Reset()                         { c.last = 0 }

// Habitable is the fraction of generations in which at least one species
// could grow at its local temperature.
type Habitable struct {
	name      string
	params    daisy.Params
	habitable int
	samples   int
}

func NewHabitable(p daisy.Params) *Habitable {
	return &Habitable{name: "habitable", params: p}
}

func (h *Habitable) Name() string { return h.name }

func (h *Habitable) Observe(gen int, x daisy.State) {
	h.samples++
	for _, s := range []daisy.Species{daisy.White, daisy.Black} {
		if daisy.Growth(x.Temp(s), s, h.params) > 0 {
			h.habitable++
			return
		}
	}
}

func (h *Habitable) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return float64(h.habitable) / float64(h.samples)
}

func (h *Habitable) Reset() {
	h.habitable = 0
	h.samples = 0
}
