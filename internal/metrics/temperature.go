package metrics

import "github.com/san-kum/daisyworld/internal/daisy"

// MeanTemperature averages the planetary temperature over a run.
type MeanTemperature struct {
	name    string
	samples int
	total   float64
}

func NewMeanTemperature() *MeanTemperature {
	return &MeanTemperature{name: "mean_temp"}
}

func (m *MeanTemperature) Name() string { return m.name }

func (m *MeanTemperature) Observe(gen int, x daisy.State) {
	m.total += x.TempPlanet
	m.samples++
}

func (m *MeanTemperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanTemperature) Reset() {
	m.total = 0
	m.samples = 0
}

// FinalTemperature keeps the planetary temperature of the last generation.
type FinalTemperature struct {
	name string
	last float64
}

func NewFinalTemperature() *FinalTemperature {
	return &FinalTemperature{name: "final_temp"}
}

func (f *FinalTemperature) Name() string                   { return f.name }
func (f *FinalTemperature) Observe(gen int, x daisy.State) { f.last = x.TempPlanet }
func (f *FinalTemperature) Value() float64                 { return f.last }
func (f *FinalTemperature) Reset()                         { f.last = 0 }
