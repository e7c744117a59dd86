package sim

import "github.com/san-kum/daisyworld/internal/daisy"

const (
	DefaultGenerations = 40

	DefaultSweepMin   = 0.5
	DefaultSweepMax   = 1.7
	DefaultSweepStep  = 0.01
	maxSweepPoints    = 100000
	sweepEndTolerance = 1e-9 // in steps
)

// Generation pairs a state with its index in the run; index 0 is the
// initial condition.
type Generation struct {
	Index int         `json:"generation"`
	State daisy.State `json:"state"`
}

// SweepSpec describes a flux sweep as multiples of the nominal flux.
type SweepSpec struct {
	Min                float64 `yaml:"min" json:"min"`
	Max                float64 `yaml:"max" json:"max"`
	Step               float64 `yaml:"step" json:"step"`
	GenerationsPerStep int     `yaml:"generations_per_step" json:"generations_per_step"`
	Reverse            bool    `yaml:"reverse" json:"reverse"`
}

func DefaultSweepSpec() SweepSpec {
	return SweepSpec{
		Min:                DefaultSweepMin,
		Max:                DefaultSweepMax,
		Step:               DefaultSweepStep,
		GenerationsPerStep: DefaultGenerations,
		Reverse:            true,
	}
}

// SweepResult holds parallel slices indexed by flux, in ascending flux
// order. Descending is empty unless the sweep asked for a reverse pass.
type SweepResult struct {
	Multipliers []float64
	Flux        []float64
	Ascending   []daisy.State
	Descending  []daisy.State
	Barren      []daisy.State
}

// Len returns the number of flux points.
func (r *SweepResult) Len() int { return len(r.Flux) }

// Metric accumulates a summary value over the generations of a run.
type Metric interface {
	Name() string
	Observe(gen int, x daisy.State)
	Value() float64
	Reset()
}

// Observer is notified of every generation as it is produced.
type Observer interface {
	OnGeneration(gen int, x daisy.State)
}

// Result is the output of [Simulator.Run].
type Result struct {
	Flux        float64
	Generations []Generation
	Metrics     map[string]float64
}

// Final returns the last state of the run.
func (r *Result) Final() daisy.State {
	if len(r.Generations) == 0 {
		return daisy.State{}
	}
	return r.Generations[len(r.Generations)-1].State
}

// States returns the states of the run without their indices.
func (r *Result) States() []daisy.State {
	return States(r.Generations)
}

// States strips the generation indices.
func States(gens []Generation) []daisy.State {
	out := make([]daisy.State, len(gens))
	for i, g := range gens {
		out[i] = g.State
	}
	return out
}
