package sim

import (
	"fmt"

	"github.com/san-kum/daisyworld/internal/daisy"
)

// RunConstantFlux seeds the planet at flux and applies the transition
// function generations-1 times at that same flux.
func RunConstantFlux(p daisy.Params, flux float64, generations int) ([]Generation, error) {
	if err := validateRun(p, flux, generations); err != nil {
		return nil, err
	}

	out := make([]Generation, 0, generations)
	x := daisy.InitialState(flux, p)
	out = append(out, Generation{Index: 0, State: x})

	for i := 1; i < generations; i++ {
		x = daisy.Step(x, flux, p)
		out = append(out, Generation{Index: i, State: x})
	}
	return out, nil
}

func validateRun(p daisy.Params, flux float64, generations int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := daisy.CheckFlux(flux); err != nil {
		return err
	}
	if generations < 1 {
		return fmt.Errorf("%w, got %d", daisy.ErrInvalidGenerations, generations)
	}
	return nil
}

// Simulator runs constant-flux experiments for one parameter set and feeds
// every generation to its metrics and observers.
type Simulator struct {
	params    daisy.Params
	metrics   []Metric
	observers []Observer
}

func New(p daisy.Params) *Simulator {
	return &Simulator{
		params:    p,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Params returns the parameter set the simulator was built with.
func (s *Simulator) Params() daisy.Params { return s.params }

func (s *Simulator) Run(flux float64, generations int) (*Result, error) {
	gens, err := RunConstantFlux(s.params, flux, generations)
	if err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Flux:        flux,
		Generations: gens,
		Metrics:     make(map[string]float64, len(s.metrics)),
	}

	for _, g := range gens {
		if !g.State.IsValid() {
			return result, SimError{Generation: g.Index, Flux: flux, Message: "invalid state (NaN/Inf)"}
		}
		for _, m := range s.metrics {
			m.Observe(g.Index, g.State)
		}
		for _, obs := range s.observers {
			obs.OnGeneration(g.Index, g.State)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// SimError reports a state that left the numeric domain.
type SimError struct {
	Generation int
	Flux       float64
	Message    string
}

func (e SimError) Error() string {
	return fmt.Sprintf("generation %d (flux=%.2f): %s", e.Generation, e.Flux, e.Message)
}
