package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

type RunExport struct {
	Kind        string             `json:"kind"`
	Params      daisy.Params       `json:"params"`
	Flux        float64            `json:"flux"`
	Generations []sim.Generation   `json:"generations"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
}

type SweepPoint struct {
	Multiplier float64      `json:"multiplier"`
	Flux       float64      `json:"flux"`
	Ascending  daisy.State  `json:"ascending"`
	Descending *daisy.State `json:"descending,omitempty"`
	Barren     daisy.State  `json:"barren"`
}

type SweepExport struct {
	Kind   string        `json:"kind"`
	Params daisy.Params  `json:"params"`
	Sweep  sim.SweepSpec `json:"sweep"`
	Points []SweepPoint  `json:"points"`
}

func NewRunExport(p daisy.Params, result *sim.Result) RunExport {
	return RunExport{
		Kind:        KindConstant,
		Params:      p,
		Flux:        result.Flux,
		Generations: result.Generations,
		Metrics:     result.Metrics,
	}
}

func NewSweepExport(p daisy.Params, spec sim.SweepSpec, result *sim.SweepResult) SweepExport {
	hasDesc := len(result.Descending) == result.Len()
	points := make([]SweepPoint, result.Len())
	for i := range points {
		points[i] = SweepPoint{
			Multiplier: result.Multipliers[i],
			Flux:       result.Flux[i],
			Ascending:  result.Ascending[i],
			Barren:     result.Barren[i],
		}
		if hasDesc {
			d := result.Descending[i]
			points[i].Descending = &d
		}
	}
	return SweepExport{Kind: KindSweep, Params: p, Sweep: spec, Points: points}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
