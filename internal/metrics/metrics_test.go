package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

func TestMeanTemperature(t *testing.T) {
	m := NewMeanTemperature()
	m.Observe(0, daisy.State{TempPlanet: 290})
	m.Observe(1, daisy.State{TempPlanet: 300})

	if got := m.Value(); math.Abs(got-295) > 1e-12 {
		t.Errorf("expected 295, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestFinalTemperature(t *testing.T) {
	f := NewFinalTemperature()
	f.Observe(0, daisy.State{TempPlanet: 290})
	f.Observe(1, daisy.State{TempPlanet: 301})
	if f.Value() != 301 {
		t.Errorf("expected 301, got %f", f.Value())
	}
}

func TestResidual(t *testing.T) {
	r := NewResidual()
	r.Observe(0, daisy.State{TempPlanet: 290})
	if r.Value() != 0 {
		t.Errorf("residual after one sample should be 0, got %f", r.Value())
	}

	r.Observe(1, daisy.State{TempPlanet: 292})
	r.Observe(2, daisy.State{TempPlanet: 291.5})
	if math.Abs(r.Value()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", r.Value())
	}

	r.Reset()
	r.Observe(0, daisy.State{TempPlanet: 100})
	if r.Value() != 0 {
		t.Errorf("reset should forget the previous temperature, got %f", r.Value())
	}
}

func TestCoverage(t *testing.T) {
	c := NewCoverage()
	c.Observe(0, daisy.State{AreaWhite: 0.3, AreaBlack: 0.2})
	if math.Abs(c.Value()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", c.Value())
	}
}

func TestHabitable(t *testing.T) {
	p := daisy.DefaultParams()
	h := NewHabitable(p)

	h.Observe(0, daisy.State{TempWhite: p.TempOpt.White, TempBlack: 400})
	h.Observe(1, daisy.State{TempWhite: 200, TempBlack: 200})

	if h.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", h.Value())
	}
}

func TestDefaultMetricsOnRun(t *testing.T) {
	p := daisy.DefaultParams()
	s := sim.New(p)
	for _, m := range Default(p) {
		s.AddMetric(m)
	}

	result, err := s.Run(p.FluxNominal, 40)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"final_temp", "mean_temp", "residual", "coverage", "habitable"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("metric %q missing", name)
		}
	}
	if result.Metrics["final_temp"] != result.Final().TempPlanet {
		t.Errorf("final_temp = %f, want %f", result.Metrics["final_temp"], result.Final().TempPlanet)
	}
	if result.Metrics["residual"] > 1e-3 {
		t.Errorf("run should have settled, residual %f", result.Metrics["residual"])
	}
	if result.Metrics["habitable"] != 1 {
		t.Errorf("nominal flux should be habitable throughout, got %f", result.Metrics["habitable"])
	}
}
