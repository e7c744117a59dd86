package daisy

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params rejected: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(p *Params)
		field string
	}{
		{"soil albedo above one", func(p *Params) { p.Albedo.None = 1.2 }, "albedo.none"},
		{"negative white albedo", func(p *Params) { p.Albedo.White = -0.1 }, "albedo.white"},
		{"black albedo NaN", func(p *Params) { p.Albedo.Black = math.NaN() }, "albedo.black"},
		{"zero flux", func(p *Params) { p.FluxNominal = 0 }, "flux_nominal"},
		{"negative emissivity", func(p *Params) { p.Emissivity = -1 }, "emissivity"},
		{"zero area ratio", func(p *Params) { p.AreaRatio = 0 }, "area_ratio"},
		{"insulation above one", func(p *Params) { p.Insulation = 1.5 }, "insulation"},
		{"death rate above one", func(p *Params) { p.DeathRate.White = 2 }, "death_rate.white"},
		{"negative death rate", func(p *Params) { p.DeathRate.Black = -0.1 }, "death_rate.black"},
		{"min area too large", func(p *Params) { p.MinArea = 0.6 }, "min_area"},
		{"degenerate white curve", func(p *Params) { p.TempMin.White = p.TempOpt.White }, "temp_min.white"},
		{"degenerate black curve", func(p *Params) { p.TempOpt.Black = p.TempMin.Black }, "temp_min.black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.edit(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParamError, got %T", err)
			}
			if pe.Field != tt.field {
				t.Errorf("field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	p := DefaultParams()
	p.Albedo = Albedo{None: 0, White: 1, Black: 0}
	p.Insulation = 1
	p.DeathRate = Pair{White: 0, Black: 1}
	p.MinArea = 0

	if err := p.Validate(); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}
}

func TestFluxAtDistance(t *testing.T) {
	tests := []struct {
		au   float64
		want float64
	}{
		{1, 3668},
		{2, 917},
		{0.5, 14672},
	}
	for _, tt := range tests {
		got, err := FluxAtDistance(3668, tt.au)
		if err != nil {
			t.Fatalf("FluxAtDistance(%f): %v", tt.au, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FluxAtDistance(%f) = %f, want %f", tt.au, got, tt.want)
		}
	}

	for _, au := range []float64{0, -1, math.NaN()} {
		if _, err := FluxAtDistance(3668, au); !errors.Is(err, ErrInvalidDistance) {
			t.Errorf("FluxAtDistance(%f): expected ErrInvalidDistance, got %v", au, err)
		}
	}
}

func TestCheckFlux(t *testing.T) {
	if err := CheckFlux(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, f := range []float64{0, -3668, math.Inf(1), math.NaN()} {
		if err := CheckFlux(f); !errors.Is(err, ErrInvalidFlux) {
			t.Errorf("CheckFlux(%f): expected ErrInvalidFlux, got %v", f, err)
		}
	}
}

func TestParamErrorMessage(t *testing.T) {
	err := &ParamError{Field: "insulation", Value: 2, Reason: "must be in [0, 1]"}
	want := "daisy: invalid parameters: insulation=2 must be in [0, 1]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
