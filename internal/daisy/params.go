package daisy

import (
	"fmt"
	"math"
)

const (
	StefanBoltzmann = 5.670373e-8 // W m^-2 K^-4
	ZeroCelsius     = 273.15

	DefaultFluxNominal = 3668.0 // W/m^2 at 1 AU
	DefaultAreaRatio   = 0.25   // cross section / surface of a sphere
	DefaultEmissivity  = 1.0
	DefaultInsulation  = 0.2
	DefaultDeathRate   = 0.3
	DefaultMinArea     = 0.01
	DefaultTempOpt     = 22.5 + ZeroCelsius
	DefaultTempMin     = 5 + ZeroCelsius

	InitialArea = 0.01 // seed area of each species
)

// Params is the parameter set of one run. It is a plain value: copies never
// share state, so every recomputation gets its own.
type Params struct {
	FluxNominal     float64 `json:"flux_nominal"`
	Albedo          Albedo  `json:"albedo"`
	AreaRatio       float64 `json:"area_ratio"`
	Emissivity      float64 `json:"emissivity"`
	StefanBoltzmann float64 `json:"stefan_boltzmann"`
	Insulation      float64 `json:"insulation"`
	DeathRate       Pair    `json:"death_rate"`
	MinArea         float64 `json:"min_area"`
	TempMin         Pair    `json:"temp_min"`
	TempOpt         Pair    `json:"temp_opt"`
}

// DefaultParams returns the classic Daisyworld setup: equal growth curves for
// both species, white daisies brighter and black daisies darker than soil.
func DefaultParams() Params {
	return Params{
		FluxNominal:     DefaultFluxNominal,
		Albedo:          Albedo{None: 0.5, White: 0.75, Black: 0.25},
		AreaRatio:       DefaultAreaRatio,
		Emissivity:      DefaultEmissivity,
		StefanBoltzmann: StefanBoltzmann,
		Insulation:      DefaultInsulation,
		DeathRate:       Pair{White: DefaultDeathRate, Black: DefaultDeathRate},
		MinArea:         DefaultMinArea,
		TempMin:         Pair{White: DefaultTempMin, Black: DefaultTempMin},
		TempOpt:         Pair{White: DefaultTempOpt, Black: DefaultTempOpt},
	}
}

// Validate rejects parameter sets the recurrence cannot evaluate: albedos
// outside [0,1] would make the radiated flux negative, and equal minimum and
// optimum temperatures would divide by zero in the growth curve.
func (p Params) Validate() error {
	if err := positive("flux_nominal", p.FluxNominal); err != nil {
		return err
	}
	albedos := []struct {
		name string
		v    float64
	}{
		{"albedo.none", p.Albedo.None},
		{"albedo.white", p.Albedo.White},
		{"albedo.black", p.Albedo.Black},
	}
	for _, a := range albedos {
		if err := unit(a.name, a.v); err != nil {
			return err
		}
	}
	if err := positive("area_ratio", p.AreaRatio); err != nil {
		return err
	}
	if err := positive("emissivity", p.Emissivity); err != nil {
		return err
	}
	if err := positive("stefan_boltzmann", p.StefanBoltzmann); err != nil {
		return err
	}
	if err := unit("insulation", p.Insulation); err != nil {
		return err
	}
	if err := unit("death_rate.white", p.DeathRate.White); err != nil {
		return err
	}
	if err := unit("death_rate.black", p.DeathRate.Black); err != nil {
		return err
	}
	if math.IsNaN(p.MinArea) || p.MinArea < 0 || p.MinArea >= 0.5 {
		return &ParamError{Field: "min_area", Value: p.MinArea, Reason: "must be in [0, 0.5)"}
	}
	for _, s := range []Species{White, Black} {
		tmin, topt := p.TempMin.Of(s), p.TempOpt.Of(s)
		if err := positive("temp_min."+s.String(), tmin); err != nil {
			return err
		}
		if err := positive("temp_opt."+s.String(), topt); err != nil {
			return err
		}
		if tmin == topt {
			return &ParamError{Field: "temp_min." + s.String(), Value: tmin, Reason: "must differ from temp_opt"}
		}
	}
	return nil
}

// FluxAtDistance scales a flux given at 1 AU to an orbital distance in AU.
func FluxAtDistance(base, au float64) (float64, error) {
	if math.IsNaN(au) || au <= 0 {
		return 0, fmt.Errorf("%w, got %g AU", ErrInvalidDistance, au)
	}
	return base / (au * au), nil
}

// CheckFlux rejects non-positive or non-finite fluxes.
func CheckFlux(flux float64) error {
	if math.IsNaN(flux) || math.IsInf(flux, 0) || flux <= 0 {
		return fmt.Errorf("%w, got %g", ErrInvalidFlux, flux)
	}
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ParamError{Field: name, Value: v, Reason: "must be positive"}
	}
	return nil
}

func unit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ParamError{Field: name, Value: v, Reason: "must be in [0, 1]"}
	}
	return nil
}
