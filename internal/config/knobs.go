package config

import (
	"fmt"
	"sort"
)

// Knobs are the scalar settings that can be varied by name, for example by
// a parameter grid search.
var Knobs = map[string]func(*Config, float64){
	"albedo_white": func(c *Config, v float64) { c.Planet.Albedo.White = v },
	"albedo_black": func(c *Config, v float64) { c.Planet.Albedo.Black = v },
	"albedo_soil":  func(c *Config, v float64) { c.Planet.Albedo.None = v },
	"insulation":   func(c *Config, v float64) { c.Planet.Insulation = v },
	"distance":     func(c *Config, v float64) { c.Planet.DistanceAU = v },
	"flux_nominal": func(c *Config, v float64) { c.Planet.FluxNominal = v },
	"death_white":  func(c *Config, v float64) { c.Daisies.DeathRate.White = v },
	"death_black":  func(c *Config, v float64) { c.Daisies.DeathRate.Black = v },
	"min_area":     func(c *Config, v float64) { c.Daisies.MinArea = v },
}

// Set changes the named knob.
func (c *Config) Set(name string, v float64) error {
	set, ok := Knobs[name]
	if !ok {
		return fmt.Errorf("unknown setting: %s (available: %v)", name, KnobNames())
	}
	set(c, v)
	return nil
}

func KnobNames() []string {
	names := make([]string, 0, len(Knobs))
	for name := range Knobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
