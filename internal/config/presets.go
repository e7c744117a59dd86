package config

import "sort"

// Presets are named variations of the default configuration.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"isothermal": func(c *Config) {
		c.Planet.Insulation = 0
	},
	"insulated": func(c *Config) {
		c.Planet.Insulation = 1
	},
	"dark-soil": func(c *Config) {
		c.Planet.Albedo.None = 0.3
	},
	"bright-soil": func(c *Config) {
		c.Planet.Albedo.None = 0.7
	},
	"close-orbit": func(c *Config) {
		c.Planet.DistanceAU = 0.9
	},
	"far-orbit": func(c *Config) {
		c.Planet.DistanceAU = 1.1
	},
	"hardy": func(c *Config) {
		c.Daisies.DeathRate.White = 0.1
		c.Daisies.DeathRate.Black = 0.1
	},
	"fine-sweep": func(c *Config) {
		c.Sweep.Step = 0.002
		c.Sweep.GenerationsPerStep = 100
	},
}

// GetPreset returns a fresh configuration for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Name = name
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
