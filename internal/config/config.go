package config

import (
	"fmt"
	"os"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDistance    = 1.0
	DefaultGenerations = sim.DefaultGenerations
)

type Config struct {
	Name    string        `yaml:"name,omitempty"`
	Planet  PlanetConfig  `yaml:"planet"`
	Daisies DaisyConfig   `yaml:"daisies"`
	Run     RunConfig     `yaml:"run"`
	Sweep   sim.SweepSpec `yaml:"sweep"`
}

type PlanetConfig struct {
	FluxNominal     float64      `yaml:"flux_nominal"`
	DistanceAU      float64      `yaml:"distance_au"`
	Albedo          daisy.Albedo `yaml:"albedo"`
	AreaRatio       float64      `yaml:"area_ratio"`
	Emissivity      float64      `yaml:"emissivity"`
	StefanBoltzmann float64      `yaml:"stefan_boltzmann"`
	Insulation      float64      `yaml:"insulation"`
}

// DaisyConfig holds the growth curve; temperatures are in Kelvin.
type DaisyConfig struct {
	DeathRate daisy.Pair `yaml:"death_rate"`
	MinArea   float64    `yaml:"min_area"`
	TempMin   daisy.Pair `yaml:"temp_min"`
	TempOpt   daisy.Pair `yaml:"temp_opt"`
}

type RunConfig struct {
	Generations int `yaml:"generations"`
}

func DefaultConfig() *Config {
	p := daisy.DefaultParams()
	return &Config{
		Name: "classic",
		Planet: PlanetConfig{
			FluxNominal:     p.FluxNominal,
			DistanceAU:      DefaultDistance,
			Albedo:          p.Albedo,
			AreaRatio:       p.AreaRatio,
			Emissivity:      p.Emissivity,
			StefanBoltzmann: p.StefanBoltzmann,
			Insulation:      p.Insulation,
		},
		Daisies: DaisyConfig{
			DeathRate: p.DeathRate,
			MinArea:   p.MinArea,
			TempMin:   p.TempMin,
			TempOpt:   p.TempOpt,
		},
		Run:   RunConfig{Generations: DefaultGenerations},
		Sweep: sim.DefaultSweepSpec(),
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Params builds and validates the parameter set described by c.
func (c *Config) Params() (daisy.Params, error) {
	p := daisy.Params{
		FluxNominal:     c.Planet.FluxNominal,
		Albedo:          c.Planet.Albedo,
		AreaRatio:       c.Planet.AreaRatio,
		Emissivity:      c.Planet.Emissivity,
		StefanBoltzmann: c.Planet.StefanBoltzmann,
		Insulation:      c.Planet.Insulation,
		DeathRate:       c.Daisies.DeathRate,
		MinArea:         c.Daisies.MinArea,
		TempMin:         c.Daisies.TempMin,
		TempOpt:         c.Daisies.TempOpt,
	}
	if err := p.Validate(); err != nil {
		return daisy.Params{}, err
	}
	return p, nil
}

// Flux is the stellar flux at the configured orbital distance.
func (c *Config) Flux() (float64, error) {
	return daisy.FluxAtDistance(c.Planet.FluxNominal, c.Planet.DistanceAU)
}

// SweepSpec returns the sweep section.
func (c *Config) SweepSpec() sim.SweepSpec {
	return c.Sweep
}

// Validate checks everything a run or sweep would reject.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if _, err := c.Flux(); err != nil {
		return err
	}
	if c.Run.Generations < 1 {
		return fmt.Errorf("%w, got %d", daisy.ErrInvalidGenerations, c.Run.Generations)
	}
	return c.Sweep.Validate()
}
