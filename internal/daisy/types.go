package daisy

import "math"

// Species selects one of the two daisy colours.
type Species int

const (
	White Species = iota
	Black
)

func (s Species) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Pair holds a per-species value.
type Pair struct {
	White float64 `yaml:"white" json:"white"`
	Black float64 `yaml:"black" json:"black"`
}

// Of returns the value for s.
func (p Pair) Of(s Species) float64 {
	if s == Black {
		return p.Black
	}
	return p.White
}

// Albedo holds the reflectivity of the three surface types.
type Albedo struct {
	None  float64 `yaml:"none" json:"none"`
	White float64 `yaml:"white" json:"white"`
	Black float64 `yaml:"black" json:"black"`
}

// Of returns the albedo of a daisy species.
func (a Albedo) Of(s Species) float64 {
	if s == Black {
		return a.Black
	}
	return a.White
}

// Min returns the smallest of the three albedos.
func (a Albedo) Min() float64 { return math.Min(a.None, math.Min(a.White, a.Black)) }

// Max returns the largest of the three albedos.
func (a Albedo) Max() float64 { return math.Max(a.None, math.Max(a.White, a.Black)) }

// State is one generation of the planet. Areas are fractions of the surface
// and always sum to one; temperatures are in Kelvin.
type State struct {
	AreaWhite  float64 `json:"area_white"`
	AreaBlack  float64 `json:"area_black"`
	AreaBare   float64 `json:"area_bare"`
	AlbedoMean float64 `json:"albedo_mean"`
	TempWhite  float64 `json:"temp_white"`
	TempBlack  float64 `json:"temp_black"`
	TempPlanet float64 `json:"temp_planet"`
}

// Area returns the area covered by species s.
func (x State) Area(s Species) float64 {
	if s == Black {
		return x.AreaBlack
	}
	return x.AreaWhite
}

// Temp returns the local temperature of species s.
func (x State) Temp(s Species) float64 {
	if s == Black {
		return x.TempBlack
	}
	return x.TempWhite
}

// Coverage is the total daisy area.
func (x State) Coverage() float64 { return x.AreaWhite + x.AreaBlack }

// IsValid reports whether every field is finite.
func (x State) IsValid() bool {
	for _, v := range x.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Values flattens the state in the column order of [Columns].
func (x State) Values() []float64 {
	return []float64{x.AreaWhite, x.AreaBlack, x.AreaBare, x.AlbedoMean, x.TempWhite, x.TempBlack, x.TempPlanet}
}

// Columns names the entries of [State.Values].
var Columns = []string{"area_white", "area_black", "area_bare", "albedo_mean", "temp_white", "temp_black", "temp_planet"}

// StateFromValues is the inverse of [State.Values]. Missing trailing
// entries are left at zero.
func StateFromValues(v []float64) State {
	var x State
	fields := []*float64{&x.AreaWhite, &x.AreaBlack, &x.AreaBare, &x.AlbedoMean, &x.TempWhite, &x.TempBlack, &x.TempPlanet}
	for i := range fields {
		if i < len(v) {
			*fields[i] = v[i]
		}
	}
	return x
}
