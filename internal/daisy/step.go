package daisy

import "math"

// InitialState seeds both species at [InitialArea] and derives albedo and
// temperatures at flux.
func InitialState(flux float64, p Params) State {
	return Seed(InitialArea, InitialArea, flux, p)
}

// Barren is the planet without life at flux: bare ground only. Its
// temperature depends on the soil albedo alone.
func Barren(flux float64, p Params) State {
	return Seed(0, 0, flux, p)
}

// Seed builds a state from the given daisy areas.
func Seed(white, black, flux float64, p Params) State {
	x := State{AreaWhite: white, AreaBlack: black, AreaBare: 1 - white - black}
	x.AlbedoMean = mixAlbedo(x, p.Albedo)
	return withTemperatures(x, flux, p)
}

// Step advances x by one generation at the given flux. The input is not
// modified; the returned state carries the updated temperatures, areas and
// albedo.
func Step(x State, flux float64, p Params) State {
	next := withTemperatures(x, flux, p)

	bare := next.AreaBare
	next.AreaWhite = grow(next.AreaWhite, Growth(next.TempWhite, White, p), bare, p.DeathRate.White, p.MinArea)
	next.AreaBlack = grow(next.AreaBlack, Growth(next.TempBlack, Black, p), bare, p.DeathRate.Black, p.MinArea)
	next.AreaBare = 1 - next.AreaWhite - next.AreaBlack

	next.AlbedoMean = mixAlbedo(next, p.Albedo)
	return next
}

// Growth is the parabolic growth rate of species s at temperature t (K):
// 1 at the optimum, 0 at the minimum and at the mirrored maximum, never
// negative.
func Growth(t float64, s Species, p Params) float64 {
	opt := p.TempOpt.Of(s)
	r := (t - opt) / (p.TempMin.Of(s) - opt)
	g := 1 - r*r
	if g < 0 {
		return 0
	}
	return g
}

// Temperature inverts Stefan-Boltzmann's law for an absorbed flux.
func Temperature(flux float64, p Params) float64 {
	return math.Sqrt(math.Sqrt(flux / p.StefanBoltzmann))
}

func withTemperatures(x State, flux float64, p Params) State {
	fp := outgoing(flux, x.AlbedoMean, p)
	x.TempPlanet = Temperature(fp, p)

	fw := outgoing(flux, p.Albedo.White, p)
	x.TempWhite = Temperature(p.Insulation*(fw-fp)+fp, p)

	fb := outgoing(flux, p.Albedo.Black, p)
	x.TempBlack = Temperature(p.Insulation*(fb-fp)+fp, p)
	return x
}

func outgoing(flux, albedo float64, p Params) float64 {
	return flux * (1 - albedo) * p.AreaRatio / p.Emissivity
}

func grow(area, growth, bare, death, minArea float64) float64 {
	if area <= 0 {
		return area
	}
	area += area * (growth*bare - death)
	if area < minArea {
		area = minArea
	}
	return area
}

func mixAlbedo(x State, a Albedo) float64 {
	return a.None*x.AreaBare + a.White*x.AreaWhite + a.Black*x.AreaBlack
}
