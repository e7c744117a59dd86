package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/daisyworld/internal/daisy"
	"github.com/san-kum/daisyworld/internal/sim"
)

func TestGrowthCurve(t *testing.T) {
	p := daisy.DefaultParams()

	pts, err := GrowthCurve(p, DefaultGrowthFrom, DefaultGrowthTo, DefaultGrowthIntervals)
	require.NoError(t, err)
	require.Len(t, pts, 20)

	assert.Equal(t, 0.0, pts[0].Celsius)
	assert.InDelta(t, 42.75, pts[19].Celsius, 1e-12)

	// 0 °C is below the 5 °C minimum
	assert.Equal(t, 0.0, pts[0].White)
	// 22.5 °C is the optimum, sampled at i = 10
	assert.InDelta(t, 22.5, pts[10].Celsius, 1e-12)
	assert.InDelta(t, 1.0, pts[10].White, 1e-9)
	assert.Equal(t, pts[10].White, pts[10].Black)

	for _, pt := range pts {
		assert.GreaterOrEqual(t, pt.White, 0.0)
		assert.LessOrEqual(t, pt.White, 1.0)
	}
}

func TestGrowthCurveDistinctSpecies(t *testing.T) {
	p := daisy.DefaultParams()
	p.TempOpt.Black = 30 + daisy.ZeroCelsius

	pts, err := GrowthCurve(p, 0, 45, 45)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pts[30].Black, 1e-9)
	assert.Less(t, pts[30].White, 1.0)
}

func TestGrowthCurveRejectsBadRange(t *testing.T) {
	_, err := GrowthCurve(daisy.DefaultParams(), 0, 45, 0)
	assert.Error(t, err)

	_, err = GrowthCurve(daisy.DefaultParams(), 45, 0, 20)
	assert.Error(t, err)
}

func TestHysteresis(t *testing.T) {
	p := daisy.DefaultParams()
	spec := sim.SweepSpec{Min: 0.5, Max: 1.7, Step: 0.02, GenerationsPerStep: 40, Reverse: true}

	res, err := sim.RunFluxSweep(p, p.FluxNominal, spec)
	require.NoError(t, err)

	rep, err := Hysteresis(res, DefaultHysteresisTolerance)
	require.NoError(t, err)
	require.Len(t, rep.Gap, res.Len())
	require.NotEmpty(t, rep.Loops)

	assert.Greater(t, rep.MaxGap, 20.0)

	var hot *Loop
	for i := range rep.Loops {
		l := &rep.Loops[i]
		assert.LessOrEqual(t, l.FluxLow, l.FluxHigh)
		if l.FluxLow <= 1.3*p.FluxNominal && 1.3*p.FluxNominal <= l.FluxHigh {
			hot = l
		}
	}
	require.NotNil(t, hot, "expected a loop around 1.3x nominal flux")
	assert.Greater(t, hot.MaxGap, 20.0)
}

func TestHysteresisWithoutDescent(t *testing.T) {
	p := daisy.DefaultParams()
	spec := sim.SweepSpec{Min: 0.8, Max: 1.2, Step: 0.1, GenerationsPerStep: 10}

	res, err := sim.RunFluxSweep(p, p.FluxNominal, spec)
	require.NoError(t, err)

	_, err = Hysteresis(res, 0.5)
	assert.ErrorIs(t, err, ErrNoDescent)
}

func TestHysteresisSyntheticLoops(t *testing.T) {
	asc := []daisy.State{{TempPlanet: 280}, {TempPlanet: 290}, {TempPlanet: 295}, {TempPlanet: 300}, {TempPlanet: 310}}
	desc := []daisy.State{{TempPlanet: 280}, {TempPlanet: 299}, {TempPlanet: 295}, {TempPlanet: 305}, {TempPlanet: 311}}
	res := &sim.SweepResult{
		Flux:       []float64{1, 2, 3, 4, 5},
		Ascending:  asc,
		Descending: desc,
	}

	rep, err := Hysteresis(res, 0.5)
	require.NoError(t, err)
	require.Len(t, rep.Loops, 2)

	assert.Equal(t, Loop{FluxLow: 2, FluxHigh: 2, MaxGap: 9}, rep.Loops[0])
	assert.Equal(t, Loop{FluxLow: 4, FluxHigh: 5, MaxGap: 5}, rep.Loops[1])
	assert.Equal(t, 9.0, rep.MaxGap)
	assert.Equal(t, 2.0, rep.MaxFlux)
}
