package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klassiq901/ThermoApp/internal/satwater"
	"github.com/Klassiq901/ThermoApp/internal/state"
)

func TestGasPVPath_FollowsProcessLaw(t *testing.T) {
	s1 := airState1(t)

	res, err := EvaluateIdealGas(s1, Declaration{Kind: Isothermal, VolumeRatio: 2})
	require.NoError(t, err)

	require.Len(t, res.PVPath, pathSamples)
	for _, pt := range res.PVPath {
		// P·v is constant along an isotherm.
		assert.InDelta(t, s1.P*s1.V, pt.X*pt.Y, 1e-6)
	}

	// Points run left to right on the v axis.
	for i := 1; i < len(res.PVPath); i++ {
		assert.GreaterOrEqual(t, res.PVPath[i].X, res.PVPath[i-1].X)
	}
}

func TestGasPVPath_CompressionStillOrdered(t *testing.T) {
	res, err := EvaluateIdealGas(airState1(t), Declaration{Kind: Adiabatic, VolumeRatio: 0.5})
	require.NoError(t, err)

	first, last := res.PVPath[0], res.PVPath[len(res.PVPath)-1]
	assert.Less(t, first.X, last.X)
	assert.Greater(t, first.Y, last.Y, "compression raises pressure on the left end")
}

func TestGasPVPath_IsochoricVertical(t *testing.T) {
	res, err := EvaluateIdealGas(airState1(t), Declaration{Kind: Isochoric, PressureRatio: 3})
	require.NoError(t, err)

	for _, pt := range res.PVPath {
		assert.Equal(t, res.State1.V, pt.X)
	}
}

func TestGasTSPath_DegenerateAxes(t *testing.T) {
	s1 := airState1(t)

	iso, err := EvaluateIdealGas(s1, Declaration{Kind: Isothermal, VolumeRatio: 2})
	require.NoError(t, err)
	for _, pt := range iso.TSPath {
		assert.InDelta(t, 300, pt.Y, 0.01, "isotherm is flat in T")
	}

	adi, err := EvaluateIdealGas(s1, Declaration{Kind: Adiabatic, VolumeRatio: 2})
	require.NoError(t, err)
	for _, pt := range adi.TSPath {
		assert.InDelta(t, adi.State1.S, pt.X, 1e-9, "adiabat is vertical in s")
	}
}

func TestSampleDome_WindowBracketsStates(t *testing.T) {
	dome := SampleDome(satwater.Default(), 120, 180)
	require.NotNil(t, dome)
	require.Len(t, dome.Liquid, domeSamples)
	require.Len(t, dome.VaporTS, domeSamples)

	assert.InDelta(t, 115, dome.LiquidTS[0].Y, 1e-9, "window opens 5 °C below")
	assert.InDelta(t, 185, dome.LiquidTS[domeSamples-1].Y, 1e-9, "window closes 5 °C above")

	// Liquid branch sits left of the vapor branch.
	for i := range dome.Liquid {
		assert.Less(t, dome.Liquid[i].X, dome.Vapor[i].X)
		assert.Less(t, dome.LiquidTS[i].X, dome.VaporTS[i].X)
	}
}

func TestSampleDome_SkipsSupercriticalStates(t *testing.T) {
	assert.Nil(t, SampleDome(satwater.Default(), 380, 120))
	assert.Nil(t, SampleDome(satwater.Default(), 120, 374))
}

func TestSampleDome_ClampsWindowNearBounds(t *testing.T) {
	dome := SampleDome(satwater.Default(), 2, 370)
	require.NotNil(t, dome)
	assert.InDelta(t, 0.01, dome.LiquidTS[0].Y, 1e-9)
	assert.InDelta(t, 374, dome.LiquidTS[domeSamples-1].Y, 1e-9)
}

func TestEvaluateWater_AttachesDome(t *testing.T) {
	s1 := &state.State{Substance: "water", T: 150, P: 4.76, V: 0.19, U: 1500, H: 1600, S: 4.3}
	s2 := &state.State{Substance: "water", T: 150, P: 4.76, V: 0.29, U: 2000, H: 2200, S: 5.5}

	res, err := EvaluateWater(s1, s2, Declaration{Kind: Isothermal}, satwater.Default())
	require.NoError(t, err)
	assert.NotNil(t, res.Dome)

	res, err = EvaluateWater(s1, s2, Declaration{Kind: Isothermal}, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Dome, "no sampler, no dome")
}
