package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klassiq901/ThermoApp/internal/if97"
	"github.com/Klassiq901/ThermoApp/internal/satwater"
)

func tableResolver() *WaterResolver {
	return NewWaterResolver(satwater.Default(), if97.Unavailable())
}

func exactResolver() *WaterResolver {
	return NewWaterResolver(satwater.Default(), if97.NewFormulation())
}

func TestResolve_PhaseClassificationBoundary(t *testing.T) {
	// 1.0142 bar is a table row: Tsat is exactly 100 °C.
	const p = 1.0142

	tests := []struct {
		name      string
		tc, x     float64
		wantPhase Phase
		wantX     float64
	}{
		{"just below saturation", 99.9, 0.5, PhaseSubcooledLiquid, 0},
		{"just above saturation", 100.1, 0.5, PhaseSuperheatedVapor, 1},
		{"on the line, mid quality", 100, 0.5, PhaseTwoPhase, 0.5},
		{"on the line, zero quality", 100, 0, PhaseSaturated, 0},
		{"on the line, unit quality", 100, 1, PhaseSaturated, 1},
		{"quality clamped high", 100, 1.7, PhaseSaturated, 1},
		{"quality clamped low", 100, -0.3, PhaseSaturated, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, err := tableResolver().Resolve(tc.tc, p, tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPhase, st.Phase)
			assert.Equal(t, tc.wantX, st.X)
		})
	}
}

func TestResolve_TwoPhaseMixingLaw(t *testing.T) {
	// 150 °C is a table row; the mixing law must reproduce the row's
	// endpoint mix exactly.
	st, err := tableResolver().Resolve(150, 4.7616, 0.5)
	require.NoError(t, err)

	row, _, err := satwater.Default().LookupByTemperature(150)
	require.NoError(t, err)

	assert.Equal(t, SourceTable, st.Source)
	assert.InDelta(t, row.Vf+0.5*(row.Vg-row.Vf), st.V, 1e-12)
	assert.InDelta(t, row.Uf+0.5*(row.Ug-row.Uf), st.U, 1e-12)
	assert.InDelta(t, row.Hf+0.5*row.Hfg, st.H, 1e-12)
	assert.InDelta(t, row.Sf+0.5*(row.Sg-row.Sf), st.S, 1e-12)
}

func TestResolve_TwoPhaseReportsSaturationPressure(t *testing.T) {
	// User claims 9 bar at 150 °C with x=0.3; for a two-phase state the
	// displayed pressure is the table's Psat at T, not the input.
	st, err := tableResolver().Resolve(150, 9, 0.3)
	require.NoError(t, err)
	assert.Equal(t, PhaseSubcooledLiquid, st.Phase) // 150 °C < Tsat(9 bar)

	st, err = tableResolver().Resolve(150, 4.7616, 0.3)
	require.NoError(t, err)
	assert.Equal(t, PhaseTwoPhase, st.Phase)
	assert.Equal(t, 4.7616, st.P)
}

func TestResolve_SinglePhaseKeepsInputPressure(t *testing.T) {
	st, err := tableResolver().Resolve(250, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, PhaseSuperheatedVapor, st.Phase)
	assert.Equal(t, 10.0, st.P)
}

func TestResolve_ExactSourceForSinglePhase(t *testing.T) {
	st, err := exactResolver().Resolve(250, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, SourceExact, st.Source)
	assert.Equal(t, 1.0, st.X, "superheated display convention")
	// IF97 superheated steam at 250 °C, 10 bar.
	assert.InDelta(t, 0.2326, st.V, 0.001)
	assert.InDelta(t, 2943, st.H, 2)
}

func TestResolve_TwoPhaseNeverUsesExactSource(t *testing.T) {
	// Even with the formulation wired in, saturated states come from the
	// table so both code paths share one saturation boundary.
	st, err := exactResolver().Resolve(150, 4.7616, 0.5)
	require.NoError(t, err)
	assert.Equal(t, SourceTable, st.Source)
}

func TestResolve_FallsBackWhenExactSourceFails(t *testing.T) {
	// 1500 bar is beyond the formulation's pressure range but clamps
	// through the table, so the fallback path must carry the state.
	st, err := exactResolver().Resolve(250, 1500, 0)
	require.NoError(t, err)
	assert.Equal(t, SourceTable, st.Source, "formulation rejects p > 100 MPa")
	assert.Equal(t, PhaseSubcooledLiquid, st.Phase)
}

func TestResolve_TableUnavailable(t *testing.T) {
	r := NewWaterResolver(satwater.New(nil), if97.NewFormulation())
	_, err := r.Resolve(100, 1, 0.5)
	assert.ErrorIs(t, err, ErrTableUnavailable)
}

func TestResolve_Idempotent(t *testing.T) {
	for _, r := range []*WaterResolver{tableResolver(), exactResolver()} {
		a, err := r.Resolve(180, 12, 0.4)
		require.NoError(t, err)
		b, err := r.Resolve(180, 12, 0.4)
		require.NoError(t, err)
		assert.Equal(t, a, b, "identical arguments must produce identical records")
	}
}

func TestResolve_SaturationReferencesAlwaysSet(t *testing.T) {
	st, err := exactResolver().Resolve(250, 10, 0)
	require.NoError(t, err)
	assert.Greater(t, st.TsatAtP, 0.0)
	assert.Greater(t, st.PsatAtT, 0.0)
	// Tsat at 10 bar is just under 180 °C.
	assert.InDelta(t, 180, st.TsatAtP, 1)
}
