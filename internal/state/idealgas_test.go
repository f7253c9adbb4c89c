package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIdealGas_AirClosure(t *testing.T) {
	// Air at 100 kPa and v chosen so the ideal-gas law lands on 300 K.
	st, err := ResolveIdealGas(GasSpec{Name: "air"}, 100, 0.861253)
	require.NoError(t, err)

	assert.InDelta(t, 300, st.T, 0.01)
	assert.InDelta(t, 0.7175, st.Cv, 1e-4)
	assert.InDelta(t, 1.0045, st.Cp, 1e-4)
	assert.InDelta(t, 215.25, st.U, 0.1)
	assert.InDelta(t, 301.35, st.H, 0.1)
	assert.Equal(t, 0.0, st.S, "first state is the entropy reference")
	assert.Equal(t, 0.287, st.R)
	assert.Equal(t, 1.4, st.K)
}

func TestResolveIdealGas_PredefinedRegistry(t *testing.T) {
	tests := []struct {
		name string
		r, k float64
	}{
		{"air", 0.287, 1.4},
		{"nitrogen", 0.2968, 1.4},
		{"methane", 0.518, 1.299},
		{"oxygen", 0.2598, 1.395},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, err := ResolveIdealGas(GasSpec{Name: tc.name}, 100, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.r, st.R)
			assert.Equal(t, tc.k, st.K)
			assert.InDelta(t, tc.k*tc.r/(tc.k-1), st.Cp, 1e-12)
		})
	}
}

func TestResolveIdealGas_UnknownSubstance(t *testing.T) {
	_, err := ResolveIdealGas(GasSpec{Name: "helium"}, 100, 1)
	assert.ErrorIs(t, err, ErrUnknownSubstance)
}

func TestResolveIdealGas_CustomGas(t *testing.T) {
	st, err := ResolveIdealGas(GasSpec{Name: "custom", Cp: 1.0, Cv: 0.7}, 100, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, st.R, 1e-12)
	assert.InDelta(t, 1.0/0.7, st.K, 1e-12)
}

func TestResolveIdealGas_RejectsInvalidCustomGas(t *testing.T) {
	tests := []struct {
		name   string
		cp, cv float64
	}{
		{"cp equals cv", 1.0, 1.0},
		{"cp below cv", 0.7, 1.0},
		{"non-positive cv", 1.0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveIdealGas(GasSpec{Name: "custom", Cp: tc.cp, Cv: tc.cv}, 100, 1)
			assert.ErrorIs(t, err, ErrInvalidGasParameters)
		})
	}
}

func TestResolveIdealGas_RejectsNonPositiveInputs(t *testing.T) {
	_, err := ResolveIdealGas(GasSpec{Name: "air"}, 0, 1)
	assert.Error(t, err)
	_, err = ResolveIdealGas(GasSpec{Name: "air"}, 100, -1)
	assert.Error(t, err)
}

func TestGasNames_StableOrder(t *testing.T) {
	assert.Equal(t, []string{"air", "methane", "nitrogen", "oxygen"}, GasNames())
}

func TestLoadGasSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cp": 1.039, "cv": 0.743}`), 0644))

	spec, err := LoadGasSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", spec.Name, "unnamed definitions default to custom")
	assert.Equal(t, 1.039, spec.Cp)

	_, err = LoadGasSpec(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
