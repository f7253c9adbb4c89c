package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klassiq901/ThermoApp/internal/process"
	"github.com/Klassiq901/ThermoApp/internal/state"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "session.json")),
	}
}

func TestStore_LatestSubmissionWins(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			first := state.State{Substance: "air", T: 300, P: 100, V: 0.86}
			second := state.State{Substance: "water", T: 150, P: 4.76, V: 0.19}

			require.NoError(t, store.SaveState(StageState1, first))
			require.NoError(t, store.SaveState(StageState1, second))

			got, ok, err := store.LoadState(StageState1)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, second, got, "no history: the latest write replaces the slot")
		})
	}
}

func TestStore_StagesAreIndependent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SaveState(StageState1, state.State{Substance: "air", T: 300}))

			_, ok, err := store.LoadState(StageState2)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_RejectsUnknownStage(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.SaveState("state3", state.State{})
			assert.ErrorIs(t, err, ErrUnknownStage)
			_, _, err = store.LoadState("latest")
			assert.ErrorIs(t, err, ErrUnknownStage)
		})
	}
}

func TestStore_Declaration(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.LoadDeclaration()
			require.NoError(t, err)
			assert.False(t, ok)

			decl := process.Declaration{Kind: process.Polytropic, N: 1.3, VolumeRatio: 2}
			require.NoError(t, store.SaveDeclaration(decl))

			got, ok, err := store.LoadDeclaration()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, decl, got)
		})
	}
}

func TestStore_RejectedInputLeavesRegisterIntact(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			kept := state.State{Substance: "air", T: 300, P: 100, V: 0.86}
			require.NoError(t, store.SaveState(StageState1, kept))

			// Validation happens before any store write: a rejected
			// custom gas never reaches SaveState.
			_, err := state.ResolveIdealGas(state.GasSpec{Name: "custom", Cp: 1.0, Cv: 1.0}, 100, 0.9)
			require.ErrorIs(t, err, state.ErrInvalidGasParameters)

			got, ok, err := store.LoadState(StageState1)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, kept, got)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	st := state.State{Substance: "water", T: 150, P: 4.76, V: 0.19, X: 0.5}
	require.NoError(t, NewFileStore(path).SaveState(StageState2, st))

	got, ok, err := NewFileStore(path).LoadState(StageState2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, st, got)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	_, ok, err := store.LoadState(StageState1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, _, err := NewFileStore(path).LoadState(StageState1)
	assert.Error(t, err)
}
