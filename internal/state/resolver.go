package state

import (
	"math"

	"github.com/Klassiq901/ThermoApp/internal/if97"
	"github.com/Klassiq901/ThermoApp/internal/satwater"
)

// WaterResolver converts {T, P, x} into a canonical water State. It is the
// single authority on phase classification and on the choice between the
// high-accuracy source and table interpolation.
type WaterResolver struct {
	table  *satwater.Table
	source if97.PropertySource
}

// NewWaterResolver builds a resolver over the given table and property
// source. Pass if97.Unavailable() to force table interpolation throughout.
func NewWaterResolver(table *satwater.Table, source if97.PropertySource) *WaterResolver {
	return &WaterResolver{table: table, source: source}
}

// Resolve computes the full property set at temperature tc (°C), pressure
// pBar (bar) and quality x. The quality input only matters inside the
// two-phase region; single-phase states get the display convention x=0
// (subcooled) or x=1 (superheated).
func (r *WaterResolver) Resolve(tc, pBar, x float64) (*State, error) {
	// Both saturation references are always computed: downstream phase
	// classification and display need them regardless of which property
	// path is taken.
	tsatAtP, _, err := r.table.SaturationTemperature(pBar)
	if err != nil {
		return nil, err
	}
	psatAtT, _, err := r.table.SaturationPressure(tc)
	if err != nil {
		return nil, err
	}

	superheated := tc > tsatAtP
	subcooled := tc < tsatAtP

	var phase Phase
	switch {
	case superheated:
		phase, x = PhaseSuperheatedVapor, 1
	case subcooled:
		phase, x = PhaseSubcooledLiquid, 0
	default:
		x = math.Min(1, math.Max(0, x))
		if x > 0 && x < 1 {
			phase = PhaseTwoPhase
		} else {
			phase = PhaseSaturated
		}
	}

	st := &State{
		Substance: "water",
		T:         tc,
		X:         x,
		Phase:     phase,
		TsatAtP:   tsatAtP,
		PsatAtT:   psatAtT,
	}

	// The exact source only serves strictly single-phase states; on the
	// saturation line the table keeps both code paths single-sourced.
	if superheated || subcooled {
		if props, ok := r.source.TryEvaluate(tc, pBar, x); ok {
			st.P = pBar
			st.V, st.U, st.H, st.S = props.V, props.U, props.H, props.S
			st.Vf, st.Vg = props.Vf, props.Vg
			st.Uf, st.Ug = props.Uf, props.Ug
			st.Hf, st.Hfg = props.Hf, props.Hg-props.Hf
			st.Sf, st.Sg = props.Sf, props.Sg
			st.Source = SourceExact
			return st, nil
		}
	}

	// Table fallback: the linear mixing law applies even for nominally
	// single-phase states (x forced to 0 or 1 above), the documented
	// approximation when the exact source cannot serve.
	row, _, err := r.table.LookupByTemperature(tc)
	if err != nil {
		return nil, err
	}
	for _, v := range []float64{row.Vf, row.Vg, row.Uf, row.Ug, row.Hf, row.Hfg, row.Sf, row.Sg, row.Pbar} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrPropertyDataMissing
		}
	}

	st.V = row.Vf + x*(row.Vg-row.Vf)
	st.U = row.Uf + x*(row.Ug-row.Uf)
	st.H = row.Hf + x*row.Hfg
	st.S = row.Sf + x*(row.Sg-row.Sf)
	st.Vf, st.Vg = row.Vf, row.Vg
	st.Uf, st.Ug = row.Uf, row.Ug
	st.Hf, st.Hfg = row.Hf, row.Hfg
	st.Sf, st.Sg = row.Sf, row.Sg
	st.Source = SourceTable

	// Two-phase and saturated states report the table's saturation
	// pressure at T for consistency with the mixing law; single-phase
	// states keep the user's pressure.
	if superheated || subcooled {
		st.P = pBar
	} else {
		st.P = row.Pbar
	}
	return st, nil
}
