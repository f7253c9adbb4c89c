package if97

// Properties is the full property vector handed to the resolver: the
// evaluated state plus the saturated liquid/vapor companion vectors at the
// same temperature, used as phase-boundary references.
type Properties struct {
	V float64 // m³/kg
	U float64 // kJ/kg
	H float64 // kJ/kg
	S float64 // kJ/(kg·K)
	X float64 // quality implied by v between vf and vg

	// Saturation companions at the request temperature.
	Vf, Vg float64
	Uf, Ug float64
	Hf, Hg float64
	Sf, Sg float64

	PsatBar float64 // saturation pressure at T, bar
}

// PropertySource is the high-accuracy calculator seen by the resolver. A
// false return means the source could not produce a value and the caller
// must fall back to table interpolation; a source never returns an error.
type PropertySource interface {
	// TryEvaluate computes properties at tc (°C) and either pBar
	// (single phase) or quality x in (0,1) (two phase).
	TryEvaluate(tc, pBar, x float64) (*Properties, bool)
}

// Formulation is the IF97-backed PropertySource.
type Formulation struct{}

// NewFormulation returns the industrial-formulation property source.
func NewFormulation() *Formulation { return &Formulation{} }

// TryEvaluate implements PropertySource using the region equations. Inputs
// outside the implemented regions yield (nil, false).
func (f *Formulation) TryEvaluate(tc, pBar, x float64) (*Properties, bool) {
	tk := tc + 273.15
	p := pBar * 0.1 // bar → MPa

	var state Props
	switch {
	case x > 0 && x < 1:
		// Two-phase: mix the saturated endpoints at T.
		if tk < tMin || tk > tMaxLiq {
			return nil, false
		}
		liq, vap := SaturatedLiquid(tk), SaturatedVapor(tk)
		state = Props{
			V: liq.V + x*(vap.V-liq.V),
			U: liq.U + x*(vap.U-liq.U),
			H: liq.H + x*(vap.H-liq.H),
			S: liq.S + x*(vap.S-liq.S),
		}
	default:
		var ok bool
		state, ok = SinglePhase(tk, p)
		if !ok {
			return nil, false
		}
	}

	props := &Properties{
		V: state.V,
		U: state.U,
		H: state.H,
		S: state.S,
		X: x,
	}

	// Saturation companions are only defined up to the critical
	// temperature; beyond it the boundary references stay zero, as a
	// supercritical state has no phase boundary to report.
	if tk >= tMin && tk <= tMaxLiq {
		liq, vap := SaturatedLiquid(tk), SaturatedVapor(tk)
		props.Vf, props.Vg = liq.V, vap.V
		props.Uf, props.Ug = liq.U, vap.U
		props.Hf, props.Hg = liq.H, vap.H
		props.Sf, props.Sg = liq.S, vap.S
		props.PsatBar = SaturationPressure(tk) * 10

		if x <= 0 || x >= 1 {
			// Report the quality implied by v relative to the dome,
			// clamped to [0,1] for single-phase states.
			if vap.V != liq.V {
				implied := (state.V - liq.V) / (vap.V - liq.V)
				props.X = min(1, max(0, implied))
			}
		}
	}

	return props, true
}

// Unavailable returns a PropertySource that always fails, standing in for
// a missing high-accuracy library so the resolver's control flow is
// identical either way.
func Unavailable() PropertySource { return unavailable{} }

type unavailable struct{}

func (unavailable) TryEvaluate(_, _, _ float64) (*Properties, bool) { return nil, false }
