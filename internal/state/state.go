// Package state defines the canonical thermodynamic state record and the
// calculators that produce it: the water property resolver and the
// ideal-gas state calculator.
package state

// Phase classifies a resolved water state relative to the saturation line.
type Phase string

const (
	PhaseSubcooledLiquid  Phase = "subcooled_liquid"
	PhaseSuperheatedVapor Phase = "superheated_vapor"
	PhaseTwoPhase         Phase = "two_phase"
	PhaseSaturated        Phase = "saturated"
)

// Source records which calculation path produced a water state.
type Source string

const (
	// SourceExact marks properties from the IF97 industrial formulation.
	SourceExact Source = "IAPWS-IF97"
	// SourceTable marks properties from saturation-table interpolation.
	SourceTable Source = "table interpolation"
)

// State is the canonical substance-agnostic property record. Water states
// use °C and bar; ideal-gas states use K and kPa. Specific properties are
// m³/kg, kJ/kg and kJ/(kg·K) for both.
type State struct {
	Substance string `json:"substance"`

	T float64 `json:"T"` // °C (water) or K (gas)
	P float64 `json:"P"` // bar (water) or kPa (gas)
	V float64 `json:"v"`
	U float64 `json:"u"`
	H float64 `json:"h"`
	S float64 `json:"s"`

	// Quality x. Single-phase water states carry the display convention
	// x=0 (subcooled) or x=1 (superheated), not a physical quality.
	X float64 `json:"x"`

	Phase  Phase  `json:"phase,omitempty"`
	Source Source `json:"source,omitempty"`

	// Saturation references computed during resolution (water only).
	TsatAtP float64 `json:"T_sat_at_P,omitempty"`
	PsatAtT float64 `json:"P_sat_at_T,omitempty"`

	// Saturated liquid/vapor companions at T (water only).
	Vf  float64 `json:"vf,omitempty"`
	Vg  float64 `json:"vg,omitempty"`
	Uf  float64 `json:"uf,omitempty"`
	Ug  float64 `json:"ug,omitempty"`
	Hf  float64 `json:"hf,omitempty"`
	Hfg float64 `json:"hfg,omitempty"`
	Sf  float64 `json:"sf,omitempty"`
	Sg  float64 `json:"sg,omitempty"`

	// Gas constants (ideal-gas states only), kJ/(kg·K) except k.
	R  float64 `json:"R,omitempty"`
	K  float64 `json:"k,omitempty"`
	Cp float64 `json:"cp,omitempty"`
	Cv float64 `json:"cv,omitempty"`
}

// IsWater reports whether the state was produced by the water resolver.
func (s *State) IsWater() bool { return s.Substance == "water" }

// Complete reports whether the record carries the property set the process
// evaluator needs.
func (s *State) Complete() bool {
	return s.Substance != "" && s.V > 0
}
