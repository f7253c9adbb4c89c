// Package process evaluates simple closed-system processes between two
// resolved states: boundary work, heat transfer, property deltas and the
// diagram coordinate paths handed to the plotting layer.
package process

import (
	"errors"
	"fmt"
	"math"

	"github.com/Klassiq901/ThermoApp/internal/state"
)

var (
	// ErrUnknownKind rejects an unrecognized process label.
	ErrUnknownKind = errors.New("unknown process kind")

	// ErrIncompleteState means an endpoint record lacks the property
	// set the evaluation needs.
	ErrIncompleteState = errors.New("incomplete state record")
)

// Kind enumerates the supported process families.
type Kind string

const (
	Isochoric  Kind = "isochoric"
	Isobaric   Kind = "isobaric"
	Isothermal Kind = "isothermal"
	Adiabatic  Kind = "adiabatic"
	Polytropic Kind = "polytropic"
)

// ParseKind maps both the plain kind names and the UI labels used by the
// submission forms onto the enum.
func ParseKind(label string) (Kind, error) {
	switch label {
	case "isochoric", "Constant Volume":
		return Isochoric, nil
	case "isobaric", "Constant Pressure":
		return Isobaric, nil
	case "isothermal", "Isothermal":
		return Isothermal, nil
	case "adiabatic", "Adiabatic", "Adiabatic (n=k)":
		return Adiabatic, nil
	case "polytropic", "Polytropic":
		return Polytropic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

// Declaration describes the requested process. VolumeRatio and
// PressureRatio drive the ideal-gas path; N is only read for polytropic
// processes.
type Declaration struct {
	Kind          Kind    `json:"kind"`
	N             float64 `json:"n,omitempty"`
	VolumeRatio   float64 `json:"v_ratio,omitempty"`
	PressureRatio float64 `json:"p_ratio,omitempty"`
}

// Result is the completed evaluation of one process: both endpoint states,
// the energy balance and the diagram paths. Work and heat are kJ/kg.
type Result struct {
	Kind   Kind        `json:"kind"`
	State1 state.State `json:"state1"`
	State2 state.State `json:"state2"`

	Work   float64 `json:"W"`
	Heat   float64 `json:"Q"`
	DeltaU float64 `json:"delta_u"`
	DeltaH float64 `json:"delta_h"`
	DeltaS float64 `json:"delta_s"`

	PVPath []Point `json:"pv_path"`
	TSPath []Point `json:"ts_path"`
	Dome   *Dome   `json:"dome,omitempty"`
}

// EvaluateIdealGas derives state 2 from state 1 and the declared process,
// then computes the closed-system energy balance. The declaration's
// ratios default to 1 when unset.
func EvaluateIdealGas(s1 *state.State, decl Declaration) (*Result, error) {
	if s1 == nil || !s1.Complete() || s1.R == 0 {
		return nil, fmt.Errorf("%w: state 1 must be a resolved ideal-gas state", ErrIncompleteState)
	}

	vRatio := decl.VolumeRatio
	if vRatio == 0 {
		vRatio = 1
	}
	pRatio := decl.PressureRatio
	if pRatio == 0 {
		pRatio = 1
	}

	t1, p1, v1 := s1.T, s1.P, s1.V
	r, k, cp, cv := s1.R, s1.K, s1.Cp, s1.Cv

	// Each kind fixes one P-v-T relation and its polytropic exponent;
	// the exponent also drives the P-v path sampling.
	var t2, p2, v2, exponent float64
	switch decl.Kind {
	case Isochoric:
		v2 = v1
		p2 = p1 * pRatio
		t2 = t1 * pRatio
		exponent = math.Inf(1)
	case Isobaric:
		v2 = v1 * vRatio
		p2 = p1
		t2 = t1 * vRatio
		exponent = 0
	case Isothermal:
		v2 = v1 * vRatio
		p2 = p1 * v1 / v2
		t2 = t1
		exponent = 1
	case Adiabatic:
		v2 = v1 * vRatio
		p2 = p1 * math.Pow(v1/v2, k)
		t2 = t1 * math.Pow(v1/v2, k-1)
		exponent = k
	case Polytropic:
		exponent = decl.N
		if exponent == 0 {
			exponent = 1
		}
		v2 = v1 * vRatio
		p2 = p1 * math.Pow(v1/v2, exponent)
		t2 = t1 * math.Pow(v1/v2, exponent-1)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, decl.Kind)
	}

	deltaU := cv * (t2 - t1)
	deltaH := cp * (t2 - t1)

	var work float64
	switch decl.Kind {
	case Isochoric:
		work = 0
	case Isobaric:
		work = p1 * (v2 - v1)
	case Isothermal:
		work = r * t1 * math.Log(v2/v1)
	default: // adiabatic, polytropic
		if math.Abs(exponent-1) < 1e-9 {
			work = r * t1 * math.Log(v2/v1)
		} else {
			work = (p2*v2 - p1*v1) / (1 - exponent)
		}
	}

	// First law for a closed system, and the ideal-gas entropy relation
	// with its implicit T=1, P=1 reference state.
	heat := deltaU + work
	deltaS := cp*math.Log(t2/t1) - r*math.Log(p2/p1)
	s1Entropy := cp*math.Log(t1) - r*math.Log(p1)
	s2Entropy := s1Entropy + deltaS

	st1 := *s1
	st1.S = s1Entropy
	st2 := st1
	st2.T, st2.P, st2.V = t2, p2, v2
	st2.U, st2.H, st2.S = cv*t2, cp*t2, s2Entropy

	return &Result{
		Kind:   decl.Kind,
		State1: st1,
		State2: st2,
		Work:   work,
		Heat:   heat,
		DeltaU: deltaU,
		DeltaH: deltaH,
		DeltaS: deltaS,
		PVPath: gasPVPath(decl.Kind, &st1, &st2, exponent),
		TSPath: gasTSPath(decl.Kind, &st1, &st2),
	}, nil
}

// EvaluateWater computes the energy balance between two already-resolved
// water states. Boundary work uses endpoint approximations rather than a
// path integral: isothermal work takes the average of the two pressures,
// the adiabat takes W = -Δu.
func EvaluateWater(s1, s2 *state.State, decl Declaration, dome DomeSampler) (*Result, error) {
	if s1 == nil || !s1.Complete() || s2 == nil || !s2.Complete() {
		return nil, fmt.Errorf("%w: both water states must be resolved first", ErrIncompleteState)
	}

	deltaU := s2.U - s1.U
	deltaH := s2.H - s1.H
	deltaS := s2.S - s1.S

	// Pressures are bar; the factor 100 converts P·Δv into kJ/kg.
	var work float64
	switch decl.Kind {
	case Isobaric:
		work = s1.P * 100 * (s2.V - s1.V)
	case Isochoric:
		work = 0
	case Isothermal:
		work = (s1.P + s2.P) / 2 * 100 * (s2.V - s1.V)
	case Adiabatic:
		work = -deltaU
	default:
		return nil, fmt.Errorf("%w: %q is not supported for water", ErrUnknownKind, decl.Kind)
	}

	res := &Result{
		Kind:   decl.Kind,
		State1: *s1,
		State2: *s2,
		Work:   work,
		Heat:   deltaU + work,
		DeltaU: deltaU,
		DeltaH: deltaH,
		DeltaS: deltaS,
		PVPath: segment(s1.V, s1.P, s2.V, s2.P),
		TSPath: segment(s1.S, s1.T, s2.S, s2.T),
	}

	if dome != nil {
		res.Dome = SampleDome(dome, s1.T, s2.T)
	}
	return res, nil
}
