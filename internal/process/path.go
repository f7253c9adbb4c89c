package process

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Klassiq901/ThermoApp/internal/satwater"
	"github.com/Klassiq901/ThermoApp/internal/state"
)

// pathSamples is the number of points traced along a process path.
const pathSamples = 100

// domeSamples is the number of saturation-dome points per branch.
const domeSamples = 50

// criticalTemp is the critical temperature of water, °C. Above it no
// saturation dome exists.
const criticalTemp = 374.0

// Point is one diagram coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dome holds sampled saturation-boundary curves for overlaying on the
// process diagrams: (vf, Psat) and (vg, Psat) branches for P-v, (sf, T)
// and (sg, T) branches for T-s.
type Dome struct {
	Liquid   []Point `json:"liquid"`    // (vf, Psat)
	Vapor    []Point `json:"vapor"`     // (vg, Psat)
	LiquidTS []Point `json:"liquid_ts"` // (sf, T)
	VaporTS  []Point `json:"vapor_ts"`  // (sg, T)
}

// DomeSampler supplies interpolated saturation rows at a temperature.
// *satwater.Table satisfies it.
type DomeSampler interface {
	LookupByTemperature(tc float64) (satwater.Row, bool, error)
}

// gasPVPath traces P(v) along the process law. Isochoric processes are a
// vertical segment; the others follow P = P1·(v1/v)^n with the kind's
// exponent. Points are ordered left to right on the v axis.
func gasPVPath(kind Kind, s1, s2 *state.State, exponent float64) []Point {
	if kind == Isochoric {
		return segment(s1.V, s1.P, s2.V, s2.P)
	}

	vs := make([]float64, pathSamples)
	floats.Span(vs, math.Min(s1.V, s2.V), math.Max(s1.V, s2.V))

	pts := make([]Point, pathSamples)
	for i, v := range vs {
		var p float64
		switch kind {
		case Isobaric:
			p = s1.P
		default:
			p = s1.P * math.Pow(s1.V/v, exponent)
		}
		pts[i] = Point{X: v, Y: p}
	}
	return pts
}

// gasTSPath traces the T-s curve: constant T for isotherms, constant s
// for adiabats, a straight segment otherwise.
func gasTSPath(kind Kind, s1, s2 *state.State) []Point {
	switch kind {
	case Isothermal:
		return segment(s1.S, s1.T, s2.S, s2.T)
	case Adiabatic:
		return segment(s1.S, s1.T, s1.S, s2.T)
	default:
		return segment(s1.S, s1.T, s2.S, s2.T)
	}
}

// segment produces a linearly interpolated two-endpoint path, ordered
// left to right.
func segment(x1, y1, x2, y2 float64) []Point {
	if x2 < x1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	xs := make([]float64, pathSamples)
	ys := make([]float64, pathSamples)
	floats.Span(xs, x1, x2)
	floats.Span(ys, y1, y2)

	pts := make([]Point, pathSamples)
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts
}

// SampleDome samples the saturation boundaries over a temperature window
// bracketing both endpoint temperatures. It returns nil when either
// endpoint is at or above the critical temperature.
func SampleDome(sampler DomeSampler, t1, t2 float64) *Dome {
	if t1 >= criticalTemp || t2 >= criticalTemp {
		return nil
	}

	lo := math.Max(0.01, math.Min(t1, t2)-5)
	hi := math.Min(criticalTemp, math.Max(t1, t2)+5)

	ts := make([]float64, domeSamples)
	floats.Span(ts, lo, hi)

	dome := &Dome{}
	for _, t := range ts {
		row, _, err := sampler.LookupByTemperature(t)
		if err != nil {
			return nil
		}
		dome.Liquid = append(dome.Liquid, Point{X: row.Vf, Y: row.Pbar})
		dome.Vapor = append(dome.Vapor, Point{X: row.Vg, Y: row.Pbar})
		dome.LiquidTS = append(dome.LiquidTS, Point{X: row.Sf, Y: row.Tsat})
		dome.VaporTS = append(dome.VaporTS, Point{X: row.Sg, Y: row.Tsat})
	}
	return dome
}
