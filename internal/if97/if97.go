// Package if97 implements the parts of the IAPWS Industrial Formulation
// 1997 for the thermodynamic properties of water and steam needed by the
// property resolver: region 1 (compressed liquid), region 2 (superheated
// vapor) and the region 4 saturation line.
//
// All basic equations and coefficients follow the 2007 revised release of
// IAPWS-IF97. Inputs are in K and MPa, outputs in m³/kg, kJ/kg and
// kJ/(kg·K).
package if97

import "math"

// Specific gas constant of ordinary water, kJ/(kg·K).
const rWater = 0.461526

// Region validity bounds (K, MPa).
const (
	tMin     = 273.15
	tMaxLiq  = 623.15  // region 1 / saturation-line upper temperature
	tMaxVap  = 1073.15 // region 2 upper temperature
	pMax     = 100.0
	pCritMPa = 22.064
)

// Region 1 coefficients, Table 2 of the release.
var region1I = [34]float64{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2,
	2, 2, 3, 3, 3, 4, 4, 4, 5, 8, 8, 21, 23, 29, 30, 31, 32,
}

var region1J = [34]float64{
	-2, -1, 0, 1, 2, 3, 4, 5, -9, -7, -1, 0, 1, 3, -3, 0, 1,
	3, 17, -4, 0, 6, -5, -2, 10, -8, -11, -6, -29, -31, -38, -39, -40, -41,
}

var region1N = [34]float64{
	0.14632971213167, -0.84548187169114, -3.756360367204,
	3.3855169168385, -0.95791963387872, 0.15772038513228,
	-0.016616417199501, 8.1214629983568e-4, 2.8319080123804e-4,
	-6.0706301565874e-4, -0.018990068218419, -0.032529748770505,
	-0.021841717175414, -5.283835796993e-5, -4.7184321073267e-4,
	-3.0001780793026e-4, 4.7661393906987e-5, -4.4141845330846e-6,
	-7.2694996297594e-16, -3.1679644845054e-5, -2.8270797985312e-6,
	-8.5205128120103e-10, -2.2425281908e-6, -6.5171222895601e-7,
	-1.4341729937924e-13, -4.0516996860117e-7, -1.2734301741641e-9,
	-1.7424871230634e-10, -6.8762131295531e-19, 1.4478307828521e-20,
	2.6335781662795e-23, -1.1947622640071e-23, 1.8228094581404e-24,
	-9.3537087292458e-26,
}

// Region 2 ideal-gas part coefficients, Table 10.
var region2J0 = [9]float64{0, 1, -5, -4, -3, -2, -1, 2, 3}

var region2N0 = [9]float64{
	-9.6927686500217, 10.086655968018, -0.005608791128302,
	0.071452738081455, -0.40710498223928, 1.4240819171444,
	-4.383951131945, -0.28408632460772, 0.021268463753307,
}

// Region 2 residual part coefficients, Table 11.
var region2I = [43]float64{
	1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 5, 6, 6, 6,
	7, 7, 7, 8, 8, 9, 10, 10, 10, 16, 16, 18, 20, 20, 20, 21, 22, 23,
	24, 24, 24,
}

var region2Jr = [43]float64{
	0, 1, 2, 3, 6, 1, 2, 4, 7, 36, 0, 1, 3, 6, 35, 1, 2, 3, 7, 3, 16,
	35, 0, 11, 25, 8, 36, 13, 4, 10, 14, 29, 50, 57, 20, 35, 48, 21,
	53, 39, 26, 40, 58,
}

var region2Nr = [43]float64{
	-1.7731742473213e-3, -0.017834862292358, -0.045996013696365,
	-0.057581259083432, -0.05032527872793, -3.3032641670203e-5,
	-1.8948987516315e-4, -3.9392777243355e-3, -0.043797295650573,
	-2.6674547914087e-5, 2.0481737692309e-8, 4.3870667284435e-7,
	-3.227767723857e-5, -1.5033924542148e-3, -0.040668253562649,
	-7.8847309559367e-10, 1.2790717852285e-8, 4.8225372718507e-7,
	2.2922076337661e-6, -1.6714766451061e-11, -2.1171472321355e-3,
	-23.895741934104, -5.905956432427e-18, -1.2621808899101e-6,
	-0.038946842435739, 1.1256211360459e-11, -8.2311340897998,
	1.9809712802088e-8, 1.0406965210174e-19, -1.0234747095929e-13,
	-1.0018179379511e-9, -8.0882908646985e-11, 0.10693031879409,
	-0.33662250574171, 8.9185845355421e-25, 3.0629316876232e-13,
	-4.2002467698208e-6, -5.9056029685639e-26, 3.7826947613457e-6,
	-1.2768608934681e-15, 7.3087610595061e-29, 5.5414715350778e-17,
	-9.436970724121e-7,
}

// Region 4 saturation-line coefficients, Table 34.
var region4N = [10]float64{
	1167.0521452767, -724213.16703206, -17.073846940092,
	12020.82470247, -3232555.0322333, 14.91510861353,
	-4823.2657361591, 405113.40542057, -0.23855557567849,
	650.17534844798,
}

// Props is the basic specific property vector produced by one region
// evaluation.
type Props struct {
	V float64 // m³/kg
	U float64 // kJ/kg
	H float64 // kJ/kg
	S float64 // kJ/(kg·K)
}

// region1 evaluates the compressed/subcooled liquid Gibbs equation at
// temperature tk (K) and pressure p (MPa).
func region1(tk, p float64) Props {
	pi := p / 16.53
	tau := 1386.0 / tk

	var g, gp, gt float64
	for i := range region1N {
		ii, jj, n := region1I[i], region1J[i], region1N[i]
		a := math.Pow(7.1-pi, ii)
		b := math.Pow(tau-1.222, jj)
		g += n * a * b
		gp -= n * ii * math.Pow(7.1-pi, ii-1) * b
		gt += n * a * jj * math.Pow(tau-1.222, jj-1)
	}

	rt := rWater * tk
	return Props{
		V: rt * pi * gp / (p * 1000), // R·T is in kPa·m³/kg, p in MPa
		U: rt * (tau*gt - pi*gp),
		H: rt * tau * gt,
		S: rWater * (tau*gt - g),
	}
}

// region2 evaluates the superheated vapor Gibbs equation at temperature tk
// (K) and pressure p (MPa).
func region2(tk, p float64) Props {
	pi := p
	tau := 540.0 / tk

	// Ideal-gas part.
	g0 := math.Log(pi)
	g0p := 1.0 / pi
	var g0t float64
	for i := range region2N0 {
		jj, n := region2J0[i], region2N0[i]
		g0 += n * math.Pow(tau, jj)
		g0t += n * jj * math.Pow(tau, jj-1)
	}

	// Residual part.
	var gr, grp, grt float64
	for i := range region2Nr {
		ii, jj, n := region2I[i], region2Jr[i], region2Nr[i]
		a := math.Pow(pi, ii)
		b := math.Pow(tau-0.5, jj)
		gr += n * a * b
		grp += n * ii * math.Pow(pi, ii-1) * b
		grt += n * a * jj * math.Pow(tau-0.5, jj-1)
	}

	rt := rWater * tk
	return Props{
		V: rt * pi * (g0p + grp) / (p * 1000),
		U: rt * (tau*(g0t+grt) - pi*(g0p+grp)),
		H: rt * tau * (g0t + grt),
		S: rWater * (tau*(g0t+grt) - (g0 + gr)),
	}
}

// SaturationPressure returns psat (MPa) at temperature tk (K) using the
// region 4 basic equation. Valid for 273.15 K ≤ tk ≤ 647.096 K.
func SaturationPressure(tk float64) float64 {
	n := region4N
	theta := tk + n[8]/(tk-n[9])
	a := theta*theta + n[0]*theta + n[1]
	b := n[2]*theta*theta + n[3]*theta + n[4]
	c := n[5]*theta*theta + n[6]*theta + n[7]
	frac := 2 * c / (-b + math.Sqrt(b*b-4*a*c))
	return frac * frac * frac * frac
}

// SaturationTemperature returns Tsat (K) at pressure p (MPa), the inverse
// of the region 4 equation.
func SaturationTemperature(p float64) float64 {
	n := region4N
	beta := math.Pow(p, 0.25)
	e := beta*beta + n[2]*beta + n[5]
	f := n[0]*beta*beta + n[3]*beta + n[6]
	g := n[1]*beta*beta + n[4]*beta + n[7]
	d := 2 * g / (-f - math.Sqrt(f*f-4*e*g))
	return (n[9] + d - math.Sqrt((n[9]+d)*(n[9]+d)-4*(n[8]+n[9]*d))) / 2
}

// SaturatedLiquid evaluates the region 1 equation on the saturation line
// at temperature tk (K).
func SaturatedLiquid(tk float64) Props {
	return region1(tk, SaturationPressure(tk))
}

// SaturatedVapor evaluates the region 2 equation on the saturation line at
// temperature tk (K).
func SaturatedVapor(tk float64) Props {
	return region2(tk, SaturationPressure(tk))
}

// SinglePhase evaluates a single-phase state at (tk, p), picking region 1
// or 2 from the position relative to the saturation line. The second
// return is false when (tk, p) lies outside the implemented regions.
func SinglePhase(tk, p float64) (Props, bool) {
	if p <= 0 || p > pMax || tk < tMin {
		return Props{}, false
	}

	switch {
	case tk <= tMaxLiq:
		if p >= SaturationPressure(tk) {
			return region1(tk, p), true
		}
		return region2(tk, p), true
	case tk <= tMaxVap:
		// Above 623.15 K only the vapor equation is carried here; the
		// region 2/3 boundary pressure is not modelled, so stay clear
		// of the critical pressure.
		if p >= pCritMPa {
			return Props{}, false
		}
		return region2(tk, p), true
	default:
		return Props{}, false
	}
}
