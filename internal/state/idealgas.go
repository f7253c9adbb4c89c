package state

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// GasSpec identifies a calorically-ideal gas, either a predefined one
// (fixed R and k) or a custom one given by cp and cv directly.
type GasSpec struct {
	Name string  `json:"name"`
	R    float64 `json:"R,omitempty"`  // kJ/(kg·K)
	K    float64 `json:"k,omitempty"`  // cp/cv
	Cp   float64 `json:"cp,omitempty"` // kJ/(kg·K), custom gases
	Cv   float64 `json:"cv,omitempty"` // kJ/(kg·K), custom gases
}

// predefinedGases carries the fixed constants for the named gases.
var predefinedGases = map[string]GasSpec{
	"air":      {Name: "air", R: 0.287, K: 1.4},
	"nitrogen": {Name: "nitrogen", R: 0.2968, K: 1.4},
	"methane":  {Name: "methane", R: 0.518, K: 1.299},
	"oxygen":   {Name: "oxygen", R: 0.2598, K: 1.395},
}

// GasNames lists the predefined gas names in stable order.
func GasNames() []string {
	names := make([]string, 0, len(predefinedGases))
	for name := range predefinedGases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadGasSpec reads a custom gas definition from a JSON file.
func LoadGasSpec(path string) (*GasSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec GasSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = "custom"
	}
	return &spec, nil
}

// constants fills in the derived gas constants, validating custom input.
// For predefined gases cv = R/(k-1) and cp = k·cv; for custom gases cp and
// cv are taken as given and must satisfy R = cp - cv > 0.
func (g *GasSpec) constants() (r, k, cp, cv float64, err error) {
	if g.Name != "custom" {
		pre, ok := predefinedGases[g.Name]
		if !ok {
			return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrUnknownSubstance, g.Name)
		}
		r, k = pre.R, pre.K
		cv = r / (k - 1)
		cp = k * cv
		return r, k, cp, cv, nil
	}
	if g.Cp <= g.Cv || g.Cv <= 0 {
		return 0, 0, 0, 0, ErrInvalidGasParameters
	}
	cp, cv = g.Cp, g.Cv
	return cp - cv, cp / cv, cp, cv, nil
}

// ResolveIdealGas computes the canonical state of an ideal gas from
// pressure p (kPa) and specific volume v (m³/kg). Temperature follows from
// the ideal-gas law; entropy of a first state is the reference zero.
func ResolveIdealGas(spec GasSpec, p, v float64) (*State, error) {
	r, k, cp, cv, err := spec.constants()
	if err != nil {
		return nil, err
	}
	if p <= 0 || v <= 0 {
		return nil, fmt.Errorf("pressure and specific volume must be positive (P=%.4f kPa, v=%.6f m³/kg)", p, v)
	}

	t := p * v / r
	return &State{
		Substance: spec.Name,
		T:         t,
		P:         p,
		V:         v,
		U:         cv * t,
		H:         cp * t,
		S:         0,
		R:         r,
		K:         k,
		Cp:        cp,
		Cv:        cv,
	}, nil
}
