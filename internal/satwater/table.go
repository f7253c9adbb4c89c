// Package satwater holds the saturated water property table and the
// piecewise-linear lookups used for phase classification and two-phase
// property mixing.
package satwater

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// ErrTableUnavailable is returned by every lookup when the table holds no
// rows. Water-substance requests cannot proceed without the table.
var ErrTableUnavailable = errors.New("saturated water table not loaded")

// Row is one tabulated saturation state. Temperatures are in °C, pressures
// in bar, specific volumes in m³/kg, energies/enthalpies in kJ/kg and
// entropies in kJ/(kg·K). Enthalpy of vaporization is stored as hfg rather
// than hg, matching the source table schema.
type Row struct {
	Tsat float64
	Pbar float64
	Vf   float64
	Vg   float64
	Uf   float64
	Ug   float64
	Hf   float64
	Hfg  float64
	Sf   float64
	Sg   float64
}

// Table is an immutable saturation table with two sorted views, one keyed
// by temperature and one by pressure. Both keys are strictly monotonic
// across the tabulated rows, which the interpolation relies on.
type Table struct {
	byT []Row
	byP []Row
}

// New builds a table from the given rows. The rows are copied and sorted;
// the caller's slice is not retained.
func New(rows []Row) *Table {
	t := &Table{
		byT: make([]Row, len(rows)),
		byP: make([]Row, len(rows)),
	}
	copy(t.byT, rows)
	copy(t.byP, rows)
	sort.Slice(t.byT, func(i, j int) bool { return t.byT[i].Tsat < t.byT[j].Tsat })
	sort.Slice(t.byP, func(i, j int) bool { return t.byP[i].Pbar < t.byP[j].Pbar })
	return t
}

// Load parses a saturation table from CSV with the header
// T_sat,P_bar,vf,vg,uf,ug,hf,hfg,sf,sg.
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading table header: %w", err)
	}
	if len(header) != 10 {
		return nil, fmt.Errorf("expected 10 columns, got %d", len(header))
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading table row: %w", err)
		}

		vals := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, header[i], err)
			}
			vals[i] = v
		}
		rows = append(rows, Row{
			Tsat: vals[0], Pbar: vals[1],
			Vf: vals[2], Vg: vals[3],
			Uf: vals[4], Ug: vals[5],
			Hf: vals[6], Hfg: vals[7],
			Sf: vals[8], Sg: vals[9],
		})
	}
	if len(rows) == 0 {
		return nil, errors.New("saturation table contains no rows")
	}
	return New(rows), nil
}

// LoadFile loads a saturation table from a CSV file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Len reports the number of tabulated rows.
func (t *Table) Len() int { return len(t.byT) }

// Bounds returns the tabulated temperature and pressure ranges.
func (t *Table) Bounds() (tMin, tMax, pMin, pMax float64) {
	if len(t.byT) == 0 {
		return 0, 0, 0, 0
	}
	return t.byT[0].Tsat, t.byT[len(t.byT)-1].Tsat,
		t.byP[0].Pbar, t.byP[len(t.byP)-1].Pbar
}

// LookupByTemperature interpolates a full saturation row at temperature T
// (°C). Temperatures outside the table are clamped to the nearest bound and
// the clamped flag is set.
func (t *Table) LookupByTemperature(tc float64) (Row, bool, error) {
	return interpolate(t.byT, tc, func(r Row) float64 { return r.Tsat })
}

// LookupByPressure interpolates a full saturation row at pressure P (bar),
// clamping to the table bounds.
func (t *Table) LookupByPressure(pBar float64) (Row, bool, error) {
	return interpolate(t.byP, pBar, func(r Row) float64 { return r.Pbar })
}

// SaturationTemperature returns Tsat (°C) at the given pressure (bar).
func (t *Table) SaturationTemperature(pBar float64) (float64, bool, error) {
	row, clamped, err := t.LookupByPressure(pBar)
	if err != nil {
		return 0, false, err
	}
	return row.Tsat, clamped, nil
}

// SaturationPressure returns Psat (bar) at the given temperature (°C).
func (t *Table) SaturationPressure(tc float64) (float64, bool, error) {
	row, clamped, err := t.LookupByTemperature(tc)
	if err != nil {
		return 0, false, err
	}
	return row.Pbar, clamped, nil
}

// interpolate finds the bracketing pair for key in rows (sorted ascending
// on the key column) and linearly interpolates every column with the same
// fraction. Identical bracket keys short-circuit to the lower row so a
// duplicate or clamped key never divides by zero.
func interpolate(rows []Row, key float64, keyOf func(Row) float64) (Row, bool, error) {
	if len(rows) == 0 {
		return Row{}, false, ErrTableUnavailable
	}

	clamped := false
	if min := keyOf(rows[0]); key < min {
		key = min
		clamped = true
	} else if max := keyOf(rows[len(rows)-1]); key > max {
		key = max
		clamped = true
	}

	// First row whose key is >= the (clamped) lookup key.
	hi := sort.Search(len(rows), func(i int) bool { return keyOf(rows[i]) >= key })
	lo := hi
	if hi == len(rows) {
		hi = len(rows) - 1
		lo = hi
	} else if keyOf(rows[hi]) > key && hi > 0 {
		lo = hi - 1
	}

	lower, upper := rows[lo], rows[hi]
	if keyOf(lower) == keyOf(upper) {
		return lower, clamped, nil
	}

	frac := (key - keyOf(lower)) / (keyOf(upper) - keyOf(lower))
	lerp := func(a, b float64) float64 { return a + (b-a)*frac }
	return Row{
		Tsat: lerp(lower.Tsat, upper.Tsat),
		Pbar: lerp(lower.Pbar, upper.Pbar),
		Vf:   lerp(lower.Vf, upper.Vf),
		Vg:   lerp(lower.Vg, upper.Vg),
		Uf:   lerp(lower.Uf, upper.Uf),
		Ug:   lerp(lower.Ug, upper.Ug),
		Hf:   lerp(lower.Hf, upper.Hf),
		Hfg:  lerp(lower.Hfg, upper.Hfg),
		Sf:   lerp(lower.Sf, upper.Sf),
		Sg:   lerp(lower.Sg, upper.Sg),
	}, clamped, nil
}
