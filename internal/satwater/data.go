package satwater

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed saturated_water.csv
var defaultCSV string

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Load(strings.NewReader(defaultCSV))
	if err != nil {
		// The embedded table is validated by the test suite; a parse
		// failure here means a corrupt build.
		panic("satwater: embedded table: " + err.Error())
	}
	return t
})

// Default returns the built-in saturated water table (0.01 °C up to the
// critical point at 374.14 °C).
func Default() *Table {
	return defaultTable()
}
