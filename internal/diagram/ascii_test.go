package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klassiq901/ThermoApp/internal/process"
)

func sampleData() ProcessDiagramData {
	return ProcessDiagramData{
		Kind: process.Isothermal,
		PVPath: []process.Point{
			{X: 0.5, Y: 200}, {X: 0.75, Y: 133.3}, {X: 1.0, Y: 100},
		},
		TSPath: []process.Point{
			{X: 1.0, Y: 300}, {X: 1.1, Y: 300}, {X: 1.2, Y: 300},
		},
		V1: 0.5, P1: 200, S1: 1.0, T1: 300,
		V2: 1.0, P2: 100, S2: 1.2, T2: 300,
	}
}

func TestDrawASCIIPVDiagram(t *testing.T) {
	out := DrawASCIIPVDiagram(sampleData())

	assert.Contains(t, out, "P–v DIAGRAM")
	assert.Contains(t, out, string(process.Isothermal))
	assert.Contains(t, out, "P (kPa) over v (m³/kg)")
	assert.Contains(t, out, "x axis spans 0.5 to 1")
}

func TestDrawASCIIPVDiagram_WaterUnits(t *testing.T) {
	data := sampleData()
	data.IsWater = true

	assert.Contains(t, DrawASCIIPVDiagram(data), "P (bar)")
	assert.Contains(t, DrawASCIITSDiagram(data), "T (°C)")
}

func TestDrawASCIIDiagram_EmptyPath(t *testing.T) {
	data := sampleData()
	data.PVPath = nil

	assert.Contains(t, DrawASCIIPVDiagram(data), "(no path data)")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"W = 59.684 kJ/kg", "Q = 59.684 kJ/kg"})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "RESULT")
	assert.Contains(t, lines[3], "W = 59.684 kJ/kg")

	// All rows share the border width.
	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}
