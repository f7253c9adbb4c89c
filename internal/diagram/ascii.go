package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Klassiq901/ThermoApp/internal/process"
)

// ProcessDiagramData holds everything needed to draw the two process
// diagrams for a completed evaluation.
type ProcessDiagramData struct {
	Kind    process.Kind
	PVPath  []process.Point
	TSPath  []process.Point
	Dome    *process.Dome
	IsWater bool

	// Endpoint markers.
	V1, P1, S1, T1 float64
	V2, P2, S2, T2 float64
}

// DrawASCIIPVDiagram renders the P-v process curve as a terminal chart.
func DrawASCIIPVDiagram(data ProcessDiagramData) string {
	unit := "kPa"
	if data.IsWater {
		unit = "bar"
	}
	return drawASCIIChart("P–v DIAGRAM", data.Kind, data.PVPath,
		fmt.Sprintf("P (%s) over v (m³/kg)", unit))
}

// DrawASCIITSDiagram renders the T-s process curve as a terminal chart.
func DrawASCIITSDiagram(data ProcessDiagramData) string {
	unit := "K"
	if data.IsWater {
		unit = "°C"
	}
	return drawASCIIChart("T–s DIAGRAM", data.Kind, data.TSPath,
		fmt.Sprintf("T (%s) over s (kJ/kg·K)", unit))
}

func drawASCIIChart(title string, kind process.Kind, path []process.Point, caption string) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s — %s\n", title, kind))
	sb.WriteString("  " + strings.Repeat("─", 30) + "\n\n")

	if len(path) < 2 {
		sb.WriteString("  (no path data)\n")
		return sb.String()
	}

	// asciigraph charts a y-series over equally spaced samples; the
	// path points already run left to right on the x axis.
	ys := make([]float64, len(path))
	for i, pt := range path {
		ys[i] = pt.Y
	}

	sb.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("\n  x axis spans %.6g to %.6g\n", path[0].X, path[len(path)-1].X))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
