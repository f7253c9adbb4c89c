package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Klassiq901/ThermoApp/internal/process"
)

// ExportPVDiagram exports a P-v diagram with the process curve, the two
// endpoint states and, for water, the saturation dome.
func ExportPVDiagram(data ProcessDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("P–v Diagram: %s", data.Kind)
	p.X.Label.Text = "v (m³/kg)"
	if data.IsWater {
		p.Y.Label.Text = "P (bar)"
	} else {
		p.Y.Label.Text = "P (kPa)"
	}
	p.Add(plotter.NewGrid())

	if data.Dome != nil {
		if err := addDome(p, data.Dome.Liquid, data.Dome.Vapor); err != nil {
			return err
		}
	}

	if err := addProcessCurve(p, data.PVPath); err != nil {
		return err
	}
	if err := addEndpoints(p, data.V1, data.P1, data.V2, data.P2); err != nil {
		return err
	}

	return save(p, filename)
}

// ExportTSDiagram exports a T-s diagram in the same style.
func ExportTSDiagram(data ProcessDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("T–s Diagram: %s", data.Kind)
	p.X.Label.Text = "s (kJ/kg·K)"
	if data.IsWater {
		p.Y.Label.Text = "T (°C)"
	} else {
		p.Y.Label.Text = "T (K)"
	}
	p.Add(plotter.NewGrid())

	if data.Dome != nil {
		if err := addDome(p, data.Dome.LiquidTS, data.Dome.VaporTS); err != nil {
			return err
		}
	}

	if err := addProcessCurve(p, data.TSPath); err != nil {
		return err
	}
	if err := addEndpoints(p, data.S1, data.T1, data.S2, data.T2); err != nil {
		return err
	}

	return save(p, filename)
}

func toXYs(pts []process.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func addProcessCurve(p *plot.Plot, path []process.Point) error {
	line, err := plotter.NewLine(toXYs(path))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)
	p.Legend.Add("process", line)
	return nil
}

func addEndpoints(p *plot.Plot, x1, y1, x2, y2 float64) error {
	scatter, err := plotter.NewScatter(plotter.XYs{
		{X: x1, Y: y1},
		{X: x2, Y: y2},
	})
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x1, Y: y1}, {X: x2, Y: y2}},
		Labels: []string{" 1", " 2"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

func addDome(p *plot.Plot, liquid, vapor []process.Point) error {
	liqLine, err := plotter.NewLine(toXYs(liquid))
	if err != nil {
		return err
	}
	liqLine.LineStyle.Width = vg.Points(1)
	liqLine.LineStyle.Color = color.RGBA{B: 255, A: 128}
	p.Add(liqLine)
	p.Legend.Add("saturated liquid", liqLine)

	vapLine, err := plotter.NewLine(toXYs(vapor))
	if err != nil {
		return err
	}
	vapLine.LineStyle.Width = vg.Points(1)
	vapLine.LineStyle.Color = color.RGBA{R: 255, A: 128}
	p.Add(vapLine)
	p.Legend.Add("saturated vapor", vapLine)
	return nil
}

func save(p *plot.Plot, filename string) error {
	width := 6.4 * vg.Inch
	height := 4.8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
