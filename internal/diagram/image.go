package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	resistanceColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	demandColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	crushingColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportResistanceDiagram exports a bar chart of the shear resistances
// with the design shear force drawn across it
func ExportResistanceDiagram(data ResistanceDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Shear Resistance"
	}
	p.Y.Label.Text = "Shear (kN)"
	p.Y.Min = 0

	var (
		names  []string
		values plotter.Values
	)
	for _, b := range data.bars() {
		if b.label == "VEd" {
			continue
		}
		names = append(names, b.label)
		values = append(values, b.value/1000)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = resistanceColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	vedLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: data.VEd / 1000},
		{X: float64(len(names)) - 0.5, Y: data.VEd / 1000},
	})
	if err != nil {
		return err
	}
	vedLine.LineStyle.Width = vg.Points(1.5)
	vedLine.LineStyle.Color = demandColor
	vedLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(vedLine)

	p.Legend.Add("resistance", bars)
	p.Legend.Add("VEd", vedLine)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportThetaDiagram exports the stirrup and crushing resistance curves
// over the compression field inclination
func ExportThetaDiagram(curve ThetaCurve, vEd float64, filename string) error {
	if err := curve.validate(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Resistance vs Compression Field Inclination"
	p.X.Label.Text = "θ (°)"
	p.Y.Label.Text = "Shear (kN)"

	vrds := make(plotter.XYs, len(curve.Theta))
	vmax := make(plotter.XYs, len(curve.Theta))
	for i, theta := range curve.Theta {
		vrds[i] = plotter.XY{X: theta, Y: curve.VRds[i] / 1000}
		vmax[i] = plotter.XY{X: theta, Y: curve.VRdMax[i] / 1000}
	}

	vrdsLine, err := plotter.NewLine(vrds)
	if err != nil {
		return err
	}
	vrdsLine.LineStyle.Width = vg.Points(2)
	vrdsLine.LineStyle.Color = resistanceColor
	p.Add(vrdsLine)

	vmaxLine, err := plotter.NewLine(vmax)
	if err != nil {
		return err
	}
	vmaxLine.LineStyle.Width = vg.Points(2)
	vmaxLine.LineStyle.Color = crushingColor
	p.Add(vmaxLine)

	first, last := curve.Theta[0], curve.Theta[len(curve.Theta)-1]
	vedLine, err := plotter.NewLine(plotter.XYs{
		{X: first, Y: vEd / 1000},
		{X: last, Y: vEd / 1000},
	})
	if err != nil {
		return err
	}
	vedLine.LineStyle.Width = vg.Points(1.5)
	vedLine.LineStyle.Color = demandColor
	vedLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(vedLine)

	points, err := plotter.NewScatter(vmax)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = crushingColor
	points.GlyphStyle.Radius = vg.Points(2)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)

	p.Legend.Add("VRd,s", vrdsLine)
	p.Legend.Add("VRd,max", vmaxLine, points)
	p.Legend.Add("VEd", vedLine)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension,
// defaulting to PNG
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
