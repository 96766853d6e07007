package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// DrawThetaCurve plots VRd,s and VRd,max (kN) over the sampled θ range
func DrawThetaCurve(curve ThetaCurve) (string, error) {
	if err := curve.validate(); err != nil {
		return "", err
	}

	vrds := make([]float64, len(curve.Theta))
	vmax := make([]float64, len(curve.Theta))
	for i := range curve.Theta {
		vrds[i] = curve.VRds[i] / 1000
		vmax[i] = curve.VRdMax[i] / 1000
	}

	first, last := curve.Theta[0], curve.Theta[len(curve.Theta)-1]
	graph := asciigraph.PlotMany([][]float64{vrds, vmax},
		asciigraph.Height(12),
		asciigraph.Width(48),
		asciigraph.Offset(4),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("VRd,s", "VRd,max"),
		asciigraph.Caption(fmt.Sprintf("kN over θ = %g° to %g°", first, last)),
	)
	return graph, nil
}
