package shear

import "fmt"

// ThetaPoint holds the stirrup and crushing resistance at one inclination
type ThetaPoint struct {
	Theta  float64 `json:"theta"`
	VRds   float64 `json:"vrds"`
	VRdMax float64 `json:"vrd_max"`
}

// ThetaSweep evaluates V_Rd,s and V_Rd,max of the member for θ from
// `from` to `to` inclusive in steps of `step` degrees.
func (m *Member) ThetaSweep(from, to, step float64) ([]ThetaPoint, error) {
	if step <= 0 || from > to {
		return nil, fmt.Errorf("invalid θ range: %.1f° to %.1f° step %.1f°", from, to, step)
	}

	probe := *m
	probe.Reinforced = true
	for _, theta := range []float64{from, to} {
		probe.Section.Theta = theta
		if err := probe.Validate(); err != nil {
			return nil, err
		}
	}

	var points []ThetaPoint
	// integer stepping keeps the end point despite rounding
	n := int((to-from)/step + 1e-9)
	for i := 0; i <= n; i++ {
		probe.Section.Theta = from + float64(i)*step
		vrds, err := probe.Section.VRds(nil)
		if err != nil {
			return nil, err
		}
		vmax, err := probe.Section.VRdMax(m.SteelLevel)
		if err != nil {
			return nil, err
		}
		points = append(points, ThetaPoint{Theta: probe.Section.Theta, VRds: vrds, VRdMax: vmax})
	}

	return points, nil
}

// Optimum returns the point with the largest min(V_Rd,s, V_Rd,max)
func Optimum(points []ThetaPoint) (ThetaPoint, bool) {
	if len(points) == 0 {
		return ThetaPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if min(p.VRds, p.VRdMax) > min(best.VRds, best.VRdMax) {
			best = p
		}
	}
	return best, true
}
