package mc2010

import "math"

// VRds calculates the design shear resistance provided by the shear reinforcement
//
//	V_Rd,s = (Asw/sw)·z·fywd·(cotθ + cotα)·sinα
//
// A compression field angle outside [20°, 45°] is reported to diag
// and the calculation proceeds with the given angle.
// fib Model Code 2010 eq. (7.3-29)
func VRds(asw, sw, z, fywd, theta, alfa float64, diag *Diagnostics) (float64, error) {
	if theta < ThetaLowerLimit || theta > ThetaUpperLimit {
		diag.warn(WarnThetaOutOfRange, "θ = %.2f° is outside the code range [%.0f°, %.0f°]",
			theta, ThetaLowerLimit, ThetaUpperLimit)
	}
	if err := requireNonZero(sw, "sw"); err != nil {
		return 0, err
	}
	cotTheta, err := cot(theta, "theta")
	if err != nil {
		return 0, err
	}
	cotAlfa, err := cot(alfa, "alfa")
	if err != nil {
		return 0, err
	}
	return (asw / sw) * z * fywd * (cotTheta + cotAlfa) * math.Sin(radians(alfa)), nil
}

// VRds evaluates the stirrup contribution of the section
func (s Section) VRds(diag *Diagnostics) (float64, error) {
	return VRds(s.Asw, s.Sw, s.Z, s.Fywd, s.Theta, s.Alfa, diag)
}
