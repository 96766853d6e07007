package mc2010

import "math"

// VRd calculates the design shear resistance of a web or slab
// fib Model Code 2010 eq. (7.3-11)
//
// Without shear reinforcement the result is V_Rd,c. With shear reinforcement:
//
//	steel Level III:     min(V_Rd,c + V_Rd,s, V_Rd,max)
//	steel Level I or II: min(V_Rd,s, V_Rd,max)
//
// A concrete level other than I or II is reported to diag and the
// calculation continues.
func (s Section) VRd(concrete, steel Level, reinforced bool, diag *Diagnostics) (float64, error) {
	if concrete != Level1 && concrete != Level2 {
		diag.warn(WarnConcreteLevel, "concrete approximation %s is not Level I or II", concrete)
	}

	if !reinforced {
		return s.VRdc(concrete, steel)
	}

	switch steel {
	case Level1, Level2, Level3:
	default:
		return 0, invalidLevel("steel", steel)
	}

	vrds, err := s.VRds(diag)
	if err != nil {
		return 0, err
	}
	vmax, err := s.VRdMax(steel)
	if err != nil {
		return 0, err
	}

	if steel != Level3 {
		return math.Min(vrds, vmax), nil
	}

	vrdc, err := s.VRdc(concrete, steel)
	if err != nil {
		return 0, err
	}
	return math.Min(vrdc+vrds, vmax), nil
}
