package mc2010

import "math"

// VEdTi calculates the shear force in wall i of a section under torsion
//
//	V_Ed,Ti = T_Ed·z_i/(2·A_k)
//
// fib Model Code 2010 eq. (7.3-53)
func VEdTi(tEd, aK, zI float64) (float64, error) {
	if err := requireNonZero(aK, "A_k"); err != nil {
		return 0, err
	}
	return tEd * zI / (2 * aK), nil
}

// TRdMax evaluates the torsional crushing resistance of a section with an
// effective wall thickness t_ef = d_k/8 and enclosed area aK
//
//	T_Rd,max = kε·ηfc·(fck/γc)·t_ef·2·A_k·sinθ·cosθ
//
// Level I uses kε = 0.55, Level II takes kε at θ and Level III at θmin.
// fib Model Code 2010 eq. (7.3-56)
func (s Section) TRdMax(steel Level, dK, aK float64) (float64, error) {
	nfc, err := Nfc(s.Fck)
	if err != nil {
		return 0, err
	}
	if err := requireNonZero(s.GammaC, "gamma_c"); err != nil {
		return 0, err
	}

	var kEpsilon float64
	switch steel {
	case Level1:
		kEpsilon = KEpsilonLevel1
	case Level2, Level3:
		ex, err := s.EpsilonX()
		if err != nil {
			return 0, err
		}
		theta := s.Theta
		if steel == Level3 {
			theta = ThetaMin(ex)
		}
		e1, err := Epsilon1(ex, theta)
		if err != nil {
			return 0, err
		}
		kEpsilon = KEpsilon(e1)
	default:
		return 0, invalidLevel("steel", steel)
	}

	tef := dK / 8
	rad := radians(s.Theta)
	return kEpsilon * nfc * (s.Fck / s.GammaC) * tef * 2 * aK * math.Sin(rad) * math.Cos(rad), nil
}

// TRd checks the interaction of torsion and shear against crushing of the
// compression field
//
//	(T_Ed/T_Rd,max)² + (V_Ed/V_Rd,max)² ≤ 1
//
// It returns true when the section is adequate.
// fib Model Code 2010 eq. (7.3-57)
func (s Section) TRd(tEd float64, steel Level, dK, aK float64) (bool, error) {
	tmax, err := s.TRdMax(steel, dK, aK)
	if err != nil {
		return false, err
	}
	vmax, err := s.VRdMax(steel)
	if err != nil {
		return false, err
	}
	if err := requireNonZero(tmax, "T_Rd,max"); err != nil {
		return false, err
	}
	if err := requireNonZero(vmax, "V_Rd,max"); err != nil {
		return false, err
	}
	return math.Pow(tEd/tmax, 2)+math.Pow(s.Ved/vmax, 2) <= 1, nil
}
