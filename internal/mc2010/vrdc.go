package mc2010

import "math"

// VRdcApprox1 calculates the concrete contribution from geometry only
// (Level I approximation)
//
//	kv = 180/(1000 + 1.25·z)
//	V_Rd,c = kv·√fck·z·bw/γc
//
// fib Model Code 2010 eq. (7.3-17)
func VRdcApprox1(fck, z, bw, gammaC float64) (float64, error) {
	s := Section{Fck: fck, Z: z, Bw: bw, GammaC: gammaC}
	return s.VRdcApprox1()
}

// VRdcApprox1 evaluates the Level I concrete contribution of the section
func (s Section) VRdcApprox1() (float64, error) {
	base, err := s.concreteBase()
	if err != nil {
		return 0, err
	}
	den := 1000 + 1.25*s.Z
	if err := requireNonZero(den, "1000 + 1.25·z"); err != nil {
		return 0, err
	}
	return 180 / den * base, nil
}

// VRdcApprox2 evaluates the concrete contribution with the strain and the
// aggregate size effect (Level II approximation)
//
//	kdg = 32/(16 + dg) ≥ 0.75
//	kv = 0.4/(1 + 1500·εx) · 1300/(1000 + kdg·z)
func (s Section) VRdcApprox2() (float64, error) {
	base, err := s.concreteBase()
	if err != nil {
		return 0, err
	}
	if err := requireNonZero(16+s.Dg, "16 + dg"); err != nil {
		return 0, err
	}
	kdg := math.Max(32/(16+s.Dg), 0.75)
	den := 1000 + kdg*s.Z
	if err := requireNonZero(den, "1000 + kdg·z"); err != nil {
		return 0, err
	}
	ex, err := s.EpsilonX()
	if err != nil {
		return 0, err
	}
	kv := (0.4 / (1 + 1500*ex)) * (1300 / den)
	return kv * base, nil
}

// VRdcApprox3 evaluates the concrete contribution of a member with shear
// reinforcement at the highest refinement (Level III approximation)
//
//	kv = 0.4/(1 + 1500·εx) · (1 − |Ved|/V_Rd,max(θmin)) ≥ 0
func (s Section) VRdcApprox3() (float64, error) {
	base, err := s.concreteBase()
	if err != nil {
		return 0, err
	}
	ex, err := s.EpsilonX()
	if err != nil {
		return 0, err
	}
	refined := s
	refined.Theta = ThetaMin(ex)
	vmax, err := refined.VRdMaxApprox3()
	if err != nil {
		return 0, err
	}
	if err := requireNonZero(vmax, "V_Rd,max(θmin)"); err != nil {
		return 0, err
	}
	kv := nonNegative((0.4 / (1 + 1500*ex)) * (1 - math.Abs(s.Ved)/vmax))
	return kv * base, nil
}

// VRdc selects the concrete contribution for a pair of approximation levels.
// See concreteFormula for the combinations.
func (s Section) VRdc(concrete, steel Level) (float64, error) {
	formula, err := concreteFormula(concrete, steel)
	if err != nil {
		return 0, err
	}
	switch formula {
	case Level1:
		return s.VRdcApprox1()
	case Level2:
		return s.VRdcApprox2()
	}
	return s.VRdcApprox3()
}
