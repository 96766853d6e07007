package mc2010

// VRdMaxApprox1 calculates the crushing resistance of the compression field
// with kε = 0.55 (Level I approximation)
//
//	V_Rd,max = 0.55·ηfc·(fck/γc)·bw·z·(cotθ + cotα)/(1 + cot²θ)
//
// fib Model Code 2010 eq. (7.3-24) and (7.3-26)
func VRdMaxApprox1(fck, bw, theta, z, alfa, gammaC float64) (float64, error) {
	s := Section{Fck: fck, Bw: bw, Theta: theta, Z: z, Alfa: alfa, GammaC: gammaC}
	return s.VRdMaxApprox1()
}

// VRdMaxApprox1 evaluates the Level I crushing resistance of the section
func (s Section) VRdMaxApprox1() (float64, error) {
	base, err := s.crushingBase()
	if err != nil {
		return 0, err
	}
	ratio, err := strutRatio(s.Theta, s.Alfa)
	if err != nil {
		return 0, err
	}
	return KEpsilonLevel1 * base * ratio, nil
}

// VRdMaxApprox2 evaluates the crushing resistance with kε derived from the
// principal tensile strain at the given θ (Level II approximation)
func (s Section) VRdMaxApprox2() (float64, error) {
	ex, err := s.EpsilonX()
	if err != nil {
		return 0, err
	}
	return s.crushingAt(ex, s.Theta)
}

// VRdMaxApprox3 evaluates the crushing resistance at θmin = 20° + 10000·εx
// (Level III approximation). The θ of the section is not used; both kε and
// the strut ratio are taken at θmin.
func (s Section) VRdMaxApprox3() (float64, error) {
	ex, err := s.EpsilonX()
	if err != nil {
		return 0, err
	}
	return s.crushingAt(ex, ThetaMin(ex))
}

// crushingAt is kε(ε1(θ))·ηfc·(fck/γc)·bw·z·(cotθ + cotα)/(1 + cot²θ)
func (s Section) crushingAt(epsilonX, theta float64) (float64, error) {
	base, err := s.crushingBase()
	if err != nil {
		return 0, err
	}
	e1, err := Epsilon1(epsilonX, theta)
	if err != nil {
		return 0, err
	}
	ratio, err := strutRatio(theta, s.Alfa)
	if err != nil {
		return 0, err
	}
	return KEpsilon(e1) * base * ratio, nil
}

// VRdMax selects the crushing resistance for the steel approximation level
func (s Section) VRdMax(steel Level) (float64, error) {
	switch steel {
	case Level1:
		return s.VRdMaxApprox1()
	case Level2:
		return s.VRdMaxApprox2()
	case Level3:
		return s.VRdMaxApprox3()
	}
	return 0, invalidLevel("steel", steel)
}
