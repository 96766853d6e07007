package mc2010

import "math"

// EpsilonX calculates the longitudinal strain at mid-depth of the section
//
//	εx = 1/(2·Es·As) · (|Med|/z + |Ved| + |Ned|·(1/2 + Δe/z)) ≥ 0
//
// fib Model Code 2010 eq. (7.3-16)
func EpsilonX(es, as, med, ved, ned, z, deltaE float64) (float64, error) {
	if err := requireNonZero(es*as, "E·As"); err != nil {
		return 0, err
	}
	if err := requireNonZero(z, "z"); err != nil {
		return 0, err
	}
	strain := (1 / (2 * es * as)) * (math.Abs(med)/z + math.Abs(ved) + math.Abs(ned)*(0.5+deltaE/z))
	return nonNegative(strain), nil
}
