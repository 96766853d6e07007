package mc2010

import "math"

// fib Model Code 2010 material constants

const (
	// Partial safety factor for reinforcing steel (Section 4.5.2.2)
	DefaultGammaS = 1.15

	// Modulus of elasticity for reinforcing steel (Section 5.2.4.2)
	SteelModulus = 200000.0 // MPa

	// Difference between mean and characteristic strength (Section 5.1.4)
	DeltaF = 8.0 // MPa

	// Modulus of elasticity at fcm = 10 MPa, quartzite aggregates (Section 5.1.7.2)
	Ec0 = 21500.0 // MPa
)

// Fcm calculates the mean compressive strength fcm = fck + Δf
func Fcm(fck float64) float64 {
	return fck + DeltaF
}

// Fctm calculates the mean axial tensile strength
// fib Model Code 2010 Section 5.1.5.1
func Fctm(fck float64) (float64, error) {
	if fck <= 0 {
		return 0, &DomainError{Quantity: "fck", Value: fck, Reason: "must be positive"}
	}
	if fck <= 50 {
		// fctm = 0.3·fck^(2/3) up to C50
		return 0.3 * math.Pow(fck, 2.0/3), nil
	}
	// fctm = 2.12·ln(1 + 0.1·(fck + Δf)) above C50
	return 2.12 * math.Log(1+0.1*Fcm(fck)), nil
}

// FctkMin calculates the lower characteristic tensile strength 0.7·fctm
func FctkMin(fck float64) (float64, error) {
	fctm, err := Fctm(fck)
	if err != nil {
		return 0, err
	}
	return 0.7 * fctm, nil
}

// Fcd calculates the design compressive strength fcd = fck/γc
func Fcd(fck, gammaC float64) (float64, error) {
	if err := requireNonZero(gammaC, "gamma_c"); err != nil {
		return 0, err
	}
	return fck / gammaC, nil
}

// Fctd calculates the design tensile strength fctd = fctk,min/γc
func Fctd(fck, gammaC float64) (float64, error) {
	if err := requireNonZero(gammaC, "gamma_c"); err != nil {
		return 0, err
	}
	fctk, err := FctkMin(fck)
	if err != nil {
		return 0, err
	}
	return fctk / gammaC, nil
}

// Fyd calculates the design yield strength of reinforcement fyd = fyk/γs
func Fyd(fyk, gammaS float64) (float64, error) {
	if err := requireNonZero(gammaS, "gamma_s"); err != nil {
		return 0, err
	}
	return fyk / gammaS, nil
}

// Eci calculates the modulus of elasticity of concrete at 28 days
// Eci = Ec0·(fcm/10)^(1/3)
// fib Model Code 2010 Section 5.1.7.2
func Eci(fck float64) (float64, error) {
	fcm := Fcm(fck)
	if fcm <= 0 {
		return 0, &DomainError{Quantity: "fcm", Value: fcm, Reason: "must be positive"}
	}
	return Ec0 * math.Cbrt(fcm/10), nil
}
