package mc2010

import "math"

// fib Model Code 2010 shear constants

const (
	// Partial safety factor for concrete, persistent and transient situations
	// Section 4.5.2.2
	DefaultGammaC = 1.5

	// Stirrups perpendicular to the member axis (degrees)
	DefaultAlfa = 90.0

	// Code-valid range of the compression field inclination (degrees)
	// Section 7.3.3.3
	ThetaLowerLimit = 20.0
	ThetaUpperLimit = 45.0

	// Cap on √fck (MPa) in the concrete contribution, eq. (7.3-17)
	SqrtFckMax = 8.0

	// Strength reduction factor kε for the crushing check, eq. (7.3-26)
	KEpsilonLevel1 = 0.55
	KEpsilonMax    = 0.65

	// Reference strength for the brittleness factor ηfc
	FckReference = 30.0

	// Strain offset used in ε1
	Epsilon1Offset = 0.002
)

// Nfc calculates the brittleness factor ηfc = (30/fck)^(1/3) ≤ 1
// fib Model Code 2010 eq. (7.3-24)
func Nfc(fck float64) (float64, error) {
	if fck <= 0 {
		return 0, &DomainError{Quantity: "fck", Value: fck, Reason: "must be positive under the cube root of 30/fck"}
	}
	return math.Min(math.Cbrt(FckReference/fck), 1), nil
}

// Fsqr calculates √fck capped at 8 MPa
// fib Model Code 2010 eq. (7.3-17)
func Fsqr(fck float64) (float64, error) {
	if fck < 0 {
		return 0, &DomainError{Quantity: "fck", Value: fck, Reason: "negative base under the square root"}
	}
	return math.Min(math.Sqrt(fck), SqrtFckMax), nil
}

// ThetaMin calculates the minimum compression field inclination (degrees)
// for a given longitudinal strain, θmin = 20° + 10000·εx (Level III)
func ThetaMin(epsilonX float64) float64 {
	return ThetaLowerLimit + 10000*epsilonX
}

// Epsilon1 calculates the principal tensile strain ε1 = εx + (εx + 0.002)·cot²θ
// fib Model Code 2010 Section 7.3.3.3
func Epsilon1(epsilonX, theta float64) (float64, error) {
	cotTheta, err := cot(theta, "theta")
	if err != nil {
		return 0, err
	}
	return epsilonX + (epsilonX+Epsilon1Offset)*cotTheta*cotTheta, nil
}

// KEpsilon calculates kε = 1/(1.2 + 55·ε1) ≤ 0.65
// fib Model Code 2010 eq. (7.3-26)
func KEpsilon(epsilon1 float64) float64 {
	return math.Min(1/(1.2+55*epsilon1), KEpsilonMax)
}

// cot returns the cotangent of an angle given in degrees
func cot(deg float64, name string) (float64, error) {
	if math.Mod(deg, 180) == 0 {
		return 0, &DomainError{Quantity: name, Value: deg, Reason: "cotangent is undefined"}
	}
	return 1 / math.Tan(radians(deg)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// nonNegative floors a value at zero
func nonNegative(v float64) float64 {
	return math.Max(v, 0)
}

// strutRatio is (cotθ + cotα)/(1 + cot²θ)
func strutRatio(theta, alfa float64) (float64, error) {
	cotTheta, err := cot(theta, "theta")
	if err != nil {
		return 0, err
	}
	cotAlfa, err := cot(alfa, "alfa")
	if err != nil {
		return 0, err
	}
	return (cotTheta + cotAlfa) / (1 + cotTheta*cotTheta), nil
}

func requireNonZero(v float64, name string) error {
	if v == 0 {
		return &DomainError{Quantity: name, Value: v, Reason: "division by zero"}
	}
	return nil
}
