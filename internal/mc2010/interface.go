package mc2010

import "math"

// TauEdi calculates the shear stress at an interface between concretes cast
// at different times
//
//	τ_Edi = β·V_Ed/(z·b_i)
//
// fib Model Code 2010 eq. (7.3-48)
func TauEdi(beta, vEd, z, bi float64) (float64, error) {
	if err := requireNonZero(z*bi, "z·b_i"); err != nil {
		return 0, err
	}
	return beta * vEd / (z * bi), nil
}

// Interface describes a concrete-to-concrete joint. Stresses are in MPa
// and the reinforcement inclination Alfa in degrees.
type Interface struct {
	Ca     float64 // adhesion coefficient
	Cr     float64 // aggregate interlock coefficient
	Mu     float64 // friction coefficient
	K1     float64 // interaction coefficient for tensile force
	K2     float64 // interaction coefficient for flexural resistance
	BetaC  float64 // strength reduction for the compression strut
	SigmaN float64 // normal stress from external force
	Rho    float64 // reinforcement ratio crossing the interface
	Alfa   float64 // inclination of the reinforcement
	Fck    float64
	Fcd    float64
	Fctd   float64
	Fyd    float64
}

// nu is the effectiveness factor ν = 0.55·(30/fck)^(1/3) ≤ 0.55
func (i Interface) nu() (float64, error) {
	nfc, err := Nfc(i.Fck)
	if err != nil {
		return 0, err
	}
	return KEpsilonLevel1 * nfc, nil
}

// TauRdiWithoutReinforcement calculates the interface shear resistance
// without reinforcement crossing the joint
//
//	τ_Rdi = ca·fctd + μ·σn ≤ 0.5·ν·fcd
//
// fib Model Code 2010 eq. (7.3-49)
func (i Interface) TauRdiWithoutReinforcement() (float64, error) {
	nu, err := i.nu()
	if err != nil {
		return 0, err
	}
	return math.Min(i.Ca*i.Fctd+i.Mu*i.SigmaN, 0.5*nu*i.Fcd), nil
}

// TauRdiWithReinforcement calculates the interface shear resistance with
// reinforcement crossing the joint
//
//	τ_Rdi = cr·fck^(1/3) + μ·σn + k1·ρ·fyd·(μ·sinα + cosα) + k2·ρ·√(fyd·fcd) ≤ βc·ν·fcd
//
// fib Model Code 2010 eq. (7.3-50)
func (i Interface) TauRdiWithReinforcement() (float64, error) {
	nu, err := i.nu()
	if err != nil {
		return 0, err
	}
	if i.Fyd*i.Fcd < 0 {
		return 0, &DomainError{Quantity: "fyd·fcd", Value: i.Fyd * i.Fcd, Reason: "negative base under the square root"}
	}
	rad := radians(i.Alfa)
	tau := i.Cr*math.Cbrt(i.Fck) +
		i.Mu*i.SigmaN +
		i.K1*i.Rho*i.Fyd*(i.Mu*math.Sin(rad)+math.Cos(rad)) +
		i.K2*i.Rho*math.Sqrt(i.Fyd*i.Fcd)
	return math.Min(tau, i.BetaC*nu*i.Fcd), nil
}
