package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

// Governing mechanisms of the design shear resistance
const (
	GovernedByConcrete = "concrete (V_Rd,c)"
	GovernedBySteel    = "stirrups (V_Rd,s)"
	GovernedByCombined = "concrete + stirrups (V_Rd,c + V_Rd,s)"
	GovernedByCrushing = "strut crushing (V_Rd,max)"
)

// CheckResult holds the results of the shear check
type CheckResult struct {
	// Strain state
	EpsilonX float64 // Longitudinal strain at mid-depth
	ThetaMin float64 // Minimum compression field inclination (degrees)

	// Resistance contributions (N), zero when not used at the chosen levels
	VRdc   float64 // Concrete contribution
	VRds   float64 // Stirrup contribution
	VRdMax float64 // Crushing resistance of the compression field

	// Capacity
	VRd         float64 // Design shear resistance (N)
	VEd         float64 // Design shear force magnitude (N)
	Utilization float64 // VEd / VRd

	// Status
	Governing  string
	IsAdequate bool
	Warnings   []mc2010.Warning
	Message    string
}

// Check calculates the design shear resistance of the member and compares
// it with the design shear force of its section
func (m *Member) Check() (*CheckResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	s := m.Section
	result := &CheckResult{VEd: math.Abs(s.Ved)}
	diag := &mc2010.Diagnostics{}

	if m.needsStrain() {
		ex, err := s.EpsilonX()
		if err != nil {
			return nil, err
		}
		result.EpsilonX = ex
		result.ThetaMin = mc2010.ThetaMin(ex)
	}

	vrd, err := s.VRd(m.ConcreteLevel, m.SteelLevel, m.Reinforced, diag)
	if err != nil {
		return nil, err
	}
	result.VRd = vrd

	// Contributions for the report
	if !m.Reinforced || m.SteelLevel == mc2010.Level3 {
		if result.VRdc, err = s.VRdc(m.ConcreteLevel, m.SteelLevel); err != nil {
			return nil, err
		}
	}
	if m.Reinforced {
		if result.VRds, err = s.VRds(nil); err != nil {
			return nil, err
		}
		if result.VRdMax, err = s.VRdMax(m.SteelLevel); err != nil {
			return nil, err
		}
	}

	switch {
	case !m.Reinforced:
		result.Governing = GovernedByConcrete
	case result.VRd == result.VRdMax:
		result.Governing = GovernedByCrushing
	case m.SteelLevel == mc2010.Level3:
		result.Governing = GovernedByCombined
	default:
		result.Governing = GovernedBySteel
	}

	if result.VRd > 0 {
		result.Utilization = result.VEd / result.VRd
	} else {
		result.Utilization = math.Inf(1)
	}
	result.IsAdequate = result.VEd <= result.VRd
	result.Warnings = diag.Warnings

	if result.IsAdequate {
		result.Message = fmt.Sprintf("Shear OK - governed by %s", result.Governing)
	} else {
		result.Message = fmt.Sprintf("Shear NOT OK - VEd=%.1f kN > VRd=%.1f kN, governed by %s",
			result.VEd/1e3, result.VRd/1e3, result.Governing)
	}
	for _, w := range result.Warnings {
		result.Message += " | WARNING: " + w.Message
	}

	return result, nil
}
