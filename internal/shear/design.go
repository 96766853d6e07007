package shear

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

// DesignResult holds the results of stirrup design
type DesignResult struct {
	// Demand (N)
	VEd    float64 // Design shear force magnitude
	VRdc   float64 // Concrete contribution deducted at Level III
	VSteel float64 // Shear to be carried by the stirrups
	VRdMax float64 // Crushing resistance of the compression field

	// Stirrups
	AswPerSw float64 // Required Asw/sw (mm²/mm)
	SwMax    float64 // Maximum spacing for the given Asw (mm), 0 if none required

	// Status
	StirrupsRequired bool
	IsAdequate       bool
	Warnings         []mc2010.Warning
	Message          string
}

// Design calculates the maximum stirrup spacing carrying the design shear
// force with the stirrup area, angles and steel level of the member.
// The spacing set on the section is ignored.
func (m *Member) Design() (*DesignResult, error) {
	s := m.Section
	if s.Asw <= 0 || s.Fywd <= 0 {
		return nil, fmt.Errorf("invalid shear reinforcement: asw=%.2f, fywd=%.2f", s.Asw, s.Fywd)
	}
	// validate as a reinforced member with a unit spacing placeholder
	probe := *m
	probe.Reinforced = true
	probe.Section.Sw = 1
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	result := &DesignResult{VEd: math.Abs(s.Ved)}
	diag := &mc2010.Diagnostics{}

	vmax, err := probe.Section.VRdMax(m.SteelLevel)
	if err != nil {
		return nil, err
	}
	result.VRdMax = vmax
	result.VSteel = result.VEd

	if m.SteelLevel == mc2010.Level3 {
		if result.VRdc, err = probe.Section.VRdc(m.ConcreteLevel, m.SteelLevel); err != nil {
			return nil, err
		}
		result.VSteel = math.Max(result.VEd-result.VRdc, 0)
	}

	// V_Rd,s of the stirrup area at unit spacing, in N·mm
	perUnit, err := probe.Section.VRds(diag)
	if err != nil {
		return nil, err
	}
	result.Warnings = diag.Warnings

	if result.VEd > vmax {
		result.IsAdequate = false
		result.Message = fmt.Sprintf("Section inadequate - VEd=%.1f kN > VRd,max=%.1f kN. Increase bw or z, or revise θ.",
			result.VEd/1e3, vmax/1e3)
		return result, nil
	}
	result.IsAdequate = true

	if result.VSteel == 0 {
		result.Message = "Concrete contribution carries VEd - provide minimum shear reinforcement"
		return result, nil
	}
	if perUnit <= 0 {
		return nil, fmt.Errorf("stirrups carry no shear at θ=%.1f°, α=%.1f°", s.Theta, s.Alfa)
	}

	result.StirrupsRequired = true
	result.SwMax = perUnit / result.VSteel
	result.AswPerSw = s.Asw / result.SwMax
	result.Message = fmt.Sprintf("Design OK - Asw=%.0f mm² at sw ≤ %.0f mm", s.Asw, result.SwMax)

	return result, nil
}
