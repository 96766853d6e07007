package shear

import (
	"fmt"

	"github.com/alexiusacademia/mcshear/internal/mc2010"
)

// Member represents a web or slab strip checked for shear at one section
type Member struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section inputs (MPa, mm, N, Nmm, degrees)
	Section mc2010.Section `json:"section"`

	// Approximation levels for the concrete and the steel contribution
	ConcreteLevel mc2010.Level `json:"concrete_level"`
	SteelLevel    mc2010.Level `json:"steel_level"`

	// Whether the member has shear reinforcement
	Reinforced bool `json:"reinforced"`
}

// NewMember creates a member with the default safety factor, vertical
// stirrups and Level I approximations
func NewMember(fck, z, bw float64) *Member {
	return &Member{
		Section:       *mc2010.NewSection(fck, z, bw),
		ConcreteLevel: mc2010.Level1,
		SteelLevel:    mc2010.Level1,
	}
}

// needsStrain reports whether any selected formula depends on εx
func (m *Member) needsStrain() bool {
	if m.ConcreteLevel == mc2010.Level2 {
		return true
	}
	if m.Reinforced {
		return m.SteelLevel == mc2010.Level2 || m.SteelLevel == mc2010.Level3
	}
	return m.SteelLevel == mc2010.Level3 && m.ConcreteLevel != mc2010.Level1
}

// Validate checks if the member definition is valid
func (m *Member) Validate() error {
	s := m.Section
	if s.Fck <= 0 {
		return &ValidationError{"fck must be positive"}
	}
	if s.GammaC <= 0 {
		return &ValidationError{"gamma_c must be positive"}
	}
	if s.Z <= 0 || s.Bw <= 0 {
		return &ValidationError{msg: fmt.Sprintf("invalid section dimensions: z=%.2f, bw=%.2f", s.Z, s.Bw)}
	}
	if !m.ConcreteLevel.Valid() {
		return &ValidationError{msg: fmt.Sprintf("concrete approximation level %d is not defined", int(m.ConcreteLevel))}
	}
	if !m.SteelLevel.Valid() {
		return &ValidationError{msg: fmt.Sprintf("steel approximation level %d is not defined", int(m.SteelLevel))}
	}
	if m.needsStrain() && (s.Es <= 0 || s.As <= 0) {
		return &ValidationError{"longitudinal reinforcement (es, as) is required at the selected approximation level"}
	}
	if m.Reinforced {
		if m.SteelLevel == mc2010.LevelNone {
			return &ValidationError{"a steel approximation level is required for shear reinforcement"}
		}
		if s.Asw <= 0 || s.Sw <= 0 || s.Fywd <= 0 {
			return &ValidationError{msg: fmt.Sprintf("invalid shear reinforcement: asw=%.2f, sw=%.2f, fywd=%.2f", s.Asw, s.Sw, s.Fywd)}
		}
		if s.Theta <= 0 || s.Theta >= 90 {
			return &ValidationError{msg: fmt.Sprintf("compression field inclination must be between 0° and 90°, got %.1f°", s.Theta)}
		}
		if s.Alfa <= 0 || s.Alfa >= 180 {
			return &ValidationError{msg: fmt.Sprintf("stirrup inclination must be between 0° and 180°, got %.1f°", s.Alfa)}
		}
		// cotθ + cotα > 0 keeps V_Rd,s and V_Rd,max positive
		if s.Theta+s.Alfa >= 180 {
			return &ValidationError{msg: fmt.Sprintf("θ + α must be less than 180°, got %.1f° + %.1f°", s.Theta, s.Alfa)}
		}
	}
	return nil
}

// ValidationError represents a member validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
