package mc2010

// Section holds the scalar inputs shared by the shear formulas.
// Angles are in degrees, lengths in mm, stresses in MPa, forces in N
// and moments in Nmm.
type Section struct {
	// Concrete
	Fck    float64 `json:"fck"`     // characteristic compressive strength
	GammaC float64 `json:"gamma_c"` // concrete safety factor
	Dg     float64 `json:"dg"`      // maximum aggregate size

	// Geometry
	Z  float64 `json:"z"`  // lever arm
	Bw float64 `json:"bw"` // web thickness

	// Longitudinal reinforcement
	Es float64 `json:"es"` // elastic modulus
	As float64 `json:"as"` // area

	// Internal forces
	Med    float64 `json:"med"`
	Ved    float64 `json:"ved"`
	Ned    float64 `json:"ned"`
	DeltaE float64 `json:"delta_e"` // load eccentricity

	// Shear reinforcement
	Asw   float64 `json:"asw"`   // stirrup area
	Sw    float64 `json:"sw"`    // stirrup spacing
	Fywd  float64 `json:"fywd"`  // design yield strength
	Alfa  float64 `json:"alfa"`  // stirrup inclination
	Theta float64 `json:"theta"` // compression field inclination
}

// NewSection creates a section with the default safety factor and
// vertical stirrups
func NewSection(fck, z, bw float64) *Section {
	return &Section{
		Fck:    fck,
		GammaC: DefaultGammaC,
		Z:      z,
		Bw:     bw,
		Alfa:   DefaultAlfa,
	}
}

// EpsilonX evaluates the longitudinal strain of the section
func (s Section) EpsilonX() (float64, error) {
	return EpsilonX(s.Es, s.As, s.Med, s.Ved, s.Ned, s.Z, s.DeltaE)
}

// ThetaMin evaluates θmin for the strain state of the section
func (s Section) ThetaMin() (float64, error) {
	ex, err := s.EpsilonX()
	if err != nil {
		return 0, err
	}
	return ThetaMin(ex), nil
}

// crushingBase is ηfc·(fck/γc)·bw·z, the part of V_Rd,max common to all levels
func (s Section) crushingBase() (float64, error) {
	nfc, err := Nfc(s.Fck)
	if err != nil {
		return 0, err
	}
	if err := requireNonZero(s.GammaC, "gamma_c"); err != nil {
		return 0, err
	}
	return nfc * (s.Fck / s.GammaC) * s.Bw * s.Z, nil
}

// concreteBase is √fck·z·bw/γc, the part of V_Rd,c common to all levels
func (s Section) concreteBase() (float64, error) {
	fsqr, err := Fsqr(s.Fck)
	if err != nil {
		return 0, err
	}
	if err := requireNonZero(s.GammaC, "gamma_c"); err != nil {
		return 0, err
	}
	return fsqr * s.Z * s.Bw / s.GammaC, nil
}
