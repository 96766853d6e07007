package mc2010

import (
	"fmt"
	"math"
)

// ColumnPosition is the location of the supporting column in the slab
type ColumnPosition int

const (
	InnerColumn ColumnPosition = iota
	// EdgeColumnParallel: moment about the axis parallel to the slab edge
	EdgeColumnParallel
	// EdgeColumnPerpendicular: moment about the axis perpendicular to the slab edge
	EdgeColumnPerpendicular
	CornerColumn
)

func (p ColumnPosition) String() string {
	switch p {
	case InnerColumn:
		return "inner"
	case EdgeColumnParallel:
		return "edge (parallel)"
	case EdgeColumnPerpendicular:
		return "edge (perpendicular)"
	case CornerColumn:
		return "corner"
	}
	return fmt.Sprintf("ColumnPosition(%d)", int(p))
}

// Slab holds the flat slab data for the punching rotation.
// Lengths in mm, stresses in MPa, moments per unit length in Nmm/mm.
type Slab struct {
	Lx       float64        `json:"lx"`       // span in x
	Ly       float64        `json:"ly"`       // span in y
	Lmin     float64        `json:"lmin"`     // shorter span, caps bs
	D        float64        `json:"d"`        // effective depth
	Fyd      float64        `json:"fyd"`
	Es       float64        `json:"es"`
	MRd      float64        `json:"m_rd"`     // design flexural strength
	MPd      float64        `json:"m_pd"`     // decompression moment
	Position ColumnPosition `json:"position"`
}

// Rs is the distance from the column axis to the line of contraflexure,
// 0.22·max(Lx, Ly)
func (s Slab) Rs() float64 {
	return 0.22 * math.Max(s.Lx, s.Ly)
}

// bs is the width of the support strip, 1.5·√(rsx·rsy) ≤ lmin
func (s Slab) bs() float64 {
	return math.Min(1.5*math.Sqrt(0.22*s.Lx*0.22*s.Ly), s.Lmin)
}

// MEd calculates the average moment per unit length in the support strip
// for a column reaction vEd with eccentricity eu
// fib Model Code 2010 eq. (7.3-71) to (7.3-74)
func (s Slab) MEd(vEd, eu float64) (float64, error) {
	bs := s.bs()
	if err := requireNonZero(bs, "bs"); err != nil {
		return 0, err
	}
	e := math.Abs(eu)
	switch s.Position {
	case InnerColumn:
		return vEd * (1.0/8 + e/(2*bs)), nil
	case EdgeColumnParallel:
		return math.Max(vEd*(1.0/8+e/(2*bs)), vEd/4), nil
	case EdgeColumnPerpendicular:
		return vEd * (1.0/8 + e/bs), nil
	case CornerColumn:
		return math.Max(vEd*(1.0/8+e/bs), vEd/2), nil
	}
	return 0, fmt.Errorf("mc2010: unknown column position %d", int(s.Position))
}

// Psi calculates the rotation of the slab around the supported area
//
//	Level I:  ψ = 1.5·rs/d·fyd/Es
//	Level II: ψ = 1.5·rs/d·fyd/Es·((mEd − mPd)/(mRd − mPd))^1.5
//
// fib Model Code 2010 eq. (7.3-70) and (7.3-75)
func (s Slab) Psi(level Level, vEd, eu float64) (float64, error) {
	if err := requireNonZero(s.D*s.Es, "d·Es"); err != nil {
		return 0, err
	}
	psi := 1.5 * s.Rs() / s.D * s.Fyd / s.Es

	switch level {
	case Level1:
		return psi, nil
	case Level2:
		med, err := s.MEd(vEd, eu)
		if err != nil {
			return 0, err
		}
		if err := requireNonZero(s.MRd-s.MPd, "mRd − mPd"); err != nil {
			return 0, err
		}
		ratio := (med - s.MPd) / (s.MRd - s.MPd)
		if ratio < 0 {
			return 0, &DomainError{Quantity: "(mEd − mPd)/(mRd − mPd)", Value: ratio, Reason: "negative base to the power 1.5"}
		}
		return psi * math.Pow(ratio, 1.5), nil
	}
	return 0, invalidLevel("punching", level)
}
