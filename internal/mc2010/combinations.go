package mc2010

import "math"

// LoadCombination represents an ultimate limit state combination of actions
// Based on fib Model Code 2010 Section 4.5.1.4
type LoadCombination struct {
	ID          string
	Description string
	// Partial factors for each action
	Permanent float64 // G - permanent action
	Variable  float64 // Q - leading variable action
	Seismic   float64 // E - seismic action
}

// ULSCombinations for persistent, transient and seismic design situations
var ULSCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.35G + 1.5Q",
		Permanent:   1.35,
		Variable:    1.5,
	},
	{
		ID:          "2",
		Description: "1.0G + 1.5Q",
		Permanent:   1.0,
		Variable:    1.5,
	},
	{
		ID:          "3",
		Description: "1.35G",
		Permanent:   1.35,
	},
	{
		ID:          "4",
		Description: "1.0G + 1.0E + 0.3Q",
		Permanent:   1.0,
		Variable:    0.3,
		Seismic:     1.0,
	},
}

// Actions holds unfactored action effects of one kind (shear forces in N
// or moments in Nmm)
type Actions struct {
	Permanent float64
	Variable  float64
	Seismic   float64
}

// Factored calculates the design action effect for the combination
func (lc LoadCombination) Factored(a Actions) float64 {
	return lc.Permanent*a.Permanent +
		lc.Variable*a.Variable +
		lc.Seismic*a.Seismic
}

// Governing finds the combination giving the largest design effect in
// magnitude. The sign of the effect is kept.
func Governing(a Actions, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var combo LoadCombination

	for _, c := range combinations {
		if e := c.Factored(a); math.Abs(e) > math.Abs(governing) {
			governing = e
			combo = c
		}
	}

	return governing, combo
}
