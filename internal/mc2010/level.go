package mc2010

import "fmt"

// Level selects the approximation level of a formula
type Level int

const (
	// LevelNone means no level was selected for that axis
	LevelNone Level = iota
	Level1
	Level2
	Level3
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case Level1:
		return "Level I"
	case Level2:
		return "Level II"
	case Level3:
		return "Level III"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Valid reports whether l is one of the defined levels, LevelNone included
func (l Level) Valid() bool {
	return l >= LevelNone && l <= Level3
}

// concreteFormula picks the concrete contribution formula for a pair of levels.
//
//	concrete 1        -> Level I
//	concrete 2        -> Level II
//	concrete 0 or 3,
//	  steel 3         -> Level III
//	anything else     -> ErrUndefinedCombination or ErrInvalidLevel
func concreteFormula(concrete, steel Level) (Level, error) {
	if !concrete.Valid() {
		return LevelNone, invalidLevel("concrete", concrete)
	}
	if !steel.Valid() {
		return LevelNone, invalidLevel("steel", steel)
	}
	switch {
	case concrete == Level1:
		return Level1, nil
	case concrete == Level2:
		return Level2, nil
	case steel == Level3:
		return Level3, nil
	}
	return LevelNone, fmt.Errorf("%w: concrete %s with steel %s", ErrUndefinedCombination, concrete, steel)
}
