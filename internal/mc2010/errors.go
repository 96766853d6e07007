package mc2010

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel indicates an approximation level outside its enumeration.
	ErrInvalidLevel = errors.New("mc2010: approximation level out of range")
	// ErrUndefinedCombination indicates a pair of concrete and steel levels
	// for which no formula is defined.
	ErrUndefinedCombination = errors.New("mc2010: undefined combination of approximation levels")
	// ErrDomain indicates an argument outside the arithmetic domain of a formula.
	ErrDomain = errors.New("mc2010: argument outside the domain of the formula")
)

// DomainError reports the quantity that made a formula undefined
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("mc2010: %s = %g: %s", e.Quantity, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrDomain
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func invalidLevel(kind string, l Level) error {
	return fmt.Errorf("%w: %s level %d", ErrInvalidLevel, kind, int(l))
}
