package mc2010

import "fmt"

// WarningCode identifies a non-fatal code-range condition
type WarningCode string

const (
	// WarnThetaOutOfRange is raised when θ lies outside [20°, 45°]
	WarnThetaOutOfRange WarningCode = "theta-out-of-range"
	// WarnConcreteLevel is raised when the concrete level is neither I nor II
	WarnConcreteLevel WarningCode = "concrete-level"
)

// Warning is a single diagnostic produced while evaluating a formula
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Diagnostics collects warnings. A nil *Diagnostics discards them, so
// callers that do not care can pass nil.
type Diagnostics struct {
	Warnings []Warning
}

func (d *Diagnostics) warn(code WarningCode, format string, args ...any) {
	if d == nil {
		return
	}
	d.Warnings = append(d.Warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Has reports whether a warning with the given code was collected
func (d *Diagnostics) Has(code WarningCode) bool {
	if d == nil {
		return false
	}
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Len returns the number of collected warnings
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Warnings)
}
