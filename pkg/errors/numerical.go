package errors

import (
	"math"
)

// CheckScalar checks a single metric value for NaN or Inf.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvariantViolation("%s: non-finite value %v", operation, value)
	}
	return nil
}

// CheckUnitInterval checks that a fraction such as support or confidence lies in [0, 1].
// Values outside the interval are an invariant violation, not a user error.
func CheckUnitInterval(operation, name string, value float64) error {
	if err := CheckScalar(operation, value); err != nil {
		return err
	}
	if value < 0 || value > 1 {
		return NewInvariantViolation("%s: %s=%v outside [0, 1]", operation, name, value)
	}
	return nil
}

// InOpenUnitInterval reports whether v lies in (0, 1].
func InOpenUnitInterval(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= 1
}
