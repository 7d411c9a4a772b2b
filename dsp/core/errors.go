package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned (wrapped) whenever a precondition of a
// resampling or analysis call is violated. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument wraps [ErrInvalidArgument] with a package prefix and a
// message naming the failed precondition.
func InvalidArgument(pkg, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", pkg, ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first NaN or ±Inf value in data,
// or -1 if all values are finite.
func FirstNonFinite(data []float64) int {
	for i, v := range data {
		if !IsFinite(v) {
			return i
		}
	}

	return -1
}
