// Package typecheck holds small predicates shared by the value parsers.
package typecheck

import (
	"math"
	"strings"
)

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return IsEmpty(strings.TrimSpace(s))
}

// IsNaN reports whether f is not a number.
func IsNaN(f float64) bool {
	return math.IsNaN(f)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
