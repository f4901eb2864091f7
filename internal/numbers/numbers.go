// Package numbers parses textual numeric literals into finite floats.
package numbers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/gencss/internal/result"
	"github.com/yacobolo/gencss/internal/typecheck"
)

var (
	// ErrNotNumber is returned when the input does not parse as a number.
	ErrNotNumber = errors.New("not a number")
	// ErrNotFinite is returned for NaN and infinities.
	ErrNotFinite = errors.New("number is not finite")
)

// leadingFloat matches the longest decimal literal at the start of a string.
var leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ValidateNumber accepts f only when it is finite.
func ValidateNumber(f float64) result.Result[float64, error] {
	if typecheck.IsNaN(f) {
		return result.Err[float64](fmt.Errorf("%v: %w", f, ErrNotNumber))
	}
	if !typecheck.IsFinite(f) {
		return result.Err[float64](fmt.Errorf("%v: %w", f, ErrNotFinite))
	}
	return result.Ok[float64, error](f)
}

// SafeParseFloat parses the longest decimal literal at the start of str,
// so "1.2.3" yields 1.2 and "5-" yields 5. Leading whitespace is
// ignored. It fails when str does not start with a number or the number
// is not finite.
func SafeParseFloat(str string) result.Result[float64, error] {
	s := strings.TrimSpace(str)
	lit := leadingFloat.FindString(s)
	if typecheck.IsEmpty(lit) {
		return result.Err[float64](fmt.Errorf("%q: %w", str, ErrNotNumber))
	}

	lit = strings.Replace(lit, "Infinity", "Inf", 1)
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return result.Err[float64](fmt.Errorf("%q: %w", str, ErrNotFinite))
		}
		return result.Err[float64](fmt.Errorf("%q: %w", str, ErrNotNumber))
	}

	return ValidateNumber(f)
}
