// Package cssunit splits and validates CSS length values such as
// "1.5rem", "0" or "auto".
package cssunit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/yacobolo/gencss/internal/numbers"
	"github.com/yacobolo/gencss/internal/result"
	"github.com/yacobolo/gencss/internal/typecheck"
)

var (
	// ErrNoNumber is returned when a value has no leading numeric literal.
	ErrNoNumber = errors.New("no number found")
	// ErrInvalidUnit is returned when a unit is outside AllowedUnits.
	ErrInvalidUnit = errors.New("invalid CSS unit")
	// ErrKeywordBreakpoint is returned when a breakpoint uses a keyword.
	ErrKeywordBreakpoint = errors.New("breakpoint must be a length")
)

// AllowedUnits lists the units a non-zero length may use.
var AllowedUnits = []string{"rem", "px", "em"}

// AllowedKeywords lists literal values accepted without numeric parsing.
var AllowedKeywords = []string{"auto"}

// numberWithUnit captures a leading numeric literal and whatever trails it.
var numberWithUnit = regexp.MustCompile(`^([-.\d]+(?:\.\d+)?)(.*)$`)

// Split is a raw value broken into its numeric literal and unit.
type Split struct {
	Value string // "1.5"
	Unit  string // "rem"
}

// Dimension is a validated length or keyword.
type Dimension struct {
	Value   float64 // Numeric value, unused when Keyword is set
	Keyword string  // "auto", empty for numeric values
	Unit    string  // "rem", empty for 0 and keywords
}

// IsKeyword reports whether d holds a keyword instead of a number.
func (d Dimension) IsKeyword() bool {
	return d.Keyword != ""
}

// IsZero reports whether d is the numeric value 0.
func (d Dimension) IsZero() bool {
	return !d.IsKeyword() && d.Value == 0
}

// SplitUnit decomposes raw into a numeric literal and a trailing unit.
// Blank input passes through untouched so the caller decides what
// emptiness means.
func SplitUnit(raw string) result.Result[Split, error] {
	if typecheck.IsBlank(raw) {
		return result.Ok[Split, error](Split{Value: raw})
	}

	m := numberWithUnit.FindStringSubmatch(raw)
	if m == nil {
		return result.Err[Split](fmt.Errorf("%q: %w", raw, ErrNoNumber))
	}

	return result.Ok[Split, error](Split{
		Value: strings.TrimSpace(m[1]),
		Unit:  strings.TrimSpace(m[2]),
	})
}

// ValidateNumberAndUnit validates a spacing or breakpoint value.
//
// Keywords in AllowedKeywords are accepted as-is. Anything else must be
// a finite number followed by a unit from AllowedUnits, or exactly 0
// with no unit.
func ValidateNumberAndUnit(raw string) result.Result[Dimension, error] {
	if slices.Contains(AllowedKeywords, raw) {
		return result.Ok[Dimension, error](Dimension{Keyword: raw})
	}

	return result.AndThen(SplitUnit(raw), func(s Split) result.Result[Dimension, error] {
		return result.AndThen(numbers.SafeParseFloat(s.Value), func(n float64) result.Result[Dimension, error] {
			return checkUnit(n, s.Unit)
		})
	})
}

// ValidateBreakpoint validates a breakpoint width. It follows
// ValidateNumberAndUnit but rejects keywords, which are not usable as a
// min-width condition.
func ValidateBreakpoint(raw string) result.Result[Dimension, error] {
	return result.AndThen(ValidateNumberAndUnit(raw), func(d Dimension) result.Result[Dimension, error] {
		if d.IsKeyword() {
			return result.Err[Dimension](fmt.Errorf("%q: %w", raw, ErrKeywordBreakpoint))
		}
		return result.Ok[Dimension, error](d)
	})
}

func checkUnit(n float64, unit string) result.Result[Dimension, error] {
	zeroAndUnitless := n == 0 && unit == ""
	if !zeroAndUnitless && !slices.Contains(AllowedUnits, unit) {
		return result.Err[Dimension](fmt.Errorf("%w: %q", ErrInvalidUnit, unit))
	}
	return result.Ok[Dimension, error](Dimension{Value: n, Unit: unit})
}

// String renders d for a CSS declaration: "auto", "0", "1.5rem".
func (d Dimension) String() string {
	if d.IsKeyword() {
		return d.Keyword + d.Unit
	}
	return FormatNumber(d.Value) + d.Unit
}

// FormatNumber renders f in its shortest round-tripping decimal form
// ("4", "4.5", "0.25"). Exponent notation is used only below 1e-6 and
// from 1e21 up; negative zero renders as "0".
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
