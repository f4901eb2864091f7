// Package generator renders padding and margin utility classes from a
// validated spacing scale and a set of breakpoints.
package generator

import (
	"fmt"
	"strings"

	"github.com/yacobolo/gencss/internal/config"
	"github.com/yacobolo/gencss/internal/cssunit"
	"github.com/yacobolo/gencss/internal/result"
)

// Spacing is a validated spacing scale step.
type Spacing struct {
	Key string
	cssunit.Dimension
}

// Breakpoint is a validated minimum viewport width. A zero width means
// the rules apply unconditionally.
type Breakpoint struct {
	Key string
	cssunit.Dimension
}

// Dropped records a config entry that failed validation.
type Dropped struct {
	Key   string
	Value string
	Err   error
}

// ValidateSpacing validates every spacing entry. Invalid entries are
// left out of the returned scale and reported in dropped.
func ValidateSpacing(m config.Mapping) (scale []Spacing, dropped []Dropped) {
	return validate(m, cssunit.ValidateNumberAndUnit, func(key string, d cssunit.Dimension) Spacing {
		return Spacing{Key: key, Dimension: d}
	})
}

// ValidateBreakpoints validates every breakpoint entry. Invalid entries
// are left out of the returned list and reported in dropped.
func ValidateBreakpoints(m config.Mapping) (breakpoints []Breakpoint, dropped []Dropped) {
	return validate(m, cssunit.ValidateBreakpoint, func(key string, d cssunit.Dimension) Breakpoint {
		return Breakpoint{Key: key, Dimension: d}
	})
}

func validate[T any](
	m config.Mapping,
	check func(string) result.Result[cssunit.Dimension, error],
	build func(string, cssunit.Dimension) T,
) ([]T, []Dropped) {
	valid := make([]T, 0, len(m))
	var dropped []Dropped

	for _, e := range m {
		r := result.Map(check(e.Value), func(d cssunit.Dimension) T {
			return build(e.Key, d)
		})
		if v, ok := r.Value(); ok {
			valid = append(valid, v)
			continue
		}
		dropped = append(dropped, Dropped{Key: e.Key, Value: e.Value, Err: r.Error()})
	}

	return valid, dropped
}

// GenerateCSSClasses validates the raw spacing and breakpoint mappings
// and renders the stylesheet. Entries that fail validation produce no
// output.
func GenerateCSSClasses(spacing, breakPoints config.Mapping) string {
	scale, _ := ValidateSpacing(spacing)
	bps, _ := ValidateBreakpoints(breakPoints)
	return Generate(scale, bps)
}

// Generate renders one block per family, spacing step, breakpoint and
// family member, in that nesting order, joined by newlines.
func Generate(scale []Spacing, breakpoints []Breakpoint) string {
	var blocks []string

	for _, family := range Families {
		for _, sp := range scale {
			for _, bp := range breakpoints {
				for _, member := range family.Members {
					blocks = append(blocks, renderBlock(member, sp, bp))
				}
			}
		}
	}

	return strings.Join(blocks, "\n")
}

// Selector returns the class selector for member, spacing key and
// breakpoint, without the leading dot.
func Selector(prefix string, sp Spacing, bp Breakpoint) string {
	if bp.IsZero() {
		return fmt.Sprintf("%s-%s", prefix, sp.Key)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, bp.Key, sp.Key)
}

// MediaCondition returns the media query prelude for bp, or "" for a
// zero-width breakpoint.
func MediaCondition(bp Breakpoint) string {
	if bp.IsZero() {
		return ""
	}
	return fmt.Sprintf("screen and (min-width: %s)", bp.Dimension)
}

func renderBlock(member Member, sp Spacing, bp Breakpoint) string {
	selector := "." + Selector(member.Prefix, sp, bp)

	if bp.IsZero() {
		return renderRule(selector, member.Properties, sp.Dimension, "")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@media %s {\n", MediaCondition(bp))
	b.WriteString(renderRule(selector, member.Properties, sp.Dimension, "\t"))
	b.WriteString("\n}")
	return b.String()
}

func renderRule(selector string, properties []string, value cssunit.Dimension, indent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s {\n", indent, selector)
	for _, prop := range properties {
		fmt.Fprintf(&b, "%s\t%s: %s;\n", indent, prop, value)
	}
	fmt.Fprintf(&b, "%s}", indent)
	return b.String()
}
