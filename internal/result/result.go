// Package result provides a two-variant outcome type used by the
// validation pipeline to propagate failures without early returns at
// every stage.
//
// A Result is either Ok, carrying a value of type T, or Err, carrying a
// failure payload of type E. Stages compose with Map and AndThen; the
// first failure short-circuits the rest of the chain:
//
//	r := result.AndThen(cssunit.SplitUnit(raw), func(s cssunit.Split) result.Result[float64, error] {
//		return numbers.SafeParseFloat(s.Value)
//	})
//	n := r.UnwrapOr(0)
package result

import "fmt"

// Result holds either a success value or a failure payload.
// The zero value is Ok with the zero T.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok wraps a success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

// Err wraps a failure payload.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, isErr: true}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Error returns the failure payload, or the zero E on success.
func (r Result[T, E]) Error() E {
	return r.err
}

// Unwrap returns the success value. Unwrapping a failure is a
// programming error and panics.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		panic(fmt.Sprintf("result: unwrap called on Err: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value, or def on failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isErr {
		return def
	}
	return r.value
}

// Map applies fn to the success value. A failure passes through unchanged.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// AndThen chains a fallible stage. fn runs only on success and its
// result becomes the result of the chain.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return fn(r.value)
}
