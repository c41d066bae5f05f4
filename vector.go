// Package mathops provides mathematical and statistical operations on
// one-dimensional vectors of floating-point values. It supports both float32
// and float64 element types and includes common descriptive statistics,
// quantiles, normalization, NaN-aware sorting, and elementwise arithmetic.
//
// NaN carries "missing value" semantics throughout the statistics engine:
// NaN entries are excluded from every aggregate but still occupy a slot, so
// positional operations such as CumulativeSum stay aligned with the input.
package mathops

import "fmt"

// Float is the constraint satisfied by the element types a Vector can hold.
type Float interface {
	~float32 | ~float64
}

// Vector is a lightweight wrapper around a slice of floating-point values.
// It carries no aggregate state of its own; every operation reads the
// underlying slice and, unless documented otherwise, returns a new Vector
// leaving the receiver untouched.
type Vector[T Float] struct {
	data []T
}

// Wrap creates a Vector backed by the given slice. The slice is not copied:
// the Vector aliases the caller's memory, so an in-place sort on the Vector
// is visible through the original slice. Use Clone for an independent copy.
func Wrap[T Float](data []T) Vector[T] {
	return Vector[T]{data: data}
}

// Unwrap returns the underlying slice without copying.
func (v Vector[T]) Unwrap() []T {
	return v.data
}

// Len returns the number of elements, NaN slots included.
func (v Vector[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v Vector[T]) At(i int) T {
	return v.data[i]
}

// Clone returns a Vector backed by a fresh copy of the receiver's values.
func (v Vector[T]) Clone() Vector[T] {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return Vector[T]{data: out}
}

// String returns the slice-literal representation of the vector's values.
func (v Vector[T]) String() string {
	return fmt.Sprintf("%v", v.data)
}

// isNaN reports whether x is an IEEE 754 "not-a-number" value, for any
// floating-point width. NaN is the only value that is not equal to itself.
func isNaN[T Float](x T) bool {
	return x != x
}
