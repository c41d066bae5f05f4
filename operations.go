package mathops

import (
	"math"

	"github.com/hyp3rd/ewrap"

	"github.com/aaiyer/math-ops/sentinel"
)

// zipWith applies fn pairwise over two vectors of equal length and returns
// the results as a new vector. The op name is attached to the error when the
// lengths differ.
func (v Vector[T]) zipWith(other Vector[T], op string, fn func(a, b T) T) (Vector[T], error) {
	if len(v.data) != len(other.data) {
		return Vector[T]{}, ewrap.Wrap(sentinel.ErrLengthMismatch, op)
	}

	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = fn(v.data[i], other.data[i])
	}

	return Wrap(out), nil
}

// mapWith applies fn to every element and returns the results as a new
// vector.
func (v Vector[T]) mapWith(fn func(x T) T) Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = fn(x)
	}

	return Wrap(out)
}

// Add returns the elementwise sum of two vectors of equal length.
// Returns sentinel.ErrLengthMismatch when the lengths differ.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	return v.zipWith(other, "add", func(a, b T) T { return a + b })
}

// Sub returns the elementwise difference of two vectors of equal length.
// Returns sentinel.ErrLengthMismatch when the lengths differ.
func (v Vector[T]) Sub(other Vector[T]) (Vector[T], error) {
	return v.zipWith(other, "sub", func(a, b T) T { return a - b })
}

// Mul returns the elementwise product of two vectors of equal length.
// Returns sentinel.ErrLengthMismatch when the lengths differ.
func (v Vector[T]) Mul(other Vector[T]) (Vector[T], error) {
	return v.zipWith(other, "mul", func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of two vectors of equal length.
// Division follows IEEE 754 semantics: x/0 is ±Inf and 0/0 is NaN.
// Returns sentinel.ErrLengthMismatch when the lengths differ.
func (v Vector[T]) Div(other Vector[T]) (Vector[T], error) {
	return v.zipWith(other, "div", func(a, b T) T { return a / b })
}

// Mod returns the elementwise floating-point remainder of two vectors of
// equal length. Returns sentinel.ErrLengthMismatch when the lengths differ.
func (v Vector[T]) Mod(other Vector[T]) (Vector[T], error) {
	return v.zipWith(other, "mod", func(a, b T) T { return T(math.Mod(float64(a), float64(b))) })
}

// AddScalar returns a new vector with scalar added to every element.
func (v Vector[T]) AddScalar(scalar T) Vector[T] {
	return v.mapWith(func(x T) T { return x + scalar })
}

// SubScalar returns a new vector with scalar subtracted from every element.
func (v Vector[T]) SubScalar(scalar T) Vector[T] {
	return v.mapWith(func(x T) T { return x - scalar })
}

// MulScalar returns a new vector with every element multiplied by scalar.
func (v Vector[T]) MulScalar(scalar T) Vector[T] {
	return v.mapWith(func(x T) T { return x * scalar })
}

// DivScalar returns a new vector with every element divided by scalar.
func (v Vector[T]) DivScalar(scalar T) Vector[T] {
	return v.mapWith(func(x T) T { return x / scalar })
}

// ModScalar returns a new vector with the floating-point remainder of every
// element by scalar.
func (v Vector[T]) ModScalar(scalar T) Vector[T] {
	return v.mapWith(func(x T) T { return T(math.Mod(float64(x), float64(scalar))) })
}
