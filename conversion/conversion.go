// Package conversion provides generic numeric cast helpers between the
// 8/16/32/64-bit integer widths and the two floating-point widths. Casts use
// Go's native conversion semantics: widening is exact, float-to-integer
// truncates toward zero, and out-of-range conversions follow the language's
// standard behavior without additional validation.
package conversion

// Integer is the constraint satisfied by the supported integer widths.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the constraint satisfied by the two floating-point widths.
type Float interface {
	~float32 | ~float64
}

// Number is the constraint satisfied by every supported numeric type.
type Number interface {
	Integer | Float
}

// Cast converts a single numeric value to the target type.
func Cast[To, From Number](v From) To {
	return To(v)
}

// Slice converts every element of a numeric slice to the target type and
// returns the results as a new slice. A nil input yields an empty slice.
func Slice[To, From Number](in []From) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}

	return out
}
