package mathops

// zeros returns an all-zero vector of length n.
func zeros[T Float](n int) Vector[T] {
	return Wrap(make([]T, n))
}

// MinMaxNormalize maps every value to (x-min)/(max-min) over the non-NaN
// extrema, so non-NaN outputs land in [0, 1]. NaN inputs map to 0. When every
// value is NaN, or max equals min, the result is all zeros of the same
// length.
func (v Vector[T]) MinMaxNormalize() Vector[T] {
	minVal, err := v.Min()
	if err != nil {
		return zeros[T](len(v.data))
	}

	// Max is defined whenever Min is.
	maxVal, _ := v.Max()

	span := maxVal - minVal
	if span == 0 {
		return zeros[T](len(v.data))
	}

	return v.mapWith(func(x T) T {
		if isNaN(x) {
			return 0
		}

		return (x - minVal) / span
	})
}

// Standardize maps every value to its z-score, (x-mean)/stddev. NaN inputs
// map to 0. An undefined mean is treated as 0 and an undefined standard
// deviation as 1; a standard deviation of exactly 0 yields an all-zero
// result of the same length.
func (v Vector[T]) Standardize() Vector[T] {
	mean, err := v.Mean()
	if err != nil {
		mean = 0
	}

	stddev, err := v.StdDev()
	if err != nil {
		stddev = 1
	}

	if stddev == 0 {
		return zeros[T](len(v.data))
	}

	return v.mapWith(func(x T) T {
		if isNaN(x) {
			return 0
		}

		return (x - mean) / stddev
	})
}
