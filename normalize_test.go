package mathops

import (
	"math"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestMinMaxNormalize(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected []float64
	}{
		{name: "spread values", data: []float64{1, 2, 3}, expected: []float64{0, 0.5, 1}},
		{name: "nan maps to zero", data: []float64{0, math.NaN(), 10}, expected: []float64{0, 0, 1}},
		{name: "constant input", data: []float64{4, 4, 4}, expected: []float64{0, 0, 0}},
		{name: "all nan", data: []float64{math.NaN(), math.NaN()}, expected: []float64{0, 0}},
		{name: "empty", data: []float64{}, expected: []float64{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Wrap(test.data).MinMaxNormalize()
			assert.Equal(t, test.expected, got.Unwrap())
		})
	}
}

func TestMinMaxNormalize_RangeBound(t *testing.T) {
	got := Wrap([]float64{-7.5, 12, 0.25, 3, 99.9}).MinMaxNormalize()

	for _, x := range got.Unwrap() {
		assert.True(t, x >= 0 && x <= 1)
	}
}

func TestStandardize(t *testing.T) {
	// mean 2, population stddev sqrt(2/3)
	got := Wrap([]float64{1, 2, 3}).Standardize().Unwrap()

	scale := math.Sqrt(2.0 / 3.0)
	inDelta(t, -1/scale, got[0])
	inDelta(t, 0, got[1])
	inDelta(t, 1/scale, got[2])
}

func TestStandardize_Degenerate(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected []float64
	}{
		// stddev undefined for a single value: treated as 1
		{name: "single value", data: []float64{5}, expected: []float64{0}},
		// stddev exactly zero: all zeros
		{name: "constant input", data: []float64{3, 3, 3}, expected: []float64{0, 0, 0}},
		// nan maps to zero
		{name: "nan slot", data: []float64{1, math.NaN(), 3}, expected: []float64{-1, 0, 1}},
		{name: "all nan", data: []float64{math.NaN()}, expected: []float64{0}},
		{name: "empty", data: []float64{}, expected: []float64{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Wrap(test.data).Standardize()
			assert.Equal(t, test.expected, got.Unwrap())
		})
	}
}
