package mathops

import (
	"math"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestSummary_CountsNaNSlotsButAggregatesWithout(t *testing.T) {
	summary := Wrap([]float64{1, 2, math.NaN(), 4, 5}).Summary()

	// Count covers every slot; the aggregates only the 4 non-NaN values.
	assert.Equal(t, 5, summary.Count)

	assert.True(t, summary.Mean != nil)
	assert.Equal(t, float64(3), *summary.Mean)

	assert.True(t, summary.Min != nil)
	assert.Equal(t, float64(1), *summary.Min)

	assert.True(t, summary.Max != nil)
	assert.Equal(t, float64(5), *summary.Max)

	assert.True(t, summary.Median != nil)
	assert.Equal(t, float64(3), *summary.Median)

	// R-7 quartiles over [1,2,4,5]
	assert.True(t, summary.Q25 != nil)
	inDelta(t, 1.75, *summary.Q25)

	assert.True(t, summary.Q75 != nil)
	inDelta(t, 4.25, *summary.Q75)

	assert.True(t, summary.StdDev != nil)
	inDelta(t, math.Sqrt(2.5), *summary.StdDev)
}

func TestSummary_EmptyVector(t *testing.T) {
	summary := Wrap([]float64{}).Summary()

	assert.Equal(t, 0, summary.Count)
	assert.Nil(t, summary.Mean)
	assert.Nil(t, summary.StdDev)
	assert.Nil(t, summary.Min)
	assert.Nil(t, summary.Q25)
	assert.Nil(t, summary.Median)
	assert.Nil(t, summary.Q75)
	assert.Nil(t, summary.Max)
}

func TestSummary_SingleValue(t *testing.T) {
	summary := Wrap([]float64{9}).Summary()

	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.Mean != nil)
	assert.Equal(t, float64(9), *summary.Mean)
	// Variance needs at least two values.
	assert.Nil(t, summary.StdDev)
}

func TestSummary_Render(t *testing.T) {
	rendered := Wrap([]float64{1, 2, 3, 4, 5}).Summary().String()

	assert.True(t, strings.Contains(rendered, "Statistic"))
	assert.True(t, strings.Contains(rendered, "Value"))

	// Rows in order with four fractional digits; Count as a plain integer.
	for _, cell := range []string{
		"Count", "5",
		"Mean", "3.0000",
		"Std Dev", "1.4142",
		"Min", "1.0000",
		"25%", "2.0000",
		"Median", "3.0000",
		"75%", "4.0000",
		"Max", "5.0000",
	} {
		assert.True(t, strings.Contains(rendered, cell))
	}
}

func TestSummary_RenderUndefinedAsNaN(t *testing.T) {
	rendered := Wrap([]float64{}).Summary().String()

	assert.True(t, strings.Contains(rendered, "Count"))
	assert.True(t, strings.Contains(rendered, "NaN"))
	assert.False(t, strings.Contains(rendered, "0.0000"))
}
