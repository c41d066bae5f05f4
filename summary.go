package mathops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/aaiyer/math-ops/types"
)

// Summary is an immutable snapshot of a vector's descriptive statistics.
// Count covers every slot, NaN included; the remaining statistics are
// computed over the non-NaN values only and are nil when undefined (for
// example over an empty or all-NaN vector). A Summary keeps no reference to
// the vector it was built from.
type Summary[T Float] struct {
	Count  int `json:"count"`
	Mean   *T  `json:"mean"`
	StdDev *T  `json:"stddev"`
	Min    *T  `json:"min"`
	Q25    *T  `json:"q25"`
	Median *T  `json:"median"`
	Q75    *T  `json:"q75"`
	Max    *T  `json:"max"`
}

// Summary computes the full set of descriptive statistics in one pass over
// the statistics engine. Undefined statistics come back nil rather than
// failing the whole snapshot.
func (v Vector[T]) Summary() Summary[T] {
	return Summary[T]{
		Count:  v.Len(),
		Mean:   optional(v.Mean()),
		StdDev: optional(v.StdDev()),
		Min:    optional(v.Min()),
		Q25:    optional(v.Quantile(0.25)),
		Median: optional(v.Median()),
		Q75:    optional(v.Quantile(0.75)),
		Max:    optional(v.Max()),
	}
}

// optional adapts a (value, error) statistic result to the Summary's
// nil-when-undefined representation.
func optional[T Float](value T, err error) *T {
	if err != nil {
		return nil
	}

	return &value
}

// String renders the summary as a two-column ASCII table with a
// "Statistic | Value" header. Values are formatted with four fractional
// digits; undefined statistics render as "NaN". Count renders as a plain
// integer.
func (s Summary[T]) String() string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	// Keep the header text verbatim instead of tablewriter's default
	// uppercasing.
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Statistic", "Value"})

	table.Append([]string{types.StatisticCount.String(), strconv.Itoa(s.Count)})
	table.Append([]string{types.StatisticMean.String(), formatCell(s.Mean)})
	table.Append([]string{types.StatisticStdDev.String(), formatCell(s.StdDev)})
	table.Append([]string{types.StatisticMin.String(), formatCell(s.Min)})
	table.Append([]string{types.StatisticQ25.String(), formatCell(s.Q25)})
	table.Append([]string{types.StatisticMedian.String(), formatCell(s.Median)})
	table.Append([]string{types.StatisticQ75.String(), formatCell(s.Q75)})
	table.Append([]string{types.StatisticMax.String(), formatCell(s.Max)})

	table.Render()

	return buf.String()
}

// formatCell renders one statistic cell: four fractional digits for a
// defined value, "NaN" otherwise.
func formatCell[T Float](value *T) string {
	if value == nil {
		return "NaN"
	}

	return fmt.Sprintf("%.4f", float64(*value))
}
