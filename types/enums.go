package types

// Statistic is a type that represents one of the descriptive statistics a
// summary reports. The string value doubles as the row label in the rendered
// summary table.
type Statistic string

// Constants for the different statistics a summary reports, in table order.
const (
	StatisticCount  Statistic = "Count"   // Number of elements, NaN slots included
	StatisticMean   Statistic = "Mean"    // Arithmetic mean of the non-NaN values
	StatisticStdDev Statistic = "Std Dev" // Population standard deviation
	StatisticMin    Statistic = "Min"     // Smallest non-NaN value
	StatisticQ25    Statistic = "25%"     // 25th percentile
	StatisticMedian Statistic = "Median"  // 50th percentile
	StatisticQ75    Statistic = "75%"     // 75th percentile
	StatisticMax    Statistic = "Max"     // Largest non-NaN value
)

// String returns the string representation of the Statistic.
func (s Statistic) String() string {
	return string(s)
}
