package output

import (
	"math"
	"strings"

	"github.com/iwvelando/sip-forecast/pkg/finance"
	"github.com/iwvelando/sip-forecast/pkg/format"
	"github.com/iwvelando/sip-forecast/pkg/mathutil"
)

// Labels shared by the summary block and the donut.
const (
	InvestedLabel = "Invested amount"
	ReturnsLabel  = "Est. returns"
	TotalLabel    = "Total value"
)

const (
	barWidth     = 40
	investedMark = "#"
	returnsMark  = "+"
)

// DonutSlice is one share of the principal-versus-returns donut.
type DonutSlice struct {
	Label   string  `json:"label" yaml:"label"`
	Value   float64 `json:"value" yaml:"value"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// DonutSlices splits the total value into invested capital and returns.
// Shares are zero when the total value is zero.
func DonutSlices(result finance.ProjectionResult) []DonutSlice {
	return []DonutSlice{
		{
			Label:   InvestedLabel,
			Value:   result.InvestedAmount,
			Percent: mathutil.CalculatePercentage(result.InvestedAmount, result.TotalValue),
		},
		{
			Label:   ReturnsLabel,
			Value:   result.EstimatedReturns,
			Percent: mathutil.CalculatePercentage(result.EstimatedReturns, result.TotalValue),
		},
	}
}

// Bar is one year of the stacked invested/value bar chart.
type Bar struct {
	Year          int     `json:"year" yaml:"year"`
	Invested      float64 `json:"invested" yaml:"invested"`
	Value         float64 `json:"value" yaml:"value"`
	InvestedLabel string  `json:"investedLabel" yaml:"investedLabel"`
	ValueLabel    string  `json:"valueLabel" yaml:"valueLabel"`
}

// BarSeries converts the yearly series into chart bars with compact labels.
func BarSeries(result finance.ProjectionResult) []Bar {
	bars := make([]Bar, 0, len(result.YearlyData))
	for _, point := range result.YearlyData {
		bars = append(bars, Bar{
			Year:          point.Year,
			Invested:      point.InvestedTillDate,
			Value:         point.EstimatedValueTillDate,
			InvestedLabel: format.Compact(point.InvestedTillDate),
			ValueLabel:    format.Compact(point.EstimatedValueTillDate),
		})
	}
	return bars
}

// scaleMax is the largest finite bar height in the series.
func scaleMax(bars []Bar) float64 {
	var max float64
	for _, bar := range bars {
		for _, v := range []float64{bar.Invested, bar.Value} {
			if !math.IsInf(v, 0) && !math.IsNaN(v) {
				max = mathutil.Max(max, v)
			}
		}
	}
	return max
}

// renderBar draws a bar scaled against max: the invested part with '#' and
// any growth above it with '+'.
func renderBar(bar Bar, max float64) string {
	if max <= 0 {
		return ""
	}
	invested := cells(bar.Invested, max)
	value := cells(bar.Value, max)
	if value <= invested {
		return strings.Repeat(investedMark, value)
	}
	return strings.Repeat(investedMark, invested) + strings.Repeat(returnsMark, value-invested)
}

func cells(v, max float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if math.IsInf(v, 1) || v >= max {
		return barWidth
	}
	return int(math.Round(v / max * barWidth))
}
