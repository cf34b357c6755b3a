package output

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/sip-forecast/pkg/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonutSlices(t *testing.T) {
	result, err := finance.ComputeSIP(25000, 12, 10)
	require.NoError(t, err)

	slices := DonutSlices(result)
	require.Len(t, slices, 2)
	assert.Equal(t, InvestedLabel, slices[0].Label)
	assert.Equal(t, ReturnsLabel, slices[1].Label)
	assert.InDelta(t, 51.6486, slices[0].Percent, 1e-3)
	assert.InDelta(t, 100.0, slices[0].Percent+slices[1].Percent, 1e-9)
}

func TestDonutSlicesZeroTotal(t *testing.T) {
	result, err := finance.ComputeLumpsum(0, 12, 5)
	require.NoError(t, err)

	for _, slice := range DonutSlices(result) {
		assert.Zero(t, slice.Percent)
		assert.False(t, math.IsNaN(slice.Percent))
	}
}

func TestBarSeries(t *testing.T) {
	result, err := finance.ComputeLumpsum(1000000, 12, 10)
	require.NoError(t, err)

	bars := BarSeries(result)
	require.Len(t, bars, 10)
	assert.Equal(t, 1, bars[0].Year)
	assert.Equal(t, "₹1.0M", bars[0].InvestedLabel)
	assert.Equal(t, "₹1.1M", bars[0].ValueLabel)
	assert.Equal(t, "₹3.1M", bars[9].ValueLabel)
	assert.Equal(t, result.TotalValue, bars[9].Value)
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name     string
		bar      Bar
		max      float64
		expected string
	}{
		{
			name:     "growth above capital",
			bar:      Bar{Invested: 50, Value: 100},
			max:      100,
			expected: strings.Repeat("#", 20) + strings.Repeat("+", 20),
		},
		{
			name:     "no growth",
			bar:      Bar{Invested: 50, Value: 50},
			max:      100,
			expected: strings.Repeat("#", 20),
		},
		{
			name:     "loss",
			bar:      Bar{Invested: 100, Value: 25},
			max:      100,
			expected: strings.Repeat("#", 10),
		},
		{
			name:     "empty scale",
			bar:      Bar{},
			max:      0,
			expected: "",
		},
		{
			name:     "infinite value fills the width",
			bar:      Bar{Invested: 10, Value: math.Inf(1)},
			max:      10,
			expected: strings.Repeat("#", barWidth),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderBar(tt.bar, tt.max))
		})
	}
}

func TestScaleMaxIgnoresNonFinite(t *testing.T) {
	bars := []Bar{
		{Invested: 10, Value: 40},
		{Invested: 10, Value: math.Inf(1)},
		{Invested: math.NaN(), Value: 5},
	}
	assert.Equal(t, 40.0, scaleMax(bars))
}
