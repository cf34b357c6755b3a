package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "₹0"},
		{"hundreds", 999, "₹999"},
		{"thousands", 1234, "₹1,234"},
		{"one lakh", 100000, "₹1,00,000"},
		{"sip total", 5808476.908798513, "₹58,08,477"},
		{"lumpsum total", 3105848.2083442123, "₹31,05,848"},
		{"one crore", 10000000, "₹1,00,00,000"},
		{"half rounds away from zero", 2.5, "₹3"},
		{"negative", -1234.4, "-₹1,234"},
		{"negative rounding to zero", -0.4, "₹0"},
		{"positive infinity", math.Inf(1), "₹∞"},
		{"negative infinity", math.Inf(-1), "-₹∞"},
		{"not a number", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.amount))
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "₹0"},
		{900, "₹900"},
		{12.5, "₹12.5"},
		{1000, "₹1K"},
		{250000, "₹250K"},
		{2500, "₹3K"},
		{999499, "₹999K"},
		{999500, "₹1.0M"},
		{999999, "₹1.0M"},
		{-999999, "-₹1.0M"},
		{1000000, "₹1.0M"},
		{5808476.9, "₹5.8M"},
		{31058482, "₹31.1M"},
		{-5000, "-₹5K"},
		{math.Inf(1), "₹∞"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Compact(tt.amount), "Compact(%v)", tt.amount)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "51.6%", Percent(51.64865))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(100))
}

func TestGroupIndian(t *testing.T) {
	tests := map[string]string{
		"1":         "1",
		"123":       "123",
		"1234":      "1,234",
		"12345":     "12,345",
		"123456":    "1,23,456",
		"1234567":   "12,34,567",
		"123456789": "12,34,56,789",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, groupIndian(input), input)
	}
}
