// Package format renders amounts for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/shopspring/decimal"
)

// Currency returns an amount rounded to the nearest rupee with the rupee sign
// and Indian digit grouping (e.g., "₹58,08,477", "-₹1,234").
func Currency(amount float64) string {
	if s, ok := nonFinite(amount); ok {
		return strings.Replace(s, "∞", constants.CurrencySymbol+"∞", 1)
	}
	negative, digits := roundRupees(amount)
	if negative {
		return "-" + constants.CurrencySymbol + groupIndian(digits)
	}
	return constants.CurrencySymbol + groupIndian(digits)
}

// Compact returns a short axis label: millions with one decimal ("₹5.8M"),
// thousands with none ("₹250K"), and smaller amounts as-is ("₹900").
func Compact(amount float64) string {
	if s, ok := nonFinite(amount); ok {
		return strings.Replace(s, "∞", constants.CurrencySymbol+"∞", 1)
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	// The unit follows the rounded figure so 999,999 reads 1.0M, not 1000K.
	thousands := math.Round(amount / 1000)
	switch {
	case amount >= 1000000 || thousands >= 1000:
		return fmt.Sprintf("%s%s%.1fM", sign, constants.CurrencySymbol, amount/1000000)
	case amount >= 1000:
		return fmt.Sprintf("%s%s%.0fK", sign, constants.CurrencySymbol, thousands)
	default:
		return sign + constants.CurrencySymbol + strconv.FormatFloat(amount, 'f', -1, 64)
	}
}

// Percent returns a percentage with one decimal (e.g., "51.6%").
func Percent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

// roundRupees rounds half away from zero and returns the sign and the digits
// of the absolute value. Amounts that round to zero are never negative.
func roundRupees(amount float64) (bool, string) {
	rounded := decimal.NewFromFloat(amount).Round(0)
	return rounded.Sign() < 0, rounded.Abs().String()
}

func nonFinite(amount float64) (string, bool) {
	switch {
	case math.IsNaN(amount):
		return "NaN", true
	case math.IsInf(amount, 1):
		return "∞", true
	case math.IsInf(amount, -1):
		return "-∞", true
	}
	return "", false
}

// groupIndian inserts separators after the last three digits and then after
// every two (e.g., "5808477" becomes "58,08,477").
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var builder strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		builder.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(head[i : i+2])
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}
