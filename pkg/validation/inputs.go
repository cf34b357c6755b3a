package validation

import (
	"fmt"

	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/finance"
)

// InputRange is the recommended span for a projection's amount.
type InputRange struct {
	Min float64
	Max float64
}

// AmountRange returns the recommended amount range for the given mode.
func AmountRange(mode finance.Mode) InputRange {
	if mode == finance.ModeLumpsum {
		return InputRange{Min: constants.MinLumpsumAmount, Max: constants.MaxLumpsumAmount}
	}
	return InputRange{Min: constants.MinSIPAmount, Max: constants.MaxSIPAmount}
}

// ValidateInputRanges compares an input against the recommended ranges and
// returns a warning per value outside them. The projection is still valid;
// the engine does not rely on these bounds.
func ValidateInputRanges(label string, mode finance.Mode, in finance.ProjectionInput) []string {
	var warnings []string

	amounts := AmountRange(mode)
	if in.Amount < amounts.Min || in.Amount > amounts.Max {
		warnings = append(warnings, fmt.Sprintf("%s: amount %.2f is outside the recommended range %.0f-%.0f for %s",
			label, in.Amount, amounts.Min, amounts.Max, mode))
	}

	if in.AnnualRatePercent < constants.MinAnnualRate || in.AnnualRatePercent > constants.MaxAnnualRate {
		warnings = append(warnings, fmt.Sprintf("%s: annual return rate %.2f%% is outside the recommended range %.0f-%.0f%%",
			label, in.AnnualRatePercent, constants.MinAnnualRate, constants.MaxAnnualRate))
	}

	if in.Years < constants.MinYears || in.Years > constants.MaxYears {
		warnings = append(warnings, fmt.Sprintf("%s: time period of %d years is outside the recommended range %d-%d",
			label, in.Years, constants.MinYears, constants.MaxYears))
	}

	return warnings
}
