// Package finance provides the projection engine for periodic (SIP) and
// one-time (lumpsum) investments.
package finance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/sip-forecast/pkg/constants"
)

const percentDivisor = constants.PercentageMultiplier

// ErrInvalidArgument is returned when an input lies outside the engine's domain.
var ErrInvalidArgument = errors.New("invalid argument")

func percentToDecimal(percent float64) float64 {
	return percent / percentDivisor
}

// Mode selects which calculator a projection runs through.
type Mode string

const (
	ModeSIP     Mode = constants.ModeSIP
	ModeLumpsum Mode = constants.ModeLumpsum
)

// ParseMode resolves a user-supplied mode name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.ModeSIP, "monthly":
		return ModeSIP, nil
	case constants.ModeLumpsum, "lump-sum", "one-time", "onetime":
		return ModeLumpsum, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, name)
	}
}

// ProjectionInput holds the scalar parameters of a single projection.
// Amount is the monthly contribution for SIP and the principal for lumpsum.
type ProjectionInput struct {
	Amount            float64 `json:"amount" yaml:"amount"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	Years             int     `json:"years" yaml:"years"`
}

// YearlyPoint is the state of a projection at the end of a given year.
type YearlyPoint struct {
	Year                   int     `json:"year" yaml:"year"`
	InvestedTillDate       float64 `json:"investedTillDate" yaml:"investedTillDate"`
	EstimatedValueTillDate float64 `json:"estimatedValueTillDate" yaml:"estimatedValueTillDate"`
}

// ProjectionResult holds the totals and the year-by-year series of a projection.
type ProjectionResult struct {
	InvestedAmount   float64       `json:"investedAmount" yaml:"investedAmount"`
	EstimatedReturns float64       `json:"estimatedReturns" yaml:"estimatedReturns"`
	TotalValue       float64       `json:"totalValue" yaml:"totalValue"`
	YearlyData       []YearlyPoint `json:"yearlyData" yaml:"yearlyData"`
}

// Validate checks the input against the engine's domain.
func (in ProjectionInput) Validate() error {
	if in.Years < 1 {
		return fmt.Errorf("%w: years must be at least 1, got %d", ErrInvalidArgument, in.Years)
	}
	if math.IsNaN(in.AnnualRatePercent) || math.IsInf(in.AnnualRatePercent, 0) {
		return fmt.Errorf("%w: annual rate must be finite, got %v", ErrInvalidArgument, in.AnnualRatePercent)
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return fmt.Errorf("%w: amount must be finite, got %v", ErrInvalidArgument, in.Amount)
	}
	if in.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative, got %.2f", ErrInvalidArgument, in.Amount)
	}
	return nil
}

// Compute runs the calculator matching mode.
func Compute(mode Mode, in ProjectionInput) (ProjectionResult, error) {
	switch mode {
	case ModeSIP:
		return ComputeSIP(in.Amount, in.AnnualRatePercent, in.Years)
	case ModeLumpsum:
		return ComputeLumpsum(in.Amount, in.AnnualRatePercent, in.Years)
	default:
		return ProjectionResult{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, mode)
	}
}

// ComputeSIP projects a fixed monthly contribution made at the start of each
// month (annuity-due) with monthly compounding.
func ComputeSIP(monthlyAmount, annualRatePercent float64, years int) (ProjectionResult, error) {
	in := ProjectionInput{Amount: monthlyAmount, AnnualRatePercent: annualRatePercent, Years: years}
	if err := in.Validate(); err != nil {
		return ProjectionResult{}, err
	}

	monthlyRate := percentToDecimal(annualRatePercent) / constants.MonthsPerYear
	totalMonths := years * constants.MonthsPerYear

	totalValue := AnnuityDueValue(monthlyAmount, monthlyRate, totalMonths)
	investedAmount := monthlyAmount * float64(totalMonths)

	// Every year is evaluated from the closed form rather than accumulated so
	// the final point matches the totals exactly.
	yearlyData := make([]YearlyPoint, 0, years)
	for year := 1; year <= years; year++ {
		monthsTillDate := year * constants.MonthsPerYear
		yearlyData = append(yearlyData, YearlyPoint{
			Year:                   year,
			InvestedTillDate:       monthlyAmount * float64(monthsTillDate),
			EstimatedValueTillDate: AnnuityDueValue(monthlyAmount, monthlyRate, monthsTillDate),
		})
	}

	return ProjectionResult{
		InvestedAmount:   investedAmount,
		EstimatedReturns: totalValue - investedAmount,
		TotalValue:       totalValue,
		YearlyData:       yearlyData,
	}, nil
}

// ComputeLumpsum projects a single principal compounding annually.
func ComputeLumpsum(principal, annualRatePercent float64, years int) (ProjectionResult, error) {
	in := ProjectionInput{Amount: principal, AnnualRatePercent: annualRatePercent, Years: years}
	if err := in.Validate(); err != nil {
		return ProjectionResult{}, err
	}

	rate := percentToDecimal(annualRatePercent)
	totalValue := CompoundValue(principal, rate, years)

	yearlyData := make([]YearlyPoint, 0, years)
	for year := 1; year <= years; year++ {
		// The contributed capital of a lumpsum never changes after day one.
		yearlyData = append(yearlyData, YearlyPoint{
			Year:                   year,
			InvestedTillDate:       principal,
			EstimatedValueTillDate: CompoundValue(principal, rate, year),
		})
	}

	return ProjectionResult{
		InvestedAmount:   principal,
		EstimatedReturns: totalValue - principal,
		TotalValue:       totalValue,
		YearlyData:       yearlyData,
	}, nil
}

// AnnuityDueValue returns the future value of months payments of amount made
// at the start of each period at periodicRate. A zero rate returns the plain
// sum of payments, the limit of the formula.
func AnnuityDueValue(amount, periodicRate float64, months int) float64 {
	if periodicRate == 0 {
		return amount * float64(months)
	}
	factor := growth(periodicRate, months) / periodicRate
	// ((1+r)^n - 1)/r >= n for any r > 0.
	if periodicRate > 0 && factor < float64(months) {
		factor = float64(months)
	}
	return amount * factor * (1 + periodicRate)
}

// CompoundValue returns principal compounded once per period for periods at rate.
func CompoundValue(principal, rate float64, periods int) float64 {
	return principal * (1 + growth(rate, periods))
}

// growth returns (1+rate)^periods - 1. Above -100% it goes through Log1p and
// Expm1 so rates close to zero keep their precision.
func growth(rate float64, periods int) float64 {
	if rate > -1 {
		return math.Expm1(float64(periods) * math.Log1p(rate))
	}
	return math.Pow(1+rate, float64(periods)) - 1
}
