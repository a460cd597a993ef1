package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ProjectionInput holds the five scalar inputs of a future value projection.
// MonthlyContribution is deposited at the end of every compounding period.
type ProjectionInput struct {
	Principal           float64 `json:"principal" yaml:"principal" toml:"principal"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" yaml:"annual_rate_percent" toml:"annual_rate_percent"`
	CompoundsPerYear    int     `json:"compounds_per_year" yaml:"compounds_per_year" toml:"compounds_per_year"`
	Years               float64 `json:"years" yaml:"years" toml:"years"`
	MonthlyContribution float64 `json:"monthly_contribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
}

// ProjectionResult is the outcome of a projection.
// TotalAmount is always CompoundedPrincipal + ContributionFutureValue.
type ProjectionResult struct {
	CompoundedPrincipal     float64 `json:"compounded_principal"`
	ContributionFutureValue float64 `json:"contribution_future_value"`
	TotalAmount             float64 `json:"total_amount"`
}

// ProjectionRecord is a calculation kept in the service history.
type ProjectionRecord struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Input     ProjectionInput  `json:"input"`
	Result    ProjectionResult `json:"result"`
}

// NewProjectionInput builds a validated ProjectionInput.
func NewProjectionInput(
	principal float64,
	annualRatePercent float64,
	compoundsPerYear int,
	years float64,
	monthlyContribution float64,
) (ProjectionInput, error) {
	in := ProjectionInput{
		Principal:           principal,
		AnnualRatePercent:   annualRatePercent,
		CompoundsPerYear:    compoundsPerYear,
		Years:               years,
		MonthlyContribution: monthlyContribution,
	}
	if err := in.Validate(); err != nil {
		return ProjectionInput{}, err
	}
	return in, nil
}

// Validate checks the domain constraints of the input.
func (in ProjectionInput) Validate() error {
	if in.CompoundsPerYear <= 0 {
		return NewInputError(FieldCompoundsPerYear, in.CompoundsPerYear, "must be greater than zero")
	}

	amounts := []struct {
		field    string
		value    float64
		negative bool
	}{
		{FieldPrincipal, in.Principal, false},
		{FieldAnnualRate, in.AnnualRatePercent, true},
		{FieldYears, in.Years, false},
		{FieldMonthlyContribution, in.MonthlyContribution, false},
	}
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return NewInputError(a.field, a.value, "must be a finite number")
		}
		if a.value < 0 && !a.negative {
			return NewInputError(a.field, a.value, "must not be negative")
		}
	}

	// a period rate of -100% or less has no real fractional power
	if 1+in.PeriodRate() <= 0 {
		return NewInputError(FieldAnnualRate, in.AnnualRatePercent, "period rate must be greater than -100%")
	}

	return nil
}

// Rate returns the annual rate as a decimal fraction.
func (in ProjectionInput) Rate() float64 {
	return in.AnnualRatePercent / 100
}

// PeriodRate returns the rate applied once per compounding period.
func (in ProjectionInput) PeriodRate() float64 {
	return in.Rate() / float64(in.CompoundsPerYear)
}

// Periods returns the number of compounding periods over the horizon.
// It is fractional when Years is.
func (in ProjectionInput) Periods() float64 {
	return float64(in.CompoundsPerYear) * in.Years
}

// WithYears returns a copy of the input with a different horizon.
func (in ProjectionInput) WithYears(years float64) ProjectionInput {
	in.Years = years
	return in
}
