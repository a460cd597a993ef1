package service

import (
	"fmt"
	"math"

	"growth-projector/domain"
)

// Project computes the future value of the principal and of the contribution
// stream deposited at the end of every compounding period.
// It has no side effects.
func Project(input domain.ProjectionInput) (domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return domain.ProjectionResult{}, err
	}
	if err := checkLimits(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	result := project(input)

	// zero times an overflowed growth factor is NaN
	if math.IsInf(result.TotalAmount, 0) || math.IsNaN(result.TotalAmount) {
		return domain.ProjectionResult{}, domain.NewInputError(domain.FieldYears, input.Years, "projection overflows")
	}

	return result, nil
}

func project(input domain.ProjectionInput) domain.ProjectionResult {
	periodRate := input.PeriodRate()
	periods := input.Periods()

	// (1+r)^n and (1+r)^n - 1 via log1p/expm1 so tiny rates keep their digits
	exponent := periods * math.Log1p(periodRate)
	compounded := input.Principal * math.Exp(exponent)

	var contributions float64
	if periodRate == 0 {
		// annuity factor is 0/0 at a zero rate
		contributions = input.MonthlyContribution * periods
	} else {
		contributions = input.MonthlyContribution * (math.Expm1(exponent) / periodRate)
	}

	return domain.ProjectionResult{
		CompoundedPrincipal:     compounded,
		ContributionFutureValue: contributions,
		TotalAmount:             compounded + contributions,
	}
}

func checkLimits(input domain.ProjectionInput) error {
	if input.Principal > MaxPrincipal {
		return domain.NewInputError(domain.FieldPrincipal, input.Principal,
			fmt.Sprintf("exceeds the maximum of %.2f", MaxPrincipal))
	}
	if input.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.NewInputError(domain.FieldAnnualRate, input.AnnualRatePercent,
			fmt.Sprintf("exceeds the maximum of %.2f%%", MaxAnnualRatePercent))
	}
	if input.CompoundsPerYear > MaxCompoundsPerYear {
		return domain.NewInputError(domain.FieldCompoundsPerYear, input.CompoundsPerYear,
			fmt.Sprintf("exceeds the maximum of %d", MaxCompoundsPerYear))
	}
	if input.Years > MaxYears {
		return domain.NewInputError(domain.FieldYears, input.Years,
			fmt.Sprintf("exceeds the maximum of %.0f", MaxYears))
	}
	if input.MonthlyContribution > MaxMonthlyContribution {
		return domain.NewInputError(domain.FieldMonthlyContribution, input.MonthlyContribution,
			fmt.Sprintf("exceeds the maximum of %.2f", MaxMonthlyContribution))
	}
	return nil
}
