// Package input turns user supplied text into a validated projection input.
package input

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"growth-projector/domain"
)

// RawInput holds the five inputs as entered. An empty field has not been
// supplied yet.
type RawInput struct {
	Principal           string
	AnnualRate          string
	CompoundsPerYear    string
	Years               string
	MonthlyContribution string
}

// Parse converts every field and validates the result.
func (r RawInput) Parse() (domain.ProjectionInput, error) {
	principal, err := ParseAmount(domain.FieldPrincipal, r.Principal)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	rate, err := ParseAmount(domain.FieldAnnualRate, r.AnnualRate)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	compounds, err := ParseCompounds(r.CompoundsPerYear)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	years, err := ParseAmount(domain.FieldYears, r.Years)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	contribution, err := ParseAmount(domain.FieldMonthlyContribution, r.MonthlyContribution)
	if err != nil {
		return domain.ProjectionInput{}, err
	}

	return domain.NewProjectionInput(principal, rate, compounds, years, contribution)
}

// ParseAmount parses a decimal number. For the annual rate a trailing percent
// sign is ignored so "5%" and "5" both mean five percent.
func ParseAmount(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if field == domain.FieldAnnualRate {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	if s == "" {
		return 0, domain.NewInputError(field, nil, "a number is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, domain.NewInputError(field, text, "is not a number")
	}
	return d.InexactFloat64(), nil
}

// ParseCompounds parses a whole number of periods per year or a frequency
// name such as "monthly".
func ParseCompounds(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, domain.NewInputError(domain.FieldCompoundsPerYear, nil, "a whole number is required")
	}

	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}

	f, ferr := domain.ParseFrequency(s)
	if ferr != nil {
		return 0, domain.NewInputError(domain.FieldCompoundsPerYear, text, "is not a whole number or frequency name")
	}
	return int(f), nil
}
