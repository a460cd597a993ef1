package service

import (
	"math"

	"growth-projector/domain"
)

// BuildSchedule evaluates the projection at the end of every whole year and,
// for a fractional horizon, at the horizon itself.
func BuildSchedule(input domain.ProjectionInput) (domain.ProjectionSchedule, error) {
	result, err := Project(input)
	if err != nil {
		return domain.ProjectionSchedule{}, err
	}

	whole := math.Floor(input.Years)
	entries := make([]domain.ScheduleEntry, 0, int(whole)+1)

	for year := 1.0; year <= whole; year++ {
		entries = append(entries, scheduleEntry(input, year))
	}
	if input.Years > whole {
		entries = append(entries, scheduleEntry(input, input.Years))
	}

	return domain.ProjectionSchedule{
		Input:   input,
		Entries: entries,
		Result:  result,
	}, nil
}

func scheduleEntry(input domain.ProjectionInput, year float64) domain.ScheduleEntry {
	at := input.WithYears(year)
	r := project(at)
	contributed := input.MonthlyContribution * at.Periods()

	return domain.ScheduleEntry{
		Year:                    year,
		Periods:                 at.Periods(),
		Contributed:             contributed,
		CompoundedPrincipal:     r.CompoundedPrincipal,
		ContributionFutureValue: r.ContributionFutureValue,
		Balance:                 r.TotalAmount,
		InterestEarned:          r.TotalAmount - input.Principal - contributed,
	}
}
