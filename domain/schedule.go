package domain

// ScheduleEntry is the state of a projection at the end of a year.
// The last entry of a fractional horizon falls on the horizon itself.
type ScheduleEntry struct {
	Year                    float64 `json:"year"`
	Periods                 float64 `json:"periods"`
	Contributed             float64 `json:"contributed"`
	CompoundedPrincipal     float64 `json:"compounded_principal"`
	ContributionFutureValue float64 `json:"contribution_future_value"`
	Balance                 float64 `json:"balance"`
	InterestEarned          float64 `json:"interest_earned"`
}

type ProjectionSchedule struct {
	Input   ProjectionInput  `json:"input"`
	Entries []ScheduleEntry  `json:"entries"`
	Result  ProjectionResult `json:"result"`
}
