package domain

import (
	"fmt"
	"strings"
)

// Frequency is a number of compounding periods per year.
type Frequency int

const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	BiWeekly     Frequency = 26
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

var frequencyNames = map[string]Frequency{
	"annually":      Annually,
	"yearly":        Annually,
	"semiannually":  SemiAnnually,
	"semi-annually": SemiAnnually,
	"quarterly":     Quarterly,
	"monthly":       Monthly,
	"biweekly":      BiWeekly,
	"bi-weekly":     BiWeekly,
	"weekly":        Weekly,
	"daily":         Daily,
}

// ParseFrequency resolves a frequency name such as "monthly".
func ParseFrequency(name string) (Frequency, error) {
	f, ok := frequencyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, NewInputError(FieldCompoundsPerYear, name, "unknown compounding frequency")
	}
	return f, nil
}

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case SemiAnnually:
		return "semiannually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	case BiWeekly:
		return "biweekly"
	case Weekly:
		return "weekly"
	case Daily:
		return "daily"
	}
	return fmt.Sprintf("%d times per year", int(f))
}
