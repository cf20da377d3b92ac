package domain

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch {
	case p == "":
		return PeriodMonth, nil
	case p.Valid():
		return p, nil
	default:
		return "", ErrInvalidPeriod
	}
}

func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Since returns the start of the window ending at now. The week is rolling,
// month and year start at calendar boundaries in now's location.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Unix(0, 0).UTC()
	}
}
