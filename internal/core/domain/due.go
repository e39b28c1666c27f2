package domain

import (
	"fmt"
	"time"
)

// Due component bounds. Hours and minutes use the clock range, not the
// inclusive 24/60 some older forms allowed.
const (
	DueDayMin    = 1
	DueDayMax    = 31
	DueMonthMin  = 1
	DueMonthMax  = 12
	DueYearMin   = 1900
	DueYearMax   = 2100
	DueHourMin   = 0
	DueHourMax   = 23
	DueMinuteMin = 0
	DueMinuteMax = 59
)

// DueParts are the five numeric form fields a due date is entered as.
type DueParts struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

// String renders the zero-padded UTC timestamp the parts describe, valid or not.
func (p DueParts) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00Z", p.Year, p.Month, p.Day, p.Hour, p.Minute)
}

// AssembleDue combines the parts into one UTC timestamp. Combinations that are
// individually in range but not on the calendar, such as 2025-02-30, fail with
// ErrInvalidDueDate.
func AssembleDue(p DueParts) (time.Time, error) {
	due, err := time.Parse(time.RFC3339, p.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDueDate, p)
	}
	return due, nil
}

// DuePartsFromTime splits a stored due timestamp back into form fields.
func DuePartsFromTime(t time.Time) DueParts {
	t = t.UTC()
	return DueParts{
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}
