package schedule

import (
	"fmt"
	"time"

	"agendados/internal/dictation"
	"agendados/internal/domain"
)

// Clock is the source of the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in Location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location)
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// BusinessHours is the inclusive window in which callbacks are expected.
type BusinessHours struct {
	Open  dictation.TimeOfDay
	Close dictation.TimeOfDay
}

var DefaultBusinessHours = BusinessHours{
	Open:  dictation.TimeOfDay{Hour: 9},
	Close: dictation.TimeOfDay{Hour: 20},
}

// Contains reports whether t falls inside the window.
func (h BusinessHours) Contains(t dictation.TimeOfDay) bool {
	m := minutes(t)
	return m >= minutes(h.Open) && m <= minutes(h.Close)
}

func minutes(t dictation.TimeOfDay) int {
	return t.Hour*60 + t.Minute
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateOptions lists today and the following daysAhead days.
func DateOptions(today time.Time, daysAhead int) []time.Time {
	start := Day(today)
	opts := make([]time.Time, 0, daysAhead+1)
	for i := 0; i <= daysAhead; i++ {
		opts = append(opts, start.AddDate(0, 0, i))
	}
	return opts
}

// IsBusinessDay reports whether date is neither a Sunday nor a holiday.
func IsBusinessDay(date time.Time, cal Calendar) bool {
	return date.Weekday() != time.Sunday && !cal.IsHoliday(date)
}

// NextBusinessDay returns the first business day strictly after date.
func NextBusinessDay(date time.Time, cal Calendar) time.Time {
	candidate := Day(date).AddDate(0, 0, 1)
	for !IsBusinessDay(candidate, cal) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// DefaultDate is the date preselected for a new callback: the next business
// day after today.
func DefaultDate(clock Clock, cal Calendar) time.Time {
	return NextBusinessDay(clock.Now(), cal)
}

// Evaluate checks a callback slot. It returns the first alert that applies:
// Sunday, then holiday, then outside business hours.
func Evaluate(at time.Time, cal Calendar, hours BusinessHours) (domain.ScheduleAlert, bool) {
	switch {
	case at.Weekday() == time.Sunday:
		return domain.AlertSunday, true
	case !IsBusinessDay(at, cal):
		return domain.AlertHoliday, true
	case !hours.Contains(dictation.TimeOfDay{Hour: at.Hour(), Minute: at.Minute()}):
		return domain.AlertOutsideHours, true
	}
	return "", false
}

// To24Hour converts a 12-hour clock reading. Hour 12 AM is midnight.
func To24Hour(hour12, minute int, isAM bool) (dictation.TimeOfDay, error) {
	if hour12 < 1 || hour12 > 12 || minute < 0 || minute > 59 {
		return dictation.TimeOfDay{}, fmt.Errorf("%w: %d:%02d", domain.ErrInvalidSchedule, hour12, minute)
	}
	h := hour12 % 12
	if !isAM {
		h += 12
	}
	return dictation.TimeOfDay{Hour: h, Minute: minute}, nil
}

// From24Hour is the inverse of To24Hour.
func From24Hour(t dictation.TimeOfDay) (hour12, minute int, isAM bool) {
	switch {
	case t.Hour == 0:
		hour12 = 12
	case t.Hour <= 12:
		hour12 = t.Hour
	default:
		hour12 = t.Hour - 12
	}
	return hour12, t.Minute, t.Hour < 12
}

// ParseDate reads a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	return d, nil
}

// At combines a date and a time of day in the date's location.
func At(date time.Time, t dictation.TimeOfDay) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}
