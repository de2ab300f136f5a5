// Package schedule holds the business-day and business-hour rules used to
// pick and check callback slots. Nothing here reads the wall clock or global
// state; callers pass a Clock and a Calendar.
package schedule

import (
	"time"

	"agendados/internal/domain"
)

// LimaZone is the IANA zone agents work in.
const LimaZone = "America/Lima"

// Calendar reports non-working dates.
type Calendar interface {
	IsHoliday(date time.Time) bool
}

type monthDay struct {
	month time.Month
	day   int
}

var peruFixedHolidays = map[monthDay]bool{
	{time.January, 1}:   true,
	{time.April, 18}:    true,
	{time.April, 19}:    true,
	{time.May, 1}:       true,
	{time.June, 29}:     true,
	{time.July, 28}:     true,
	{time.July, 29}:     true,
	{time.August, 30}:   true,
	{time.October, 8}:   true,
	{time.November, 1}:  true,
	{time.December, 8}:  true,
	{time.December, 25}: true,
}

type peruCalendar struct {
	extra map[string]bool
}

// NewPeruCalendar returns the Peruvian national holidays plus the given
// one-off dates.
func NewPeruCalendar(extra ...time.Time) Calendar {
	c := &peruCalendar{extra: make(map[string]bool, len(extra))}
	for _, d := range extra {
		c.extra[d.Format(domain.DateLayout)] = true
	}
	return c
}

func (c *peruCalendar) IsHoliday(date time.Time) bool {
	if peruFixedHolidays[monthDay{date.Month(), date.Day()}] {
		return true
	}
	return c.extra[date.Format(domain.DateLayout)]
}

// LoadLocation loads the named zone, falling back to a fixed UTC-5 offset
// when tzdata is not available.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("PET", -5*60*60)
	}
	return loc
}
