package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// ErrInvalidRange is matched by every InvalidRangeError through errors.Is.
var ErrInvalidRange = errors.New(config.ErrInvalidRange)

// InvalidRangeError reports a start instant strictly later than the
// reference instant. The engine never swaps or clamps the two.
type InvalidRangeError struct {
	Start time.Time
	AsOf  time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: start %s > as-of %s",
		config.ErrInvalidRange,
		e.Start.Format(time.RFC3339),
		e.AsOf.Format(time.RFC3339))
}

// Is enables errors.Is(err, ErrInvalidRange).
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Difference is the elapsed time between two instants, expressed twice:
// as a calendar breakdown (Years, Months, Days) computed from calendar
// fields, and as an exact millisecond count. The two are independent; the
// calendar breakdown is not derived from AbsoluteMillis.
type Difference struct {
	Years  int
	Months int // 0..11
	Days   int

	AbsoluteMillis int64

	// NextAnniversary is the next occurrence of the start month/day strictly
	// after the reference instant, at midnight.
	NextAnniversary time.Time

	// NextAnniversaryDays is the number of days from the reference instant to
	// NextAnniversary, rounded up. Always in [1, 366].
	NextAnniversaryDays int

	// NextAnniversaryYears is the count that anniversary will mark
	// (the age a person turns on their next birthday).
	NextAnniversaryYears int
}

// TotalWeeks returns the whole weeks elapsed.
func (d Difference) TotalWeeks() int64 { return d.AbsoluteMillis / config.MillisPerWeek }

// TotalDays returns the whole days elapsed.
func (d Difference) TotalDays() int64 { return d.AbsoluteMillis / config.MillisPerDay }

// TotalHours returns the whole hours elapsed.
func (d Difference) TotalHours() int64 { return d.AbsoluteMillis / config.MillisPerHour }

// TotalMinutes returns the whole minutes elapsed.
func (d Difference) TotalMinutes() int64 { return d.AbsoluteMillis / config.MillisPerMinute }

// TotalSeconds returns the whole seconds elapsed.
func (d Difference) TotalSeconds() int64 { return d.AbsoluteMillis / config.MillisPerSecond }

// Compute returns the Difference between start and asOf.
//
// The calendar fields of both instants are read in asOf's location, so a
// start carrying another offset is compared in the same frame.
// It fails with *InvalidRangeError when start is after asOf.
func Compute(start, asOf time.Time) (Difference, error) {
	if start.After(asOf) {
		return Difference{}, &InvalidRangeError{Start: start, AsOf: asOf}
	}
	start = start.In(asOf.Location())

	years, months, days := calendarBreakdown(start, asOf)
	next, offset := NextAnniversary(start, asOf)

	return Difference{
		Years:                years,
		Months:               months,
		Days:                 days,
		AbsoluteMillis:       asOf.UnixMilli() - start.UnixMilli(),
		NextAnniversary:      next,
		NextAnniversaryDays:  offset,
		NextAnniversaryYears: next.Year() - start.Year(),
	}, nil
}

// calendarBreakdown subtracts calendar fields and borrows from the month
// preceding asOf's month when the day difference is negative.
func calendarBreakdown(start, asOf time.Time) (int, int, int) {
	sy, sm, sd := start.Date()
	ay, am, ad := asOf.Date()

	years := ay - sy
	months := int(am) - int(sm)
	days := ad - sd

	if days < 0 {
		months--
		py, pm := previousMonth(ay, am)
		days += DaysIn(pm, py)
		// Only a short February borrow can stay negative (January 31 to
		// March 1): the start day then counts as the February's last day.
		if days < 0 {
			days = ad
		}
	}

	if months < 0 {
		years--
		months += config.MonthsPerYear
	}

	return years, months, days
}

// NextAnniversary returns the next occurrence of start's month/day strictly
// after asOf (at midnight in asOf's location) and the whole days until it,
// rounded up. February 29 rolls to March 1 in non-leap years.
//
// The offset is measured between wall-clock readings, so a daylight saving
// transition between asOf and the anniversary does not shift the count.
func NextAnniversary(start, asOf time.Time) (time.Time, int) {
	loc := asOf.Location()
	candidate := anniversaryIn(start, asOf.Year(), loc)
	if !candidate.After(asOf) {
		candidate = anniversaryIn(start, asOf.Year()+1, loc)
	}

	delta := wallMillis(candidate) - wallMillis(asOf)
	offset := int((delta + config.MillisPerDay - 1) / config.MillisPerDay)
	return candidate, offset
}

// wallMillis reads t's calendar and clock fields as if they were UTC.
func wallMillis(t time.Time) int64 {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC).UnixMilli()
}
