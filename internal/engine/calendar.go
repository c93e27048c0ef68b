package engine

import "time"

// daysBefore[m] counts the days of a non-leap year before month m begins.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month m in year.
func DaysIn(m time.Month, year int) int {
	if m == time.February && IsLeap(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// previousMonth returns the month before (year, m), wrapping January to
// December of the previous year.
func previousMonth(year int, m time.Month) (int, time.Month) {
	if m == time.January {
		return year - 1, time.December
	}
	return year, m - 1
}

// AddPeriod adds a calendar period to t. A day of month missing from the
// target month overflows into the next one (January 31 + 1 month =
// March 3 in 2023), the same normalization that rolls a February 29
// anniversary to March 1. Reconstructing start with a Compute breakdown
// lands on asOf's date, except after the short February fallback.
func AddPeriod(t time.Time, years, months, days int) time.Time {
	return t.AddDate(years, months, days)
}

// anniversaryIn returns the month/day of start in year at midnight in loc.
// A February 29 start rolls to March 1 when year is not a leap year,
// which is exactly how time.Date normalizes the overflow.
func anniversaryIn(start time.Time, year int, loc *time.Location) time.Time {
	return time.Date(year, start.Month(), start.Day(), 0, 0, 0, 0, loc)
}
