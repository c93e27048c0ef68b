package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// ErrDateParse is wrapped by every parsing failure.
var ErrDateParse = errors.New(config.ErrDateParse)

// instantLayouts are the user-facing input formats, most specific first.
// Layouts without an offset are read in the caller's location.
var instantLayouts = []string{
	config.DateFormatRFC3339,
	config.DateFormatLocalT,
	config.DateFormatSpaced,
	config.DateFormatLocalTM,
	config.DateFormatFullDash,
	config.DateFormatFullBasic,
	config.DateFormatDayFirst,
}

// ParseInstant turns form or flag input into an instant in loc. Date-only
// values resolve to midnight, and an explicit offset is converted to loc.
// Calendar dates that do not exist (2023-02-30) fail the day range check
// of time.ParseInLocation instead of being normalized.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateParse, config.ErrDateMissing)
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, value)
}

// parseContactDate handles the vCard BDAY/ANNIVERSARY formats. Truncated
// values (--MM-DD) carry no year: they are anchored in a leap year so that
// --02-29 survives, and yearKnown is false.
func parseContactDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrDateParse, value)
}
