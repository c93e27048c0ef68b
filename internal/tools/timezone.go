package tools

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone names resolve on hosts without a zoneinfo database

	"github.com/tartampluch/go-toolbox/internal/engine"
)

// TimezoneResult is a wall-clock reading moved to another zone.
type TimezoneResult struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	// OffsetDiff is the offset of the target zone minus the offset of the
	// source zone at that instant.
	OffsetDiff time.Duration `json:"offset_diff"`
}

// ConvertTimezone reads t's calendar and clock fields as a wall-clock time
// in fromZone and returns the same instant seen from toZone. Zone names
// are IANA identifiers ("Europe/Paris") or "UTC"/"Local".
func ConvertTimezone(t time.Time, fromZone, toZone string) (TimezoneResult, error) {
	from, err := loadZone(fromZone)
	if err != nil {
		return TimezoneResult{}, err
	}
	to, err := loadZone(toZone)
	if err != nil {
		return TimezoneResult{}, err
	}

	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	src := time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), from)
	dst := src.In(to)

	_, fromOff := src.Zone()
	_, toOff := dst.Zone()

	return TimezoneResult{
		From:       src,
		To:         dst,
		OffsetDiff: time.Duration(toOff-fromOff) * time.Second,
	}, nil
}

// SourceTime returns value parsed as a wall clock in fromZone, or now seen
// from fromZone when value is empty. A value with an explicit offset is
// moved into fromZone. An unknown zone is left for ConvertTimezone to
// report.
func SourceTime(now time.Time, fromZone, value string) (time.Time, error) {
	loc, err := time.LoadLocation(fromZone)
	if err != nil {
		loc = time.UTC
	}
	if value == "" {
		return now.In(loc), nil
	}
	return engine.ParseInstant(value, loc)
}

func loadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTimezone, name)
	}
	return loc, nil
}
