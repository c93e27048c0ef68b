package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-toolbox/internal/engine"
)

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.IsLeap(tt.year), "year %d", tt.year)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, engine.DaysIn(time.January, 2023))
	assert.Equal(t, 28, engine.DaysIn(time.February, 2023))
	assert.Equal(t, 29, engine.DaysIn(time.February, 2024))
	assert.Equal(t, 28, engine.DaysIn(time.February, 1900))
	assert.Equal(t, 30, engine.DaysIn(time.April, 2024))
	assert.Equal(t, 31, engine.DaysIn(time.December, 2024))

	// Matches the standard library normalisation for every month of a cycle.
	for y := 1996; y <= 2004; y++ {
		for m := time.January; m <= time.December; m++ {
			last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, last, engine.DaysIn(m, y), "%s %d", m, y)
		}
	}
}

func TestAddPeriod(t *testing.T) {
	tests := []struct {
		name                string
		from                time.Time
		years, months, days int
		want                time.Time
	}{
		{"plain month", date(2023, time.January, 15), 0, 1, 0, date(2023, time.February, 15)},
		{"overflows past February end", date(2023, time.January, 31), 0, 1, 0, date(2023, time.March, 3)},
		{"overflows past leap February end", date(2024, time.January, 31), 0, 1, 0, date(2024, time.March, 2)},
		{"leapling plus one year", date(2000, time.February, 29), 1, 0, 0, date(2001, time.March, 1)},
		{"leapling plus four years", date(2000, time.February, 29), 4, 0, 0, date(2004, time.February, 29)},
		{"months carry into years", date(2023, time.November, 10), 0, 14, 0, date(2025, time.January, 10)},
		{"missing day then days", date(2023, time.March, 31), 0, 1, 0, date(2023, time.May, 1)},
		{"months then days", date(2023, time.January, 31), 0, 3, 29, date(2023, time.May, 30)},
		{"negative months", date(2023, time.March, 31), 0, -1, 0, date(2023, time.March, 3)},
		{"negative across year", date(2023, time.January, 15), 0, -2, 0, date(2022, time.November, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.AddPeriod(tt.from, tt.years, tt.months, tt.days)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAddPeriod_KeepsClockAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	from := time.Date(2024, time.May, 31, 13, 45, 10, 5, loc)

	got := engine.AddPeriod(from, 0, 1, 0)

	assert.Equal(t, time.Date(2024, time.July, 1, 13, 45, 10, 5, loc), got)
	assert.Equal(t, loc, got.Location())
}
