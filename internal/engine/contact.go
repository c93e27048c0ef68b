package engine

import "time"

// EntryKind tells which vCard property a date came from.
type EntryKind string

const (
	KindBirthday    EntryKind = "birthday"
	KindAnniversary EntryKind = "anniversary"
)

// AnniversaryEntry is one dated contact property, prepared for display.
type AnniversaryEntry struct {
	// UID is a deterministic hash used for stability in lists and feeds.
	UID string

	Name string
	Kind EntryKind

	// Date is the original parsed date. When YearKnown is false the year is
	// config.DefaultLeapYear and carries no meaning.
	Date      time.Time
	YearKnown bool

	// NextOccurrence is the upcoming occurrence, today included.
	// This is the primary sorting key of the contacts view.
	NextOccurrence time.Time

	// AgeNext is the count NextOccurrence will mark. Only valid if YearKnown.
	AgeNext int

	// Elapsed is the difference between Date and the generation instant.
	// Only valid if YearKnown and Date is not in the future.
	Elapsed    Difference
	HasElapsed bool
}

// IsToday reports whether the next occurrence falls on now's calendar day.
func (e AnniversaryEntry) IsToday(now time.Time) bool {
	y, m, d := now.Date()
	ny, nm, nd := e.NextOccurrence.Date()
	return y == ny && m == nm && d == nd
}
