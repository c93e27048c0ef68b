package present_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func presenter(t *testing.T, lang string) *present.Presenter {
	t.Helper()
	bundle, _ := present.LoadBundle()
	return present.New(bundle, lang)
}

func TestLoadBundle_DetectsShippedLanguages(t *testing.T) {
	bundle, langs := present.LoadBundle()
	require.NotNil(t, bundle)
	assert.ElementsMatch(t, config.SupportedLanguages, langs)
}

func TestFormat_English(t *testing.T) {
	d, err := engine.Compute(date(2000, time.February, 29), date(2024, time.February, 28))
	require.NoError(t, err)

	got := presenter(t, "en").Format(d)

	assert.Equal(t, "23 years, 11 months, 30 days", got.Calendar)
	assert.Equal(t, []string{
		"1,252 weeks",
		"8,765 days",
		"210,360 hours",
		"12,621,600 minutes",
		"757,296,000 seconds",
	}, got.Totals)
	assert.Equal(t, "24 years on Feb 29, 2024", got.NextAnniversary)
	assert.Equal(t, "in 1 day", got.NextIn)
}

func TestFormat_SingularUnits(t *testing.T) {
	start := date(2023, time.January, 1)
	asOf := time.Date(2024, time.February, 2, 1, 1, 1, 0, time.UTC)
	d, err := engine.Compute(start, asOf)
	require.NoError(t, err)

	got := presenter(t, "en").Format(d)
	assert.Equal(t, "1 year, 1 month, 1 day", got.Calendar)
}

func TestFormat_French(t *testing.T) {
	d, err := engine.Compute(date(2023, time.January, 15), date(2023, time.March, 1))
	require.NoError(t, err)

	got := presenter(t, "fr").Format(d)

	// French uses the singular for zero.
	assert.Equal(t, "0 an, 1 mois, 14 jours", got.Calendar)
	assert.Equal(t, "1 an le 15/01/2024", got.NextAnniversary)
	assert.Equal(t, "dans 320 jours", got.NextIn)
	assert.Equal(t, "6 semaines", got.Totals[0])
	assert.Equal(t, "45 jours", got.Totals[1])
}

func TestFormat_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	d, err := engine.Compute(date(2023, time.June, 1), date(2023, time.June, 1))
	require.NoError(t, err)

	got := presenter(t, "de").Format(d)
	assert.Equal(t, "0 years, 0 months, 0 days", got.Calendar)
	assert.Equal(t, "in 366 days", got.NextIn)
}

func TestNumber_GroupsDigits(t *testing.T) {
	p := presenter(t, "en")
	assert.Equal(t, "999", p.Number(999))
	assert.Equal(t, "1,000", p.Number(1000))
	assert.Equal(t, "1,234,567", p.Number(1234567))

	fr := presenter(t, "fr").Number(1234567)
	assert.NotContains(t, fr, ",")
	assert.NotEqual(t, "1234567", fr, "French groups digits too")
}

func TestAgeTransition(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		entry engine.AnniversaryEntry
		want  string
	}{
		{"standard", "en", engine.AnniversaryEntry{YearKnown: true, AgeNext: 26}, "25 → 26"},
		{"first anniversary", "en", engine.AnniversaryEntry{YearKnown: true, AgeNext: 1}, "Birth → 1"},
		{"birth", "en", engine.AnniversaryEntry{YearKnown: true, AgeNext: 0}, "Birth"},
		{"year unknown", "en", engine.AnniversaryEntry{YearKnown: false, AgeNext: 12}, config.AgeUnknown},
		{"first anniversary in French", "fr", engine.AnniversaryEntry{YearKnown: true, AgeNext: 1}, "Naissance → 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, presenter(t, tt.lang).AgeTransition(tt.entry))
		})
	}
}

func TestSummaryFormatter(t *testing.T) {
	en := presenter(t, "en").SummaryFormatter()
	assert.Equal(t, "Anniversary: Baby (birth)", en("Baby", 0, true))
	assert.Equal(t, "Anniversary: Baby (3)", en("Baby", 3, true))
	assert.Equal(t, "Anniversary: Baby", en("Baby", 0, false))

	fr := presenter(t, "fr").SummaryFormatter()
	assert.Equal(t, "Anniversaire : Baby (3)", fr("Baby", 3, true))
	assert.Equal(t, "Anniversaire : Baby (naissance)", fr("Baby", 0, true))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Birthday", presenter(t, "en").Kind(engine.KindBirthday))
	assert.Equal(t, "Anniversary", presenter(t, "en").Kind(engine.KindAnniversary))
	assert.Equal(t, "Anniversaire", presenter(t, "fr").Kind(engine.KindAnniversary))
}

func TestPresenter_WithoutBundle(t *testing.T) {
	p := present.New(nil, "")

	assert.Equal(t, config.DefaultLanguage, p.Lang)
	assert.Equal(t, config.TKeyWinAge, p.Msg(config.TKeyWinAge), "missing translations show the key")
	assert.Equal(t, "5 "+config.TKeyDays, p.Count(config.TKeyDays, 5))
	assert.Equal(t, "2024-03-01", p.Date(date(2024, time.March, 1)))
	assert.Equal(t, "Birth → 1", p.AgeTransition(engine.AnniversaryEntry{YearKnown: true, AgeNext: 1}))

	summary := p.SummaryFormatter()
	assert.Equal(t, "Anniversary: Baby (birth)", summary("Baby", 0, true))
	assert.Equal(t, "Anniversary: Baby (4)", summary("Baby", 4, true))
	assert.Equal(t, "Anniversary: Baby", summary("Baby", 4, false))
}
