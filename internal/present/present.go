// Package present renders engine results as localized, unit-labeled text.
package present

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display is a Difference rendered for one language.
type Display struct {
	Calendar        string   `json:"calendar"`
	Totals          []string `json:"totals"`
	NextAnniversary string   `json:"next_anniversary"`
	NextIn          string   `json:"next_in"`
}

// Presenter formats values for a single language. It is safe for
// concurrent use once built.
type Presenter struct {
	Lang string

	localizer *i18n.Localizer
	printer   *message.Printer
}

// New returns a Presenter for lang. Unknown languages fall back to the
// bundle's default (English) message by message. A nil bundle yields a
// Presenter that returns translation keys and the hard-coded fallbacks.
func New(bundle *i18n.Bundle, lang string) *Presenter {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	p := &Presenter{
		Lang:    lang,
		printer: message.NewPrinter(tag),
	}
	if bundle != nil {
		p.localizer = i18n.NewLocalizer(bundle, lang)
	}
	return p
}

// Msg translates a simple key. The key itself is returned when it is
// missing so the gap stays visible.
func (p *Presenter) Msg(key string) string {
	msg, err := p.localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

// Count renders a plural-aware message with a locale-grouped Count.
func (p *Presenter) Count(key string, n int64) string {
	msg, err := p.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]any{"Count": p.Number(n)},
		PluralCount:  n,
	})
	if err != nil {
		return p.Number(n) + " " + key
	}
	return msg
}

// Number groups digits the way the language does (1,234,567 in English).
func (p *Presenter) Number(n int64) string {
	return p.printer.Sprintf("%d", n)
}

// Date formats t with the language's short date layout.
func (p *Presenter) Date(t time.Time) string {
	layout := p.Msg(config.TKeyFormatDate)
	if layout == config.TKeyFormatDate {
		layout = config.DateFormatDisplay
	}
	return t.Format(layout)
}

// Format renders every part of d.
func (p *Presenter) Format(d engine.Difference) Display {
	calendar := []string{
		p.Count(config.TKeyYears, int64(d.Years)),
		p.Count(config.TKeyMonths, int64(d.Months)),
		p.Count(config.TKeyDays, int64(d.Days)),
	}

	totals := []string{
		p.Count(config.TKeyWeeks, d.TotalWeeks()),
		p.Count(config.TKeyDays, d.TotalDays()),
		p.Count(config.TKeyHours, d.TotalHours()),
		p.Count(config.TKeyMinutes, d.TotalMinutes()),
		p.Count(config.TKeySeconds, d.TotalSeconds()),
	}

	next, err := p.localize(&i18n.LocalizeConfig{
		MessageID: config.TKeyAnniversary,
		TemplateData: map[string]any{
			"Count": p.Number(int64(d.NextAnniversaryYears)),
			"Date":  p.Date(d.NextAnniversary),
		},
		PluralCount: d.NextAnniversaryYears,
	})
	if err != nil {
		next = p.Date(d.NextAnniversary)
	}

	return Display{
		Calendar:        strings.Join(calendar, config.ListSeparator),
		Totals:          totals,
		NextAnniversary: next,
		NextIn:          p.Count(config.TKeyNextIn, int64(d.NextAnniversaryDays)),
	}
}

// AgeTransition renders the change an upcoming anniversary brings:
// "25 → 26", "Birth → 1", or config.AgeUnknown when the year is unknown.
func (p *Presenter) AgeTransition(e engine.AnniversaryEntry) string {
	if !e.YearKnown {
		return config.AgeUnknown
	}
	birth := p.Msg(config.TKeyAgeBirth)
	if birth == config.TKeyAgeBirth {
		birth = config.FallbackBirth
	}
	if e.AgeNext == 0 {
		return birth
	}
	prev := fmt.Sprint(e.AgeNext - 1)
	if e.AgeNext == 1 {
		prev = birth
	}
	return fmt.Sprintf(config.FormatAgeTransition, prev, e.AgeNext)
}

// Kind names an entry kind.
func (p *Presenter) Kind(k engine.EntryKind) string {
	if k == engine.KindAnniversary {
		return p.Msg(config.TKeyKindAnniv)
	}
	return p.Msg(config.TKeyKindBirthday)
}

// SummaryFormatter returns the localized event summary builder used by
// engine.Generator.
func (p *Presenter) SummaryFormatter() func(name string, count int, yearKnown bool) string {
	return func(name string, count int, yearKnown bool) string {
		lc := &i18n.LocalizeConfig{
			MessageID:    config.TKeyEvtSummary,
			TemplateData: map[string]any{"Name": name},
		}
		if yearKnown && count == 0 {
			lc.MessageID = config.TKeyEvtSummaryB
		} else if yearKnown {
			lc.MessageID = config.TKeyEvtSummaryN
			lc.TemplateData = map[string]any{"Name": name, "Age": count}
		}

		msg, err := p.localize(lc)
		if err == nil && msg != "" {
			return msg
		}

		switch {
		case yearKnown && count == 0:
			return fmt.Sprintf(config.FallbackSummaryBirth, name)
		case yearKnown:
			return fmt.Sprintf(config.FallbackSummaryAge, name, count)
		default:
			return fmt.Sprintf(config.FallbackSummary, name)
		}
	}
}

func (p *Presenter) localize(lc *i18n.LocalizeConfig) (string, error) {
	if p.localizer == nil {
		return "", errors.New(config.ErrLocNotInit)
	}
	msg, err := p.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return "", err
	}
	return msg, nil
}
