package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-toolbox/internal/config"
)

// SyncConfig contains all parameters required to build the anniversary feed.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Path to the .vcf file
	WebURL          string // CardDAV or WebDAV URL
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")
}

// Feed is the result of one synchronization.
type Feed struct {
	ICS     []byte
	Entries []AnniversaryEntry
	Today   int // entries whose next occurrence is today
}

// Generator reads dated vCard properties and turns them into an iCalendar
// feed of yearly anniversaries plus a list of entries with elapsed time.
type Generator struct {
	Clock   Clock         // Interface for time mocking.
	Fetcher SourceFetcher // Interface for network abstraction.

	// FormatSummary allows the caller to inject localized strings.
	FormatSummary func(name string, count int, yearKnown bool) string
}

// RunSync executes the fetching, parsing, and generation pipeline.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) (Feed, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return Feed{}, ctx.Err()
		}
		return Feed{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return Feed{}, err
	}

	feed, err := g.generate(ctx, reader, cfg.ReminderTrigger)
	if err == nil {
		log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return feed, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

type syncStats struct{ processed, dated, today int }

// generate decodes the vCard stream and builds both the feed and the entries.
func (g *Generator) generate(ctx context.Context, r io.Reader, reminderTrigger string) (Feed, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Local calendar dates drive the logic; UTC is only used for stamping.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	decoder := vcard.NewDecoder(r)
	var stats syncStats
	var entries []AnniversaryEntry

	for {
		if ctx.Err() != nil {
			return Feed{}, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && overLimit(r) {
			return Feed{}, fmt.Errorf("%s: %w", config.ErrVCardParse, ErrFetchTooLarge)
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}
		stats.processed++

		name := cardName(card)
		for _, kind := range []EntryKind{KindBirthday, KindAnniversary} {
			entry, ok := g.entryFor(card, kind, name, now)
			if !ok {
				continue
			}
			stats.dated++
			entries = append(entries, entry)

			if entry.IsToday(now) && !(entry.YearKnown && entry.Date.After(now)) {
				stats.today++
				slog.Info(config.MsgAnnivToday,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, name,
					config.LogKeyDOB, entry.Date.Format(config.DateFormatFullDash))
			}

			for _, e := range g.createEvents(entry, reminderTrigger, now) {
				e.Props.Set(dtStampProp)
				cal.Children = append(cal.Children, e.Component)
			}
		}
	}

	g.logSuccess(stats)

	// An empty VCALENDAR would be rejected by the encoder; serve the stub.
	if len(cal.Children) == 0 {
		return Feed{ICS: []byte(config.StubVCalendar), Entries: entries, Today: stats.today}, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return Feed{}, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return Feed{ICS: buf.Bytes(), Entries: entries, Today: stats.today}, nil
}

// cardName prefers FN (formatted) over N (structured).
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		return n.Value
	}
	return config.FallbackName
}

// entryFor extracts one dated property of card.
func (g *Generator) entryFor(card vcard.Card, kind EntryKind, name string, now time.Time) (AnniversaryEntry, bool) {
	prop := config.VCardBDAY
	if kind == KindAnniversary {
		prop = config.VCardAnniversary
	}
	field := card.Get(prop)
	if field == nil || field.Value == "" {
		return AnniversaryEntry{}, false
	}

	date, yearKnown, err := parseContactDate(field.Value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, field.Value)
		return AnniversaryEntry{}, false
	}

	input := fmt.Sprintf(config.FormatHashInput, name, date.Format(time.RFC3339), config.UIDSalt+string(kind))
	hash := sha256.Sum256([]byte(input))

	entry := AnniversaryEntry{
		UID:            fmt.Sprintf("%x", hash[:config.UIDHashLength]),
		Name:           name,
		Kind:           kind,
		Date:           date,
		YearKnown:      yearKnown,
		NextOccurrence: upcomingOccurrence(now, date),
	}
	if yearKnown {
		entry.AgeNext = entry.NextOccurrence.Year() - date.Year()

		// Contact dates are calendar dates: read them in now's frame.
		local := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
		if d, err := Compute(local, now); err == nil {
			entry.Elapsed = d
			entry.HasElapsed = true
		}
	}
	return entry, true
}

// upcomingOccurrence returns the occurrence of date's month/day that is
// today or later. Unlike NextAnniversary, today itself counts, so the
// contacts view can flag it.
func upcomingOccurrence(now, date time.Time) time.Time {
	loc := now.Location()
	candidate := anniversaryIn(date, now.Year(), loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = anniversaryIn(date, now.Year()+1, loc)
	}
	return candidate
}

// logSuccess logs the final statistics of the generation process.
func (g *Generator) logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.dated),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// createEvents generates events for the previous, current and next year,
// never before the original date when its year is known.
func (g *Generator) createEvents(entry AnniversaryEntry, reminderTrigger string, now time.Time) []*ical.Event {
	currentYear := now.Year()
	loc := now.Location()

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if entry.YearKnown && y < entry.Date.Year() {
			continue
		}

		count := 0
		if entry.YearKnown {
			count = y - entry.Date.Year()
		}

		summary := fmt.Sprintf(config.FallbackSummary, entry.Name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(entry.Name, count, entry.YearKnown)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, entry.UID, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(anniversaryIn(entry.Date, y, loc))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the value directly to avoid a "VALUE=TEXT" parameter.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
