package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
)

// ageView is the content of the live age window. A running ticker owns
// the labels; stop must return before the window goes away.
type ageView struct {
	presenter *present.Presenter
	clock     engine.Clock
	interval  time.Duration

	entry    *widget.Entry
	calendar *widget.Label
	totals   *widget.Label
	next     *widget.Label
	nextIn   *widget.Label
	warning  *widget.Label

	cancel context.CancelFunc
	done   chan struct{}
}

func newAgeView(p *present.Presenter, clock engine.Clock, interval time.Duration) *ageView {
	v := &ageView{
		presenter: p,
		clock:     clock,
		interval:  interval,
		entry:     widget.NewEntry(),
		calendar:  widget.NewLabel(""),
		totals:    widget.NewLabel(""),
		next:      widget.NewLabel(""),
		nextIn:    widget.NewLabel(""),
		warning:   widget.NewLabel(""),
	}
	v.entry.PlaceHolder = p.Msg(config.TKeyHelpStart)
	v.warning.Importance = widget.DangerImportance
	v.warning.Hide()
	return v
}

func (v *ageView) content() fyne.CanvasObject {
	form := widget.NewForm(widget.NewFormItem(v.presenter.Msg(config.TKeyLblStart), v.entry))

	return container.NewVBox(
		form,
		v.warning,
		widget.NewCard(v.presenter.Msg(config.TKeyLblCalendar), "", v.calendar),
		widget.NewCard(v.presenter.Msg(config.TKeyLblTotals), "", v.totals),
		widget.NewCard(v.presenter.Msg(config.TKeyLblNextEvent), "", container.NewVBox(v.next, v.nextIn)),
	)
}

// start parses text and restarts the ticker from it. Unreadable input
// stops the ticker and shows a warning.
func (v *ageView) start(parent context.Context, text string) {
	v.stop()

	text = strings.TrimSpace(text)
	if text == "" {
		v.clear()
		return
	}

	start, err := engine.ParseInstant(text, v.clock.Now().Location())
	if err != nil {
		v.render(engine.Difference{}, err)
		return
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	v.cancel, v.done = cancel, done

	ticker := engine.NewTicker(v.clock, start, v.interval, func(d engine.Difference, _ time.Time, err error) {
		fyne.Do(func() { v.render(d, err) })
	})
	go func() {
		defer close(done)
		ticker.Run(ctx)
	}()
}

// stop cancels the ticker, if any, and waits for it to exit.
func (v *ageView) stop() {
	if v.cancel == nil {
		return
	}
	v.cancel()
	<-v.done
	v.cancel, v.done = nil, nil
}

func (v *ageView) render(d engine.Difference, err error) {
	if err != nil {
		key := config.TKeyErrInput
		if errors.Is(err, engine.ErrInvalidRange) {
			key = config.TKeyErrRange
		}
		v.clear()
		v.warning.SetText(v.presenter.Msg(key))
		v.warning.Show()
		return
	}

	out := v.presenter.Format(d)
	v.warning.Hide()
	v.calendar.SetText(out.Calendar)
	v.totals.SetText(strings.Join(out.Totals, "\n"))
	v.next.SetText(out.NextAnniversary)
	v.nextIn.SetText(out.NextIn)
}

func (v *ageView) clear() {
	v.warning.Hide()
	for _, l := range []*widget.Label{v.calendar, v.totals, v.next, v.nextIn} {
		l.SetText("")
	}
}

// ShowAgeWindow opens the live age window, or focuses it when open.
func (app *ToolboxApp) ShowAgeWindow() {
	if app.ageWindow != nil {
		app.ageWindow.RequestFocus()
		return
	}

	p := app.Presenter()
	s := app.Settings()
	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, config.TKeyWinAge)

	w := app.App.NewWindow(p.Msg(config.TKeyWinAge))
	w.Resize(fyne.NewSize(config.AgeWinWidth, config.AgeWinHeight))
	app.ageWindow = w

	v := newAgeView(p, app.Clock, s.LiveInterval)
	if s.DefaultStart != "" {
		v.entry.SetText(s.DefaultStart)
		v.start(app.Ctx, s.DefaultStart)
	}
	v.entry.OnSubmitted = func(text string) { v.start(app.Ctx, text) }
	// Restart as soon as the text reads as a date; partial input is ignored.
	v.entry.OnChanged = func(text string) {
		if _, err := engine.ParseInstant(strings.TrimSpace(text), time.Local); err == nil {
			v.start(app.Ctx, text)
		}
	}

	w.SetContent(container.NewPadded(v.content()))
	w.SetOnClosed(func() {
		v.stop()
		app.ageWindow = nil
	})
	w.Show()
}
