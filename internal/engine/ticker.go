package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// TickFunc receives each recomputation. err is non-nil (an *InvalidRangeError)
// when the start instant lies in the future of the clock reading.
type TickFunc func(d Difference, now time.Time, err error)

// Ticker recomputes the difference between a fixed start instant and the
// current clock reading at a fixed interval, keeping an "age right now"
// display live. Every tick is independent; nothing is carried over.
type Ticker struct {
	Clock    Clock
	Start    time.Time
	Interval time.Duration
	OnTick   TickFunc
}

// NewTicker builds a Ticker, falling back to the real clock and the default
// interval when they are not provided.
func NewTicker(clock Clock, start time.Time, interval time.Duration, fn TickFunc) *Ticker {
	if clock == nil {
		clock = RealClock{}
	}
	if interval <= 0 {
		interval = config.DefaultLiveInterval
	}
	return &Ticker{Clock: clock, Start: start, Interval: interval, OnTick: fn}
}

// Run emits one result immediately, then one per interval, until ctx is
// cancelled. The underlying time.Ticker is stopped before Run returns.
func (t *Ticker) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompTicker)

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	log.Debug(config.MsgTickerStart, config.LogKeyInterval, t.Interval)
	t.tick()

	for {
		select {
		case <-ctx.Done():
			log.Debug(config.MsgTickerStop)
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

func (t *Ticker) tick() {
	now := t.Clock.Now()
	d, err := Compute(t.Start, now)
	if t.OnTick != nil {
		t.OnTick(d, now, err)
	}
}
