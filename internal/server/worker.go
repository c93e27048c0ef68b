package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
)

// SyncFunc is notified after every synchronization attempt.
type SyncFunc func(feed engine.Feed, err error, manual bool)

// FeedWorker keeps the served calendar in sync with the vCard source on a
// fixed schedule, with on-demand refreshes in between.
type FeedWorker struct {
	Generator *engine.Generator
	Server    *Server // may be nil when nothing is served
	Config    func() engine.SyncConfig
	Interval  func() time.Duration
	OnSync    SyncFunc

	refresh    chan bool
	reschedule chan struct{}
}

// NewFeedWorker wires a worker. interval is re-read on Reschedule.
func NewFeedWorker(gen *engine.Generator, srv *Server, cfg func() engine.SyncConfig, interval func() time.Duration) *FeedWorker {
	return &FeedWorker{
		Generator:  gen,
		Server:     srv,
		Config:     cfg,
		Interval:   interval,
		refresh:    make(chan bool, config.ChannelBufferSize),
		reschedule: make(chan struct{}, config.ChannelBufferSize),
	}
}

// Refresh asks the running worker for an immediate sync. Requests made
// while one is already pending are dropped.
func (w *FeedWorker) Refresh(manual bool) {
	select {
	case w.refresh <- manual:
	default:
	}
}

// Reschedule makes the running worker re-read its interval.
func (w *FeedWorker) Reschedule() {
	select {
	case w.reschedule <- struct{}{}:
	default:
	}
}

// Run syncs once, then on every tick and refresh request, until ctx is
// cancelled.
func (w *FeedWorker) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	_, _ = w.Sync(ctx, false)

	current := w.interval()
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, current)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-w.reschedule:
			if next := w.interval(); next != current {
				log.Info(config.MsgUpdateSync, config.LogKeyOld, current, config.LogKeyNew, next)
				current = next
				ticker.Reset(current)
			}

		case manual := <-w.refresh:
			_, _ = w.Sync(ctx, manual)

		case <-ticker.C:
			_, _ = w.Sync(ctx, false)
		}
	}
}

// Sync runs one synchronization and publishes the result. Without a
// configured source the feed is an empty calendar.
func (w *FeedWorker) Sync(ctx context.Context, manual bool) (engine.Feed, error) {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyManual, manual)

	cfg := w.Config()

	var (
		feed engine.Feed
		err  error
	)
	if cfg.Mode == config.SourceModeNone {
		slog.Info(config.MsgSyncSkipped, config.LogKeyComponent, config.CompWorker)
		feed = engine.Feed{ICS: []byte(config.StubVCalendar)}
	} else {
		feed, err = w.Generator.RunSync(ctx, cfg)
	}

	// Shutdown is not a failed sync.
	if errors.Is(err, context.Canceled) {
		slog.Debug(config.MsgSyncCancelled, config.LogKeyComponent, config.CompWorker)
		return feed, err
	}

	if err != nil {
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err)
	} else {
		slog.Info(config.MsgSyncDone,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyEntries, len(feed.Entries),
			config.LogKeyToday, feed.Today)
	}

	if w.Server != nil {
		w.Server.metrics.RecordSync(len(feed.Entries), err)
		if err == nil {
			w.Server.Update(feed.ICS)
		}
	}
	if w.OnSync != nil {
		w.OnSync(feed, err, manual)
	}
	return feed, err
}

func (w *FeedWorker) interval() time.Duration {
	if w.Interval != nil {
		if d := w.Interval(); d > 0 {
			return d
		}
	}
	return config.DefaultRefreshMin * time.Minute
}
