// Package server exposes the toolbox over HTTP on localhost: the JSON API,
// the anniversary calendar feed, a health check and Prometheus metrics.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123, as required by HTTP headers
}

// Server serves the API and the last synchronized calendar feed.
type Server struct {
	// cache is read on every feed request and written once per sync.
	cache atomic.Pointer[cacheItem]

	Port     string
	Clock    engine.Clock
	Bundle   *i18n.Bundle
	Location *time.Location // zone used to read API instants

	metrics *Metrics
}

// New creates a server. A nil clock means the real clock; a nil bundle
// serves untranslated keys.
func New(port string, bundle *i18n.Bundle, clock engine.Clock) *Server {
	if clock == nil {
		clock = engine.RealClock{}
	}
	return &Server{
		Port:     port,
		Clock:    clock,
		Bundle:   bundle,
		Location: time.Local,
		metrics:  NewMetrics(),
	}
}

// Metrics returns the collectors this server records into.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler builds the router with its middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(AccessLog)
	r.Use(s.metrics.Middleware)

	r.Get(config.RouteHealth, handleHealth)
	r.Method(http.MethodGet, config.RouteMetrics, s.metrics.Handler())
	r.HandleFunc(config.RouteCalendar, s.handleCalendarRequest)

	r.Route(config.RouteAPI, func(r chi.Router) {
		r.Use(Timeout(config.RequestTimeout))
		r.Get(config.RouteAge, s.handleAge)

		r.Route(config.RouteTools, func(r chi.Router) {
			r.Get(config.RouteBase64, s.handleBase64)
			r.Get(config.RouteText, s.handleText)
			r.Get(config.RoutePassword, s.handlePassword)
			r.Get(config.RouteBMI, s.handleBMI)
			r.Get(config.RouteConvert, s.handleConvert)
			r.Get(config.RouteTimezone, s.handleTimezone)
		})
	})
	return r
}

// Start listens on localhost and blocks until ctx is cancelled, then shuts
// the listener down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served calendar.
func (s *Server) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: s.Clock.Now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(config.HeaderContentType, config.MimeTextPlain)
	_, _ = io.WriteString(w, config.HealthBody)
}

// handleCalendarRequest serves the ICS content with conditional GET support.
func (s *Server) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeTextCalendar)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, item.etag)
	h.Set(config.HeaderLastModified, item.lastModified)

	if notModified(r, item) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// notModified applies If-None-Match first, then If-Modified-Since.
func notModified(r *http.Request, item *cacheItem) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == item.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, item.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
