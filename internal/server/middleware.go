package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/go-toolbox/internal/config"
)

type requestIDKey struct{}

// Recovery turns a panicking handler into a 500 and logs the stack.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.ErrorContext(r.Context(), config.MsgPanic,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyError, rec,
					config.LogKeyRequestID, GetRequestID(r.Context()),
					config.LogKeyStack, string(debug.Stack()),
				)
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error:       config.HTTPCodeInternal,
					Description: config.HTTPMsgInternalErr,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(config.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(config.HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// AccessLog writes one structured line per request.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrap(w)

		next.ServeHTTP(rw, r)

		slog.InfoContext(r.Context(), config.MsgRequest,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyMethod, r.Method,
			config.LogKeyPath, r.URL.Path,
			config.LogKeyStatus, rw.status,
			config.LogKeyDuration, time.Since(start).Milliseconds(),
			config.LogKeyRemote, r.RemoteAddr,
			config.LogKeyRequestID, GetRequestID(r.Context()),
		)
	})
}

// Timeout bounds the time a handler may take to answer.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, config.HTTPMsgTimeout)
	}
}

// statusWriter records the status code written by the handler.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func wrap(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
