package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
)

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(saved) })
	return &buf
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "generated id %q", seen)
	assert.Equal(t, seen, w.Header().Get(config.HeaderRequestID))
}

func TestRequestID_Propagated(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc-123", GetRequestID(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(config.HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	logs := captureLogs(t)
	h := Recovery(RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, config.HTTPCodeInternal, body.Error)

	assert.Contains(t, logs.String(), config.MsgPanic)
	assert.Contains(t, logs.String(), "boom")
}

func TestAccessLog(t *testing.T) {
	logs := captureLogs(t)
	h := RequestID(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	req.Header.Set(config.HeaderRequestID, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, config.MsgRequest, line["msg"])
	assert.Equal(t, "/brew", line[config.LogKeyPath])
	assert.Equal(t, float64(http.StatusTeapot), line[config.LogKeyStatus])
	assert.Equal(t, "req-1", line[config.LogKeyRequestID])
}

func TestTimeout(t *testing.T) {
	h := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusOK)
		}
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), config.HTTPMsgTimeout)
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	rw := wrap(httptest.NewRecorder())
	_, _ = rw.Write([]byte("x"))
	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusOK, rw.status)

	assert.Same(t, rw, wrap(rw))
}
