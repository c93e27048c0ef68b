package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
	"github.com/tartampluch/go-toolbox/internal/tools"
	"golang.org/x/text/language"
)

var (
	errBadNumber   = errors.New(config.ErrNumber)
	errTextTooLong = errors.New(config.ErrTextTooLong)
	errUnknownMode = errors.New(config.ErrUnknownMode)
)

// badInput lists the errors answered with 400.
var badInput = []error{
	engine.ErrDateParse,
	errBadNumber,
	errTextTooLong,
	errUnknownMode,
	tools.ErrUnknownUnit,
	tools.ErrUnitMismatch,
	tools.ErrBase64,
	tools.ErrUnknownCase,
	tools.ErrPasswordLength,
	tools.ErrPasswordClasses,
	tools.ErrBMIInput,
	tools.ErrTimezone,
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

type ageTotals struct {
	Weeks   int64 `json:"weeks"`
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

type ageResponse struct {
	Start                time.Time       `json:"start"`
	AsOf                 time.Time       `json:"as_of"`
	Years                int             `json:"years"`
	Months               int             `json:"months"`
	Days                 int             `json:"days"`
	AbsoluteMillis       int64           `json:"absolute_millis"`
	Totals               ageTotals       `json:"totals"`
	NextAnniversary      string          `json:"next_anniversary"`
	NextAnniversaryDays  int             `json:"next_anniversary_days"`
	NextAnniversaryYears int             `json:"next_anniversary_years"`
	Lang                 string          `json:"lang"`
	Display              present.Display `json:"display"`
}

type resultResponse struct {
	Result string `json:"result"`
}

type textResponse struct {
	Stats     tools.TextStats `json:"stats"`
	Converted string          `json:"converted,omitempty"`
}

type convertResponse struct {
	Value    float64        `json:"value"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Result   float64        `json:"result"`
	Quantity tools.Quantity `json:"quantity"`
}

// handleAge computes the difference between start and asOf (now by default).
func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := engine.ParseInstant(q.Get(config.QueryStart), s.Location)
	if err != nil {
		s.metrics.AgeResults.WithLabelValues(config.ResultBadInput).Inc()
		writeError(w, r, err)
		return
	}

	asOf := s.Clock.Now().In(s.Location)
	if v := q.Get(config.QueryAsOf); v != "" {
		if asOf, err = engine.ParseInstant(v, s.Location); err != nil {
			s.metrics.AgeResults.WithLabelValues(config.ResultBadInput).Inc()
			writeError(w, r, err)
			return
		}
	}

	d, err := engine.Compute(start, asOf)
	if err != nil {
		s.metrics.AgeResults.WithLabelValues(config.ResultInvalidRange).Inc()
		slog.DebugContext(r.Context(), config.MsgRangeRejected,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyStart, start,
			config.LogKeyAsOf, asOf,
		)
		writeError(w, r, err)
		return
	}
	s.metrics.AgeResults.WithLabelValues(config.ResultOK).Inc()

	p := present.New(s.Bundle, requestLanguage(r))
	writeJSON(w, http.StatusOK, ageResponse{
		Start:          start,
		AsOf:           asOf,
		Years:          d.Years,
		Months:         d.Months,
		Days:           d.Days,
		AbsoluteMillis: d.AbsoluteMillis,
		Totals: ageTotals{
			Weeks:   d.TotalWeeks(),
			Days:    d.TotalDays(),
			Hours:   d.TotalHours(),
			Minutes: d.TotalMinutes(),
			Seconds: d.TotalSeconds(),
		},
		NextAnniversary:      d.NextAnniversary.Format(config.DateFormatFullDash),
		NextAnniversaryDays:  d.NextAnniversaryDays,
		NextAnniversaryYears: d.NextAnniversaryYears,
		Lang:                 p.Lang,
		Display:              p.Format(d),
	})
}

func (s *Server) handleBase64(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text, err := queryText(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch mode := q.Get(config.QueryMode); mode {
	case "", config.ModeEncode:
		writeJSON(w, http.StatusOK, resultResponse{Result: tools.EncodeBase64(text)})
	case config.ModeDecode:
		out, err := tools.DecodeBase64(text)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resultResponse{Result: out})
	default:
		writeError(w, r, fmt.Errorf("%w: %q", errUnknownMode, mode))
	}
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	text, err := queryText(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := textResponse{Stats: tools.CountText(text)}
	if mode := r.URL.Query().Get(config.QueryCase); mode != "" {
		if resp.Converted, err = tools.ConvertCase(text, mode); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePassword(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := tools.DefaultPasswordOptions()

	if v := q.Get(config.QueryLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %s=%q", errBadNumber, config.QueryLength, v))
			return
		}
		opts.Length = n
	}
	if v := q.Get(config.QuerySymbols); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %s=%q", errBadNumber, config.QuerySymbols, v))
			return
		}
		opts.Symbols = b
	}

	pw, err := tools.GeneratePassword(opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{Result: pw})
}

func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	weight, err := queryFloat(r, config.QueryWeight)
	if err != nil {
		writeError(w, r, err)
		return
	}
	height, err := queryFloat(r, config.QueryHeight)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := tools.BMI(weight, height)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value, err := queryFloat(r, config.QueryValue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	from, to := q.Get(config.QueryFrom), q.Get(config.QueryTo)

	out, err := tools.Convert(value, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	quantity, _ := tools.QuantityOf(from)
	writeJSON(w, http.StatusOK, convertResponse{
		Value:    value,
		From:     from,
		To:       to,
		Result:   out,
		Quantity: quantity,
	})
}

// handleTimezone reads time as a wall clock in from; a time with an
// explicit offset is first moved into from. Without time, the current
// instant seen from the source zone is used.
func (s *Server) handleTimezone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get(config.QueryFrom), q.Get(config.QueryTo)

	t, err := tools.SourceTime(s.Clock.Now(), from, q.Get(config.QueryTime))
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := tools.ConvertTimezone(t, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// requestLanguage prefers the lang query parameter, then the first tag of
// Accept-Language, then the default language.
func requestLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get(config.QueryLang); lang != "" {
		return lang
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get(config.HeaderAcceptLang))
	if err != nil || len(tags) == 0 {
		return config.DefaultLanguage
	}
	base, _ := tags[0].Base()
	return base.String()
}

func queryText(r *http.Request) (string, error) {
	text := r.URL.Query().Get(config.QueryText)
	if len(text) > config.MaxQueryTextLength {
		return "", fmt.Errorf("%w: %d bytes", errTextTooLong, len(text))
	}
	return text, nil
}

func queryFloat(r *http.Request, key string) (float64, error) {
	v := r.URL.Query().Get(key)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%q", errBadNumber, key, v)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// writeError maps err onto a status code and the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, engine.ErrInvalidRange) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: config.HTTPCodeRange, Description: err.Error()})
		return
	}
	for _, target := range badInput {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: config.HTTPCodeBadRequest, Description: err.Error()})
			return
		}
	}

	slog.ErrorContext(r.Context(), config.HTTPMsgInternalErr,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRequestID, GetRequestID(r.Context()),
		config.LogKeyError, err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: config.HTTPCodeInternal, Description: config.HTTPMsgInternalErr})
}
