package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// Fetch failures matched with errors.Is. A non-200 answer is a
// *FetchStatusError, which also matches ErrFetchStatus.
var (
	ErrFetchStatus   = errors.New(config.ErrFetchStatus)
	ErrFetchTooLarge = errors.New(config.ErrFetchTooLarge)
)

// FetchStatusError carries the status of a rejected download.
type FetchStatusError struct {
	StatusCode int
	Status     string
}

func (e *FetchStatusError) Error() string {
	return fmt.Sprintf("%s: %s", config.ErrFetchStatus, e.Status)
}

// Is enables errors.Is(err, ErrFetchStatus).
func (e *FetchStatusError) Is(target error) bool {
	return target == ErrFetchStatus
}

// SourceFetcher retrieves a remote vCard stream.
type SourceFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher implements SourceFetcher over net/http.
type HTTPFetcher struct {
	Client *http.Client
	// MaxBytes caps the body; reading past it fails with ErrFetchTooLarge.
	MaxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher with the configured timeout and
// size limit.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: config.HTTPTimeout},
		MaxBytes: config.MaxHTTPResponseSize,
	}
}

// Fetch downloads targetURL. Credentials embedded in the URL are used when
// user and pass are both empty.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}
	if user == "" && pass == "" && u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, redactURL(u)),
	)
	log.DebugContext(ctx, config.MsgFetchStart)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return nil, &FetchStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	log.Info(config.MsgFetchBody, slog.Int64(config.LogKeySizeBytes, resp.ContentLength))

	limit := f.MaxBytes
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	return &cappedBody{r: io.LimitReader(resp.Body, limit+1), left: limit, Closer: resp.Body}, nil
}

// redactURL keeps scheme, host and path. Query strings and user info may
// carry secrets.
func redactURL(u *url.URL) string {
	return u.Scheme + "://" + u.Host + u.Path
}

// cappedBody reads at most left bytes and fails instead of truncating.
type cappedBody struct {
	r    io.Reader
	left int64
	io.Closer
}

func (b *cappedBody) Read(p []byte) (int, error) {
	if b.left < 0 {
		return 0, ErrFetchTooLarge
	}
	n, err := b.r.Read(p)
	if int64(n) > b.left {
		n, b.left = int(b.left), -1
		return n, ErrFetchTooLarge
	}
	b.left -= int64(n)
	return n, err
}

// overLimit reports whether r is a download that went past its cap.
func overLimit(r io.Reader) bool {
	b, ok := r.(*cappedBody)
	return ok && b.left < 0
}
