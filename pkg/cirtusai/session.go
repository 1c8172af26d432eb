package cirtusai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"
)

// Version is the SDK release version, sent in the User-Agent header.
const Version = "1.0.0"

const defaultTimeout = 10 * time.Second

// Config tunes the transport session. The zero value is usable; New applies
// the documented defaults.
type Config struct {
	// Timeout bounds each round trip. Default: 10s. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// DefaultHeaders are sent on every request, in addition to the
	// session-managed Content-Type, User-Agent and Authorization headers.
	DefaultHeaders map[string]string

	// HTTPClient replaces the default client entirely.
	HTTPClient *http.Client

	// Limiter paces outgoing requests client-side. Nil means unpaced.
	// This is not a retry mechanism; the SDK never retries.
	Limiter *rate.Limiter

	// Logger receives a debug line per round trip. Nil disables logging.
	Logger *slog.Logger
}

// Session holds the base URL, the shared header set (notably the bearer
// token) and the request-issuing capability. One Session is owned by one
// client facade; the auth layer and the resource sub-clients borrow a
// reference to it, so a header mutation is immediately visible to all of
// them.
//
// The header map is deliberately unsynchronized: a session must be driven by
// one logical flow at a time, or callers must serialize login/refresh/
// SetToken externally. Header mutation only happens after a call completes
// successfully, so abandoning an in-flight request never corrupts the
// session.
type Session struct {
	baseURL string
	httpc   *http.Client
	headers map[string]string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// newSession builds a Session from a config, normalizing the base URL.
func newSession(baseURL string, cfg Config) *Session {
	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   "cirtusai-sdk-go/" + Version,
	}
	for k, v := range cfg.DefaultHeaders {
		headers[k] = v
	}

	return &Session{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   httpc,
		headers: headers,
		limiter: cfg.Limiter,
		logger:  cfg.Logger,
	}
}

// BaseURL returns the normalized base URL.
func (s *Session) BaseURL() string { return s.baseURL }

// SetHeader mutates the shared header set, visible to every holder of the
// session. An empty value removes the header.
func (s *Session) SetHeader(name, value string) {
	if value == "" {
		delete(s.headers, name)
		return
	}
	s.headers[name] = value
}

// Header returns the current value of a default header, or "".
func (s *Session) Header(name string) string { return s.headers[name] }

// bearerToken extracts the token from the Authorization header. The header
// is the canonical source of truth for authentication state; nothing is
// stored redundantly.
func (s *Session) bearerToken() string {
	auth := s.headers["Authorization"]
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return ""
}

// requireAuth fails with an AuthorizationError, before any network request,
// when the session holds no bearer token.
func (s *Session) requireAuth(op string) error {
	if s.bearerToken() == "" {
		return &AuthorizationError{Op: op}
	}
	return nil
}

// Request issues one round trip. body (when non-nil) is JSON-encoded; the
// response body is JSON-decoded into out (when non-nil). Network failures
// surface as *TransportError, 4xx/5xx as *StatusError. No retries happen at
// this layer.
func (s *Session) Request(ctx context.Context, method, path string, body, out any) error {
	raw, err := s.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	return nil
}

// RequestRaw issues one round trip and returns the raw response bytes.
// Used for non-JSON payloads such as the QR code image.
func (s *Session) RequestRaw(ctx context.Context, method, path string) ([]byte, error) {
	return s.roundTrip(ctx, method, path, nil)
}

func (s *Session) roundTrip(ctx context.Context, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: op, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}
	requestID := ulid.Make().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "cirtusai request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start),
			"request_id", requestID,
		)
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Status: resp.StatusCode, Body: raw}
	}
	return raw, nil
}

// Close releases idle transport connections. Safe to call after failed
// requests.
func (s *Session) Close() {
	s.httpc.CloseIdleConnections()
}
