package cirtusai

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is the synchronous facade: one shared transport session plus the
// auth state machine and the three resource sub-clients. Every operation
// blocks the calling goroutine for the duration of the round trip.
//
// A single Client must be driven by one logical flow at a time; callers
// needing parallelism use independent Client instances, or serialize
// login/Refresh/SetToken externally.
type Client struct {
	session *Session

	Auth     *AuthService
	Agents   *AgentsService
	Wallets  *WalletsService
	Identity *IdentityService
}

// Option configures a Client at construction.
type Option func(*Config)

// WithToken installs an existing bearer token, e.g. one restored from
// storage across process restarts.
func WithToken(token string) Option {
	return func(cfg *Config) {
		if cfg.DefaultHeaders == nil {
			cfg.DefaultHeaders = map[string]string{}
		}
		cfg.DefaultHeaders["Authorization"] = "Bearer " + token
	}
}

// WithTimeout overrides the default 10s per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *Config) { cfg.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(cfg *Config) { cfg.HTTPClient = httpc }
}

// WithHeader adds a default header sent on every request.
func WithHeader(name, value string) Option {
	return func(cfg *Config) {
		if cfg.DefaultHeaders == nil {
			cfg.DefaultHeaders = map[string]string{}
		}
		cfg.DefaultHeaders[name] = value
	}
}

// WithLogger enables per-request debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}

// WithLimiter paces outgoing requests client-side.
func WithLimiter(l *rate.Limiter) Option {
	return func(cfg *Config) { cfg.Limiter = l }
}

// New creates a Client for the platform at baseURL.
func New(baseURL string, opts ...Option) *Client {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return newClient(newSession(baseURL, cfg))
}

func newClient(session *Session) *Client {
	return &Client{
		session:  session,
		Auth:     &AuthService{session: session},
		Agents:   &AgentsService{session: session},
		Wallets:  &WalletsService{session: session},
		Identity: &IdentityService{session: session},
	}
}

// SetToken installs a bearer token on the session, marking it
// authenticated. This is the manual counterpart of the header mutation the
// auth flows perform automatically.
func (c *Client) SetToken(token string) {
	c.session.SetHeader("Authorization", "Bearer "+token)
}

// Token returns the current bearer token, re-derived from the session's
// Authorization header. It returns "" when the header is absent or not of
// the Bearer form. SetToken followed by Token round-trips losslessly.
func (c *Client) Token() string {
	return c.session.bearerToken()
}

// Session exposes the shared transport session.
func (c *Client) Session() *Session { return c.session }

// Close releases the underlying transport resources. Safe to call even if
// prior operations failed.
func (c *Client) Close() {
	c.session.Close()
}
