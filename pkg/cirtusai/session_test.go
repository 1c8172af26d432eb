package cirtusai

import (
	"context"
	"net/http"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaultHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))

	err := client.Session().Request(context.Background(), http.MethodGet, "/auth/2fa/status", nil, nil)
	require.NoError(t, err)

	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.Equal(t, "cirtusai-sdk-go/"+Version, got.Get("User-Agent"))

	id, err := ulid.Parse(got.Get("X-Request-ID"))
	require.NoError(t, err)
	require.NotZero(t, id.Time())
}

func TestSessionStatusError(t *testing.T) {
	t.Parallel()

	t.Run("unauthorized", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, map[string]any{"detail": "Not authenticated"})
		}))

		err := client.Session().Request(context.Background(), http.MethodGet, "/wallets", nil, nil)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		require.True(t, se.Unauthorized())
		require.Contains(t, se.Error(), "Not authenticated")
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		err := client.Session().Request(context.Background(), http.MethodGet, "/wallets", nil, nil)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusInternalServerError, se.Status)
		require.False(t, se.Unauthorized())
	})
}

func TestSessionTransportError(t *testing.T) {
	t.Parallel()

	// Nothing listens here; the dial fails before any HTTP response.
	client := New("http://127.0.0.1:1")
	defer client.Close()

	err := client.Session().Request(context.Background(), http.MethodGet, "/wallets", nil, nil)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "GET /wallets", te.Op)
	require.Error(t, te.Unwrap())
}

func TestSessionCancellationLeavesHeadersIntact(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	client.SetToken("before-cancel")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Session().Request(ctx, http.MethodPost, "/auth/login", map[string]string{"email": "x"}, nil)
	var te *TransportError
	require.ErrorAs(t, err, &te)

	// Header mutation only happens on successful completion.
	require.Equal(t, "before-cancel", client.Token())
}

func TestSetHeaderRemoveOnEmpty(t *testing.T) {
	t.Parallel()

	s := newSession("https://api.cirtusai.example", Config{})
	s.SetHeader("X-Tenant", "acme")
	require.Equal(t, "acme", s.Header("X-Tenant"))

	s.SetHeader("X-Tenant", "")
	require.Empty(t, s.Header("X-Tenant"))
}
