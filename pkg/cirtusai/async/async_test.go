package async

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Cirtus-AI/cirtusai-sdk/pkg/cirtusai"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-abc",
			"refresh_token": "refresh-xyz",
			"token_type":    "bearer",
		})
	})
	mux.HandleFunc("GET /wallets", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"wallets": []map[string]string{{"id": "w-1", "chain": "ethereum"}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAsyncLoginParity(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	ctx := context.Background()

	syncClient := cirtusai.New(srv.URL)
	defer syncClient.Close()
	syncResult, err := syncClient.Auth.Login(ctx, "user@test.com", "pw")
	require.NoError(t, err)

	asyncClient := New(srv.URL)
	defer asyncClient.Close()
	asyncResult, err := asyncClient.Auth.Login(ctx, "user@test.com", "pw").Await(ctx)
	require.NoError(t, err)

	// Same resulting state as the sync facade: same token, same header.
	require.Equal(t, syncResult.Token, asyncResult.Token)
	require.Equal(t, syncClient.Token(), asyncClient.Token())
}

func TestAsyncDoesNotBlockCaller(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(map[string]any{"wallets": []any{}})
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL)
	defer client.Close()
	client.SetToken("tok")

	ctx := context.Background()
	fut := client.Wallets.ListAssets(ctx)

	// The call is outstanding, the caller is free.
	select {
	case <-fut.Done():
		t.Fatal("future resolved before the server responded")
	default:
	}

	close(release)
	assets, err := fut.Await(ctx)
	require.NoError(t, err)
	require.NotNil(t, assets)
}

func TestAwaitHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL)
	defer client.Close()
	client.SetToken("tok")

	fut := client.Wallets.ListAssets(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := fut.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWrapSharesSession(t *testing.T) {
	t.Parallel()

	syncClient := cirtusai.New("https://api.cirtusai.example")
	defer syncClient.Close()
	asyncClient := Wrap(syncClient)

	asyncClient.SetToken("shared-token")
	require.Equal(t, "shared-token", syncClient.Token())

	syncClient.SetToken("rotated")
	require.Equal(t, "rotated", asyncClient.Token())
}

func TestAsyncErrorsPropagateTyped(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example")
	defer client.Close()

	// No token installed: the refusal is local and typed.
	_, err := client.Wallets.ListEmailAccounts(context.Background()).Await(context.Background())
	var authErr *cirtusai.AuthorizationError
	require.ErrorAs(t, err, &authErr)
}
