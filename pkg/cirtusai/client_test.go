package cirtusai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizesBaseURL(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example/")
	defer client.Close()
	require.Equal(t, "https://api.cirtusai.example", client.Session().BaseURL())
}

func TestSetTokenRoundTrip(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example")
	defer client.Close()

	require.Empty(t, client.Token())

	client.SetToken("tok-123")
	require.Equal(t, "tok-123", client.Token())
	require.Equal(t, "Bearer tok-123", client.Session().Header("Authorization"))
}

func TestTokenMalformedHeader(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example")
	defer client.Close()

	client.Session().SetHeader("Authorization", "Basic dXNlcjpwdw==")
	require.Empty(t, client.Token())
}

func TestWithTokenOption(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example", WithToken("restored"))
	defer client.Close()
	require.Equal(t, "restored", client.Token())
}

func TestSubClientsShareSession(t *testing.T) {
	t.Parallel()

	client := New("https://api.cirtusai.example")
	defer client.Close()

	// Auth's header mutation must be visible to every sub-client: they
	// borrow the facade's session, never copy it.
	require.Same(t, client.Session(), client.Auth.session)
	require.Same(t, client.Session(), client.Agents.session)
	require.Same(t, client.Session(), client.Wallets.session)
	require.Same(t, client.Session(), client.Identity.session)
}
