package cirtusai

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDetail(t *testing.T) {
	t.Parallel()

	t.Run("string detail", func(t *testing.T) {
		msg, obj := parseDetail([]byte(`{"detail": "Invalid credentials"}`))
		require.Equal(t, "Invalid credentials", msg)
		require.Nil(t, obj)
	})

	t.Run("object detail", func(t *testing.T) {
		msg, obj := parseDetail([]byte(`{"detail": {"error": "Invalid TOTP code", "valid_codes": {"current": "123456"}}}`))
		require.Equal(t, "Invalid TOTP code", msg)
		require.NotNil(t, obj)
		require.Equal(t, "123456", obj.ValidCodes["current"])
	})

	t.Run("non-envelope body", func(t *testing.T) {
		msg, obj := parseDetail([]byte("plain text error"))
		require.Equal(t, "plain text error", msg)
		require.Nil(t, obj)
	})

	t.Run("empty body", func(t *testing.T) {
		msg, obj := parseDetail(nil)
		require.Empty(t, msg)
		require.Nil(t, obj)
	})
}

func TestStatusErrorUnauthorized(t *testing.T) {
	t.Parallel()

	require.True(t, (&StatusError{Status: http.StatusUnauthorized}).Unauthorized())
	require.True(t, (&StatusError{Status: http.StatusForbidden}).Unauthorized())
	require.False(t, (&StatusError{Status: http.StatusNotFound}).Unauthorized())
	require.False(t, (&StatusError{Status: http.StatusInternalServerError}).Unauthorized())
}

func TestTwoFactorErrorMessage(t *testing.T) {
	t.Parallel()

	err := &TwoFactorError{
		Message:    "Invalid TOTP code",
		ValidCodes: map[string]string{"current": "222222"},
	}
	require.Contains(t, err.Error(), "Invalid TOTP code")
	require.Contains(t, err.Error(), "current=222222")

	bare := &TwoFactorError{Message: "Temporary token expired"}
	require.Contains(t, bare.Error(), "Temporary token expired")
	require.NotContains(t, bare.Error(), "valid codes")
}

func TestStatusErrorFallbackMessage(t *testing.T) {
	t.Parallel()

	err := &StatusError{Status: http.StatusBadGateway}
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "Bad Gateway")
}
