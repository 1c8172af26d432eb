package cirtusai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TransportError indicates a network-level failure: the request never
// produced an HTTP response. These are always retryable by the caller.
type TransportError struct {
	// Op describes the attempted round trip, e.g. "POST /auth/login".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is returned when the platform rejected the request with a
// 4xx/5xx status. The raw response body is preserved so callers can decide
// retry vs. re-authenticate vs. abort.
type StatusError struct {
	Status int
	Body   []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	detail := errorDetail(e.Body)
	if detail == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("cirtusai: HTTP %d: %s", e.Status, detail)
}

// Unauthorized reports whether the failure requires re-authentication.
func (e *StatusError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// AuthorizationError is returned when an authenticated-only operation is
// attempted while the session holds no bearer token. No network request is
// issued in that case.
type AuthorizationError struct {
	// Op names the operation that was refused, e.g. "list email accounts".
	Op string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("cirtusai: %s requires authentication: no bearer token on session", e.Op)
}

// TwoFactorError is returned when a second-factor code fails validation or
// the temporary token has expired. The platform intentionally includes the
// set of currently valid codes (keyed by time step) as a debugging aid, and
// the SDK surfaces it verbatim.
type TwoFactorError struct {
	Message    string
	ServerTime string
	// ValidCodes maps a time-step label (e.g. "previous", "current",
	// "next") to the code the server would accept for that step.
	ValidCodes map[string]string
}

// Error implements the error interface.
func (e *TwoFactorError) Error() string {
	if len(e.ValidCodes) == 0 {
		return fmt.Sprintf("cirtusai: two-factor verification failed: %s", e.Message)
	}
	pairs := make([]string, 0, len(e.ValidCodes))
	for step, code := range e.ValidCodes {
		pairs = append(pairs, step+"="+code)
	}
	return fmt.Sprintf("cirtusai: two-factor verification failed: %s (valid codes right now: %s)",
		e.Message, strings.Join(pairs, " "))
}

// TokenExpiredError is returned when the refresh token itself is stale.
// Recovery requires a full login replay.
type TokenExpiredError struct {
	Message string
}

// Error implements the error interface.
func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("cirtusai: refresh token expired: %s", e.Message)
}

// RegistrationError is returned when the platform rejects a registration,
// typically for a duplicate identifier or invalid input. The server's
// message is surfaced unchanged.
type RegistrationError struct {
	Message string
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cirtusai: registration failed: %s", e.Message)
}

// NotFoundError is returned when a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	Message  string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cirtusai: %s not found: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("cirtusai: %s not found", e.Resource)
}

// detailPayload is the platform's error envelope. The detail field is either
// a plain string or an object carrying a message plus optional 2FA debugging
// fields.
type detailPayload struct {
	Detail json.RawMessage `json:"detail"`
}

type detailObject struct {
	Error             string            `json:"error"`
	Message           string            `json:"message"`
	CurrentServerTime string            `json:"current_server_time"`
	ValidCodes        map[string]string `json:"valid_codes"`
}

// errorDetail extracts the human-readable message from an error body.
// Falls back to the raw body when the envelope does not parse.
func errorDetail(body []byte) string {
	msg, _ := parseDetail(body)
	return msg
}

// parseDetail unpacks the platform error envelope, returning the message and
// the structured detail object when one is present.
func parseDetail(body []byte) (string, *detailObject) {
	if len(body) == 0 {
		return "", nil
	}

	var envelope detailPayload
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body)), nil
	}

	var asString string
	if err := json.Unmarshal(envelope.Detail, &asString); err == nil {
		return asString, nil
	}

	var obj detailObject
	if err := json.Unmarshal(envelope.Detail, &obj); err == nil {
		msg := obj.Error
		if msg == "" {
			msg = obj.Message
		}
		return msg, &obj
	}

	return strings.TrimSpace(string(envelope.Detail)), nil
}

// twoFactorError converts a verification failure into a TwoFactorError,
// preserving the valid-code set when the server included one.
func twoFactorError(e *StatusError) *TwoFactorError {
	msg, obj := parseDetail(e.Body)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	tfe := &TwoFactorError{Message: msg}
	if obj != nil {
		tfe.ServerTime = obj.CurrentServerTime
		tfe.ValidCodes = obj.ValidCodes
	}
	return tfe
}
