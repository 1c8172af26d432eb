package cirtusai

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// AuthService owns login, the second-factor challenge/response, token
// refresh, and the 2FA status/management endpoints. It is the only
// component that mutates the session's Authorization header: every
// successful transition into the authenticated state installs the new
// bearer token, so callers never set the header manually for the flow to
// keep working.
type AuthService struct {
	session *Session
}

// Register creates a new account. The platform sets up the second factor
// during registration and returns the enrollment material; registration
// does not authenticate and leaves the session untouched.
func (a *AuthService) Register(ctx context.Context, username, email, password, preferredMethod string) (*TwoFactorSetup, error) {
	payload := map[string]string{
		"username":             username,
		"email":                email,
		"password":             password,
		"preferred_2fa_method": preferredMethod,
	}

	var setup TwoFactorSetup
	err := a.session.Request(ctx, http.MethodPost, "/auth/register", payload, &setup)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Status == http.StatusBadRequest || se.Status == http.StatusConflict) {
			return nil, &RegistrationError{Message: errorDetail(se.Body)}
		}
		return nil, err
	}
	return &setup, nil
}

// Login authenticates with an identifier (username or email) and password.
// For accounts without 2FA the result carries a token and the session's
// Authorization header is installed. For 2FA-enabled accounts the result
// carries a short-lived challenge instead and the session header is left
// unchanged: the temporary token is not a usable access token.
func (a *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	payload := map[string]string{
		"email":    identifier,
		"password": password,
	}

	var resp loginResponse
	if err := a.session.Request(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}

	if resp.Requires2FA {
		expiresAt := tokenExpiry(resp.TemporaryToken)
		if expiresAt.IsZero() {
			expiresAt = time.Now().Add(temporaryTokenTTL)
		}
		return &LoginResult{Challenge: &TwoFactorChallenge{
			TemporaryToken:  resp.TemporaryToken,
			PreferredMethod: resp.PreferredMethod,
			ExpiresAt:       expiresAt,
		}}, nil
	}

	token := &Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
	}
	a.installToken(token)
	return &LoginResult{Token: token}, nil
}

// VerifySecondFactor completes a pending challenge. code is a TOTP value or
// a single-use backup code; the platform accepts either interchangeably.
// On success the session header is installed. A bad or expired code fails
// with a *TwoFactorError carrying the platform's valid-code set.
func (a *AuthService) VerifySecondFactor(ctx context.Context, temporaryToken, code string) (*Token, error) {
	payload := map[string]string{
		"temporary_token": temporaryToken,
		"code":            code,
	}

	var token Token
	err := a.session.Request(ctx, http.MethodPost, "/auth/verify-2fa", payload, &token)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Status == http.StatusBadRequest || se.Status == http.StatusUnauthorized) {
			return nil, twoFactorError(se)
		}
		return nil, err
	}

	a.installToken(&token)
	return &token, nil
}

// LoginWithSecondFactor is the one-step convenience flow: login, then, when
// the account is 2FA-enabled, verify with code. It is equivalent to chaining
// Login and VerifySecondFactor manually and produces the same token and the
// same session header.
func (a *AuthService) LoginWithSecondFactor(ctx context.Context, identifier, password, code string) (*Token, error) {
	result, err := a.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if !result.Requires2FA() {
		return result.Token, nil
	}
	return a.VerifySecondFactor(ctx, result.Challenge.TemporaryToken, code)
}

// Refresh rotates the access token using a refresh token. On success the
// session header is installed with the new access token. A stale refresh
// token fails with a *TokenExpiredError, requiring a full login replay.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	payload := map[string]string{"refresh_token": refreshToken}

	var token Token
	err := a.session.Request(ctx, http.MethodPost, "/auth/refresh", payload, &token)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Unauthorized() {
			return nil, &TokenExpiredError{Message: errorDetail(se.Body)}
		}
		return nil, err
	}

	a.installToken(&token)
	return &token, nil
}

// TwoFactorStatus reports the account's second-factor configuration.
// Requires an authenticated session.
func (a *AuthService) TwoFactorStatus(ctx context.Context) (*TwoFactorStatus, error) {
	if err := a.session.requireAuth("get 2FA status"); err != nil {
		return nil, err
	}
	var status TwoFactorStatus
	if err := a.session.Request(ctx, http.MethodGet, "/auth/2fa/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// QRCode fetches the current TOTP enrollment QR code as PNG bytes.
// Requires an authenticated session.
func (a *AuthService) QRCode(ctx context.Context) ([]byte, error) {
	if err := a.session.requireAuth("get QR code"); err != nil {
		return nil, err
	}
	return a.session.RequestRaw(ctx, http.MethodGet, "/auth/2fa/qr-code")
}

// DebugTwoFactor returns the codes the platform would accept right now,
// keyed by time step. TOTP validation tolerates adjacent steps for clock
// skew, which is why more than one code is valid at a time.
// Requires an authenticated session.
func (a *AuthService) DebugTwoFactor(ctx context.Context) (*TwoFactorDebug, error) {
	if err := a.session.requireAuth("debug 2FA"); err != nil {
		return nil, err
	}
	var debug TwoFactorDebug
	if err := a.session.Request(ctx, http.MethodGet, "/auth/2fa/debug", nil, &debug); err != nil {
		return nil, err
	}
	return &debug, nil
}

// DisableTwoFactor turns off the second factor. Both a current code and the
// account password are required. Requires an authenticated session.
func (a *AuthService) DisableTwoFactor(ctx context.Context, code, password string) error {
	if err := a.session.requireAuth("disable 2FA"); err != nil {
		return err
	}
	payload := map[string]string{
		"code":     code,
		"password": password,
	}
	return a.session.Request(ctx, http.MethodPost, "/auth/2fa/disable", payload, nil)
}

// installToken is the one mandated side effect of every successful
// transition into the authenticated state.
func (a *AuthService) installToken(token *Token) {
	a.session.SetHeader("Authorization", "Bearer "+token.AccessToken)
}
