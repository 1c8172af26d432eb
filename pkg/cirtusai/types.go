package cirtusai

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ============================================================================
// Token Types
// ============================================================================

// Token is an issued access/refresh token pair. RefreshToken may be empty
// when the platform issues access-only tokens (e.g. after 2FA verification
// with a backup code).
type Token struct {
	// AccessToken is the bearer credential sent on authenticated requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque credential used to rotate the access token.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is "bearer" per the platform contract.
	TokenType string `json:"token_type,omitempty"`
}

// ExpiresAt returns the access token's expiry read from its JWT claims
// without verifying the signature. The zero time is returned when the token
// is opaque or carries no exp claim.
func (t *Token) ExpiresAt() time.Time {
	return tokenExpiry(t.AccessToken)
}

// tokenExpiry parses the exp claim of a JWT without signature verification.
// The SDK never validates tokens itself; expiry is informational only.
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// ============================================================================
// Login / Second-Factor Types
// ============================================================================

// temporaryTokenTTL is the platform default lifetime of a second-factor
// challenge, used when the temporary token carries no exp claim.
const temporaryTokenTTL = 5 * time.Minute

// TwoFactorChallenge is the pending half of a login against a 2FA-enabled
// account. The temporary token is only valid to complete the challenge; it
// is never usable as a bearer token.
type TwoFactorChallenge struct {
	TemporaryToken  string    `json:"temporary_token"`
	PreferredMethod string    `json:"preferred_2fa_method"`
	ExpiresAt       time.Time `json:"-"`
}

// LoginResult is the outcome of a login call: exactly one of Token or
// Challenge is set.
type LoginResult struct {
	Token     *Token
	Challenge *TwoFactorChallenge
}

// Requires2FA reports whether the login is pending a second factor.
func (r *LoginResult) Requires2FA() bool { return r.Challenge != nil }

// loginResponse is the wire shape of POST /auth/login, covering both the
// authenticated and the pending form.
type loginResponse struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	TokenType       string `json:"token_type"`
	Requires2FA     bool   `json:"requires_2fa"`
	TemporaryToken  string `json:"temporary_token"`
	PreferredMethod string `json:"preferred_2fa_method"`
}

// ============================================================================
// Two-Factor Management Types
// ============================================================================

// TwoFactorSetup is produced once, at registration or explicit 2FA setup.
// Backup codes are single-use server-side; the SDK treats them as opaque.
type TwoFactorSetup struct {
	Secret      string   `json:"secret"`
	QRCodeURI   string   `json:"qr_code_uri"`
	QRCodeImage string   `json:"qr_code_image"` // base64-encoded PNG
	BackupCodes []string `json:"backup_codes"`
}

// QRCodePNG decodes the base64-carried QR code image.
func (s *TwoFactorSetup) QRCodePNG() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.QRCodeImage)
}

// TwoFactorStatus reports the account's second-factor configuration.
type TwoFactorStatus struct {
	IsEnabled       bool   `json:"is_2fa_enabled"`
	PreferredMethod string `json:"preferred_2fa_method"` // "totp" or "sms"
	IsSMSEnabled    bool   `json:"is_sms_enabled"`
}

// TwoFactorDebug is the platform's clock-skew debugging aid: the codes it
// would accept right now, keyed by time step.
type TwoFactorDebug struct {
	CurrentServerTime string            `json:"current_server_time"`
	ValidCodes        map[string]string `json:"valid_codes"`
}

// ============================================================================
// Agent Types
// ============================================================================

// Agent is the caller's master agent record.
type Agent struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	DID   string     `json:"did,omitempty"`
	State AgentState `json:"state"`
}

// AgentState carries the master agent's linked children.
type AgentState struct {
	LinkedChildren []ChildAgent `json:"linked_children"`
}

// ChildAgent is a delegated agent with an explicit capability set. The SDK
// transports the capability strings faithfully; it enforces no policy.
type ChildAgent struct {
	ID                 string   `json:"id"`
	ChildAgentID       string   `json:"child_agent_id"`
	PermissionsGranted []string `json:"permissions_granted"`
}

// HasPermission reports whether the capability set contains name. Which
// capabilities gate which operations is a platform decision; callers check
// before invoking privileged operations.
func (a ChildAgent) HasPermission(name string) bool {
	for _, p := range a.PermissionsGranted {
		if p == name {
			return true
		}
	}
	return false
}

// ============================================================================
// Wallet Types
// ============================================================================

// Assets is the contents of the caller's wallet.
type Assets struct {
	Wallets []Wallet     `json:"wallets"`
	Emails  []EmailAsset `json:"emails"`
}

// Wallet is a single chain wallet asset.
type Wallet struct {
	ID      string `json:"id"`
	Chain   string `json:"chain"`
	Address string `json:"address,omitempty"`
}

// EmailAsset is a wallet-held email address.
type EmailAsset struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// EmailAccount is a provisioned email account linked to the wallet.
type EmailAccount struct {
	ID           string         `json:"id"`
	Provider     string         `json:"provider"`
	EmailAddress string         `json:"email_address"`
	Config       map[string]any `json:"config,omitempty"`
}

// createEmailAccountRequest is the wire shape of POST /wallets/email_accounts.
type createEmailAccountRequest struct {
	Provider     string         `json:"provider"`
	EmailAddress string         `json:"email_address"`
	Config       map[string]any `json:"config"`
}

// RefreshEmailTokenResponse reports the outcome of an email OAuth token
// refresh.
type RefreshEmailTokenResponse struct {
	AccountID string `json:"account_id,omitempty"`
	Status    string `json:"status,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// ============================================================================
// Identity Types
// ============================================================================

// Credential is a verifiable credential held by the caller's identity.
type Credential struct {
	ID      string         `json:"id"`
	Type    string         `json:"type,omitempty"`
	Subject string         `json:"subject,omitempty"`
	Claims  map[string]any `json:"claims,omitempty"`
	JWS     string         `json:"jws,omitempty"`
}

// IssuedCredential is the response to a credential issuance request: the
// signed credential in JWS compact form plus a server message.
type IssuedCredential struct {
	Credential struct {
		JWS string `json:"jws"`
	} `json:"credential"`
	Message string `json:"message,omitempty"`
}

// DIDDocument is the caller's decentralized identifier document.
type DIDDocument struct {
	DID      string         `json:"did"`
	Document map[string]any `json:"document,omitempty"`
}
