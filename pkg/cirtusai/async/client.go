// Package async provides the asynchronous variant of the CirtusAI client.
//
// The operation set and the state transitions are identical to the
// synchronous facade; the only difference is scheduling. Each operation
// dispatches its round trip on a goroutine and returns a *Future, so the
// caller's goroutine is never blocked while the request is outstanding:
//
//	client := async.New("https://api.cirtusai.example")
//	fut := client.Auth.Login(ctx, identifier, password)
//	// ... do other work ...
//	result, err := fut.Await(ctx)
//
// The async client wraps a synchronous Client and shares its session, so
// the single-logical-flow rule carries over: do not issue login/Refresh/
// SetToken concurrently with other operations on the same instance.
package async

import (
	"context"

	"github.com/Cirtus-AI/cirtusai-sdk/pkg/cirtusai"
)

// Client is the asynchronous facade. Its sub-clients mirror the
// synchronous ones operation for operation.
type Client struct {
	sync *cirtusai.Client

	Auth     *AuthService
	Agents   *AgentsService
	Wallets  *WalletsService
	Identity *IdentityService
}

// New creates an async Client for the platform at baseURL. Options are the
// synchronous package's options.
func New(baseURL string, opts ...cirtusai.Option) *Client {
	return Wrap(cirtusai.New(baseURL, opts...))
}

// Wrap builds an async facade over an existing synchronous client. Both
// handles share one session; SetToken on either is visible to both.
func Wrap(c *cirtusai.Client) *Client {
	return &Client{
		sync:     c,
		Auth:     &AuthService{c: c},
		Agents:   &AgentsService{c: c},
		Wallets:  &WalletsService{c: c},
		Identity: &IdentityService{c: c},
	}
}

// SetToken installs a bearer token on the shared session. Header mutation is
// immediate and involves no I/O, so no future is returned.
func (c *Client) SetToken(token string) { c.sync.SetToken(token) }

// Token returns the current bearer token, re-derived from the session
// header.
func (c *Client) Token() string { return c.sync.Token() }

// Close releases the underlying transport resources.
func (c *Client) Close() { c.sync.Close() }

// AuthService mirrors cirtusai.AuthService.
type AuthService struct{ c *cirtusai.Client }

// Register dispatches an account registration.
func (s *AuthService) Register(ctx context.Context, username, email, password, preferredMethod string) *Future[*cirtusai.TwoFactorSetup] {
	return dispatch(func() (*cirtusai.TwoFactorSetup, error) {
		return s.c.Auth.Register(ctx, username, email, password, preferredMethod)
	})
}

// Login dispatches a login.
func (s *AuthService) Login(ctx context.Context, identifier, password string) *Future[*cirtusai.LoginResult] {
	return dispatch(func() (*cirtusai.LoginResult, error) {
		return s.c.Auth.Login(ctx, identifier, password)
	})
}

// VerifySecondFactor dispatches a second-factor verification.
func (s *AuthService) VerifySecondFactor(ctx context.Context, temporaryToken, code string) *Future[*cirtusai.Token] {
	return dispatch(func() (*cirtusai.Token, error) {
		return s.c.Auth.VerifySecondFactor(ctx, temporaryToken, code)
	})
}

// LoginWithSecondFactor dispatches the one-step login flow.
func (s *AuthService) LoginWithSecondFactor(ctx context.Context, identifier, password, code string) *Future[*cirtusai.Token] {
	return dispatch(func() (*cirtusai.Token, error) {
		return s.c.Auth.LoginWithSecondFactor(ctx, identifier, password, code)
	})
}

// Refresh dispatches a token refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) *Future[*cirtusai.Token] {
	return dispatch(func() (*cirtusai.Token, error) {
		return s.c.Auth.Refresh(ctx, refreshToken)
	})
}

// TwoFactorStatus dispatches a 2FA status read.
func (s *AuthService) TwoFactorStatus(ctx context.Context) *Future[*cirtusai.TwoFactorStatus] {
	return dispatch(func() (*cirtusai.TwoFactorStatus, error) {
		return s.c.Auth.TwoFactorStatus(ctx)
	})
}

// QRCode dispatches a QR code fetch.
func (s *AuthService) QRCode(ctx context.Context) *Future[[]byte] {
	return dispatch(func() ([]byte, error) {
		return s.c.Auth.QRCode(ctx)
	})
}

// DebugTwoFactor dispatches a valid-code debug read.
func (s *AuthService) DebugTwoFactor(ctx context.Context) *Future[*cirtusai.TwoFactorDebug] {
	return dispatch(func() (*cirtusai.TwoFactorDebug, error) {
		return s.c.Auth.DebugTwoFactor(ctx)
	})
}

// DisableTwoFactor dispatches a 2FA disable.
func (s *AuthService) DisableTwoFactor(ctx context.Context, code, password string) *Future[struct{}] {
	return dispatch(func() (struct{}, error) {
		return struct{}{}, s.c.Auth.DisableTwoFactor(ctx, code, password)
	})
}

// AgentsService mirrors cirtusai.AgentsService.
type AgentsService struct{ c *cirtusai.Client }

// ListAgents dispatches a master agent read.
func (s *AgentsService) ListAgents(ctx context.Context) *Future[*cirtusai.Agent] {
	return dispatch(func() (*cirtusai.Agent, error) {
		return s.c.Agents.ListAgents(ctx)
	})
}

// GetChildren dispatches a child agent listing.
func (s *AgentsService) GetChildren(ctx context.Context) *Future[[]cirtusai.ChildAgent] {
	return dispatch(func() ([]cirtusai.ChildAgent, error) {
		return s.c.Agents.GetChildren(ctx)
	})
}

// WalletsService mirrors cirtusai.WalletsService.
type WalletsService struct{ c *cirtusai.Client }

// ListAssets dispatches a wallet asset listing.
func (s *WalletsService) ListAssets(ctx context.Context) *Future[*cirtusai.Assets] {
	return dispatch(func() (*cirtusai.Assets, error) {
		return s.c.Wallets.ListAssets(ctx)
	})
}

// ListEmailAccounts dispatches an email account listing.
func (s *WalletsService) ListEmailAccounts(ctx context.Context) *Future[[]cirtusai.EmailAccount] {
	return dispatch(func() ([]cirtusai.EmailAccount, error) {
		return s.c.Wallets.ListEmailAccounts(ctx)
	})
}

// CreateEmailAccount dispatches an email account creation.
func (s *WalletsService) CreateEmailAccount(ctx context.Context, provider, emailAddress string, config map[string]any) *Future[*cirtusai.EmailAccount] {
	return dispatch(func() (*cirtusai.EmailAccount, error) {
		return s.c.Wallets.CreateEmailAccount(ctx, provider, emailAddress, config)
	})
}

// RefreshEmailToken dispatches an email OAuth token refresh.
func (s *WalletsService) RefreshEmailToken(ctx context.Context, accountID string) *Future[*cirtusai.RefreshEmailTokenResponse] {
	return dispatch(func() (*cirtusai.RefreshEmailTokenResponse, error) {
		return s.c.Wallets.RefreshEmailToken(ctx, accountID)
	})
}

// IdentityService mirrors cirtusai.IdentityService.
type IdentityService struct{ c *cirtusai.Client }

// ListCredentials dispatches a credential listing.
func (s *IdentityService) ListCredentials(ctx context.Context) *Future[[]cirtusai.Credential] {
	return dispatch(func() ([]cirtusai.Credential, error) {
		return s.c.Identity.ListCredentials(ctx)
	})
}

// IssueCredential dispatches a credential issuance.
func (s *IdentityService) IssueCredential(ctx context.Context, subject string, claims map[string]any) *Future[*cirtusai.IssuedCredential] {
	return dispatch(func() (*cirtusai.IssuedCredential, error) {
		return s.c.Identity.IssueCredential(ctx, subject, claims)
	})
}

// RevokeCredential dispatches a credential revocation.
func (s *IdentityService) RevokeCredential(ctx context.Context, credentialID string) *Future[struct{}] {
	return dispatch(func() (struct{}, error) {
		return struct{}{}, s.c.Identity.RevokeCredential(ctx, credentialID)
	})
}

// GetDID dispatches a DID document read.
func (s *IdentityService) GetDID(ctx context.Context) *Future[*cirtusai.DIDDocument] {
	return dispatch(func() (*cirtusai.DIDDocument, error) {
		return s.c.Identity.GetDID(ctx)
	})
}
