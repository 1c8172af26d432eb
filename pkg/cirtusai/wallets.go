package cirtusai

import (
	"context"
	"errors"
	"net/http"
)

// WalletsService is a stateless facade over the wallet asset and email
// account endpoints.
type WalletsService struct {
	session *Session
}

// ListAssets returns all wallet assets held by the caller.
func (s *WalletsService) ListAssets(ctx context.Context) (*Assets, error) {
	if err := s.session.requireAuth("list assets"); err != nil {
		return nil, err
	}
	var assets Assets
	if err := s.session.Request(ctx, http.MethodGet, "/wallets", nil, &assets); err != nil {
		return nil, err
	}
	return &assets, nil
}

// ListEmailAccounts returns the email accounts linked to the wallet.
func (s *WalletsService) ListEmailAccounts(ctx context.Context) ([]EmailAccount, error) {
	if err := s.session.requireAuth("list email accounts"); err != nil {
		return nil, err
	}
	var accounts []EmailAccount
	if err := s.session.Request(ctx, http.MethodGet, "/wallets/email_accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateEmailAccount provisions a new email account in the wallet. config
// carries provider-specific settings and is passed through verbatim.
func (s *WalletsService) CreateEmailAccount(ctx context.Context, provider, emailAddress string, config map[string]any) (*EmailAccount, error) {
	if err := s.session.requireAuth("create email account"); err != nil {
		return nil, err
	}
	payload := createEmailAccountRequest{
		Provider:     provider,
		EmailAddress: emailAddress,
		Config:       config,
	}
	var account EmailAccount
	if err := s.session.Request(ctx, http.MethodPost, "/wallets/email_accounts", payload, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// RefreshEmailToken refreshes the OAuth token of an email account. An
// unknown accountID fails with a *NotFoundError.
func (s *WalletsService) RefreshEmailToken(ctx context.Context, accountID string) (*RefreshEmailTokenResponse, error) {
	if err := s.session.requireAuth("refresh email token"); err != nil {
		return nil, err
	}
	var resp RefreshEmailTokenResponse
	err := s.session.Request(ctx, http.MethodPost, "/wallets/email_accounts/"+accountID+"/refresh", nil, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, &NotFoundError{Resource: "email account " + accountID, Message: errorDetail(se.Body)}
		}
		return nil, err
	}
	return &resp, nil
}
