package cirtusai

import (
	"context"
	"net/http"
)

// IdentityService is a stateless facade over the identity and credential
// endpoints. Server rejections propagate as *StatusError unchanged.
type IdentityService struct {
	session *Session
}

// ListCredentials returns the credentials held by the caller's identity.
func (s *IdentityService) ListCredentials(ctx context.Context) ([]Credential, error) {
	if err := s.session.requireAuth("list credentials"); err != nil {
		return nil, err
	}
	var creds []Credential
	if err := s.session.Request(ctx, http.MethodGet, "/identity/credentials", nil, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// IssueCredential asks the platform to issue a signed credential for a
// subject with the given claims.
func (s *IdentityService) IssueCredential(ctx context.Context, subject string, claims map[string]any) (*IssuedCredential, error) {
	if err := s.session.requireAuth("issue credential"); err != nil {
		return nil, err
	}
	payload := map[string]any{
		"subject": subject,
		"claims":  claims,
	}
	var issued IssuedCredential
	if err := s.session.Request(ctx, http.MethodPost, "/identity/credentials", payload, &issued); err != nil {
		return nil, err
	}
	return &issued, nil
}

// RevokeCredential revokes a previously issued credential.
func (s *IdentityService) RevokeCredential(ctx context.Context, credentialID string) error {
	if err := s.session.requireAuth("revoke credential"); err != nil {
		return err
	}
	return s.session.Request(ctx, http.MethodDelete, "/identity/credentials/"+credentialID, nil, nil)
}

// GetDID returns the caller's decentralized identifier document.
func (s *IdentityService) GetDID(ctx context.Context) (*DIDDocument, error) {
	if err := s.session.requireAuth("get DID"); err != nil {
		return nil, err
	}
	var doc DIDDocument
	if err := s.session.Request(ctx, http.MethodGet, "/identity/did", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
