/*
Package cirtusai provides a client SDK for the CirtusAI agent platform.

# Overview

The package composes one shared transport Session with an auth state machine
and three stateless resource sub-clients (Agents, Wallets, Identity) behind a
single Client facade:

	client := cirtusai.New("https://api.cirtusai.example")
	defer client.Close()

	result, err := client.Auth.Login(ctx, "user@example.com", "password")

All sub-clients borrow the same Session, so a successful authentication call
installs the bearer token once and every subsequent request carries it.

# Authentication Flows

Accounts without a second factor authenticate in one step; the session header
is installed automatically:

	result, err := client.Auth.Login(ctx, identifier, password)
	// result.Token is set, client.Token() returns the access token

Accounts with 2FA enabled get a pending challenge instead. The session stays
unauthenticated until the challenge is answered:

	result, err := client.Auth.Login(ctx, identifier, password)
	if result.Requires2FA() {
		token, err := client.Auth.VerifySecondFactor(ctx, result.Challenge.TemporaryToken, code)
		// code may be a TOTP value or a single-use backup code
	}

The one-step convenience flow chains the two calls and is observationally
equivalent:

	token, err := client.Auth.LoginWithSecondFactor(ctx, identifier, password, code)

Tokens rotate via Refresh; a stale refresh token fails with
*TokenExpiredError and requires a full login replay:

	token, err := client.Auth.Refresh(ctx, token.RefreshToken)

A token restored from storage is installed manually:

	client.SetToken(savedToken)
	fmt.Println(client.Token()) // savedToken, re-derived from the header

# Error Handling

Failures are classified, never swallowed:

  - *TransportError: network-level failure, retryable by the caller
  - *StatusError: server rejected the request; Unauthorized() marks 401/403
  - *AuthorizationError: authenticated-only operation on an unauthenticated
    session; no network request is issued
  - *TwoFactorError: bad or expired second-factor code, carrying the
    platform's valid-code debugging set
  - *TokenExpiredError: stale refresh token
  - *RegistrationError, *NotFoundError

Match with errors.As:

	_, err := client.Wallets.ListEmailAccounts(ctx)
	var authErr *cirtusai.AuthorizationError
	if errors.As(err, &authErr) {
		// log in first
	}

The SDK applies no retry or backoff of its own; callers needing resilience
wrap calls externally.

# Concurrency

A Client (and its Session) is designed for one logical flow at a time: the
header mutation performed by login/refresh/SetToken is unsynchronized by
design. Use independent Client instances for parallel flows, or serialize the
authentication calls externally. Abandoning an in-flight call (e.g. via
context cancellation) never corrupts the session, because the header is only
mutated after a call completes successfully.

The async variant in package async exposes the identical operation set with
Future-returning methods; see that package's documentation.

# Capability Sets

Child agents carry permissions_granted, a set of capability names callers
consult before invoking privileged operations:

	children, _ := client.Agents.GetChildren(ctx)
	if children[0].HasPermission("send_email") {
		// proceed
	}

The SDK transports the capability set faithfully and enforces no policy.
*/
package cirtusai
