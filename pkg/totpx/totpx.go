// Package totpx mirrors the platform's TOTP parameters client-side: 6-digit
// codes over 30-second steps, with a one-step skew window on validation.
// It serves callers that hold the enrollment secret (e.g. automated flows
// completing a second-factor challenge) and the SDK's own tests. Backup
// codes bypass the time-step scheme entirely and are opaque to this package.
package totpx

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// Period is the TOTP time-step length in seconds.
	Period = 30

	// Skew is the number of adjacent steps accepted on validation, to
	// tolerate clock drift between client and platform.
	Skew = 1
)

var opts = totp.ValidateOpts{
	Period:    Period,
	Skew:      Skew,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// Code returns the TOTP code for the secret at time t.
func Code(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, opts)
}

// WindowCodes returns the codes for the previous, current and next time
// step at time t. These are exactly the codes the platform accepts under
// its skew window, matching what its 2FA debug endpoint reports.
func WindowCodes(secret string, t time.Time) ([]string, error) {
	codes := make([]string, 0, 2*Skew+1)
	for step := -Skew; step <= Skew; step++ {
		code, err := totp.GenerateCodeCustom(secret, t.Add(time.Duration(step*Period)*time.Second), opts)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// Validate reports whether code is acceptable for the secret at time t,
// applying the skew window.
func Validate(secret, code string, t time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, t, opts)
	return err == nil && ok
}
