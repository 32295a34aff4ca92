// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth implements the single-operator authorization scheme: one
// shared admin secret gates every write operation. The secret doubles as
// the bearer token, so the check lives in exactly one place instead of
// being scattered across endpoints. An optional TOTP second factor can
// be layered on for the login verification step.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"
)

// Verifier holds the configured admin credentials.
type Verifier struct {
	password     string
	passwordHash string
	totpSecret   string
}

// New creates a Verifier. When passwordHash (bcrypt) is set it takes
// precedence over the plain password; totpSecret enables the optional
// second factor.
func New(password, passwordHash, totpSecret string) *Verifier {
	return &Verifier{
		password:     password,
		passwordHash: passwordHash,
		totpSecret:   totpSecret,
	}
}

// VerifyPassword checks a candidate secret against the configured one.
func (v *Verifier) VerifyPassword(candidate string) bool {
	if v.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.password), []byte(candidate)) == 1
}

// Authorize checks a bearer credential from a write request. The token
// is the admin secret itself — deliberately minimal for a
// single-operator site.
func (v *Verifier) Authorize(credential string) bool {
	return credential != "" && v.VerifyPassword(credential)
}

// TOTPEnabled reports whether the second factor is configured.
func (v *Verifier) TOTPEnabled() bool {
	return v.totpSecret != ""
}

// VerifyTOTP validates a time-based one-time code against the configured
// secret. Always false when TOTP is not enabled.
func (v *Verifier) VerifyTOTP(code string) bool {
	if v.totpSecret == "" {
		return false
	}
	return totp.Validate(code, v.totpSecret)
}

// ProvisioningQR renders the otpauth enrollment URL as a PNG QR code for
// scanning into an authenticator app.
func (v *Verifier) ProvisioningQR(issuer, account string) ([]byte, error) {
	if v.totpSecret == "" {
		return nil, fmt.Errorf("totp is not configured")
	}
	url := fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s", issuer, account, v.totpSecret, issuer)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("totp qr encode: %w", err)
	}
	return png, nil
}
