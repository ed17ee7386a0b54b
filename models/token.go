// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppToken is the short-lived application token required by every
// authenticated upstream call.
type AppToken struct {
	// Value is the opaque token string sent as app_token.
	Value string

	// AcquiredAt is the moment the token was obtained (or supplied).
	AcquiredAt time.Time

	// ExpiresAt is populated only when the token is a JWT carrying an exp
	// claim. Zero otherwise.
	ExpiresAt time.Time
}

// IsZero reports whether the token carries no value.
func (t AppToken) IsZero() bool {
	return t.Value == ""
}

// String returns the token value. It implements [fmt.Stringer].
func (t AppToken) String() string {
	return t.Value
}

// TokenVerification is the audit report sent back to the token-issuing
// service once the freshly issued token has been accepted upstream.
type TokenVerification struct {
	AppToken   string    `json:"app_token"`
	Verified   bool      `json:"verified"`
	FullName   string    `json:"fullname"`
	VerifiedAt time.Time `json:"verified_at"`
}
