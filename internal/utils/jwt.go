// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by InspectToken when the token is not a JWT.
var ErrNotJWT = errors.New("token is not a jwt")

// TokenClaims holds the time claims found in an app token. Both fields are
// zero when the matching claim is absent.
type TokenClaims struct {
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// InspectToken reads the iat/exp claims of tokenString without verifying
// its signature. App tokens are opaque to the client; the claims are only
// used for logging and expiry hints.
func InspectToken(tokenString string) (TokenClaims, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return TokenClaims{}, errors.Join(ErrNotJWT, err)
	}

	var tc TokenClaims
	if claims.IssuedAt != nil {
		tc.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		tc.ExpiresAt = claims.ExpiresAt.Time
	}
	return tc, nil
}
