// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, UserAgent, client1.Header.Get("User-Agent"))
}

func TestInspectToken_JWT(t *testing.T) {
	iat := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	exp := iat.Add(time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("issuer-key"))
	require.NoError(t, err)

	claims, err := InspectToken(signed)
	require.NoError(t, err)
	assert.True(t, iat.Equal(claims.IssuedAt))
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestInspectToken_Opaque(t *testing.T) {
	_, err := InspectToken("mySecretApptoken")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}

func TestSessionIDContext(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSessionID(context.Background(), "abc")
	got, ok := GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "sessionID", SessionIDCtxKey.String())
}
