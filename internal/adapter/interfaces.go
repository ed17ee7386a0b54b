// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the network boundary of the client: the upstream
// MyWebLog API transport and the token-issuing service.
//
// Both are thin resty wrappers. They know nothing about the request
// envelope or the response contract; they only move bytes and map HTTP
// failures to the sentinel errors in errors.go. Neither retries.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-myweblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport sends one JSON POST to the upstream API and returns the raw
// response body.
type Transport interface {
	// Post sends payload encoded as a JSON object. A non-2xx status or a
	// network failure is returned as an error wrapping one of the package
	// sentinels.
	Post(ctx context.Context, payload map[string]any) ([]byte, error)

	// Close releases pooled connections. Calls made afterwards fail with
	// [ErrTransportClosed]. Close is safe to call more than once.
	Close()
}

// TokenIssuer talks to the service that exchanges the app secret for an app
// token. Each issuer owns its own connection pool and is meant to live for
// a single acquisition.
type TokenIssuer interface {
	// FetchToken performs GET on the token endpoint with the secret header
	// and returns the app_token value.
	FetchToken(ctx context.Context, secret string) (string, error)

	// ReportVerification POSTs the verification outcome for audit logging.
	ReportVerification(ctx context.Context, secret string, report models.TokenVerification) error

	// Close releases the issuer's connections.
	Close()
}

// TokenIssuerFactory opens a fresh, independent [TokenIssuer].
type TokenIssuerFactory func() TokenIssuer
