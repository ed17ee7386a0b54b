// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-myweblog/internal/adapter"
	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/envelope"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/utils"
	"github.com/MKhiriev/go-myweblog/models"
)

// Session is one logical client session: credentials, the API transport,
// the app token and the gateway built on them. A Session is not safe for
// concurrent use by several workflows; it issues one call at a time.
type Session struct {
	ID      string
	Gateway GatewayClient
	Tokens  TokenManager

	transport adapter.Transport
	closeOnce sync.Once
	logger    *logger.Logger
}

// NewSession validates creds and wires the gateway and token manager onto
// transport. issuers opens the independent connection used during token
// acquisition.
//
// Returns an error wrapping [ErrConfiguration] when a credential is empty;
// no network activity happens in that case.
func NewSession(
	creds models.Credentials,
	adapterCfg config.ClientAdapter,
	transport adapter.Transport,
	issuers adapter.TokenIssuerFactory,
	log *logger.Logger,
) (*Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if transport == nil || issuers == nil {
		return nil, fmt.Errorf("%w: transport and token issuer are required", ErrConfiguration)
	}

	id := utils.NewSessionID()
	sessionLog := &logger.Logger{Logger: log.With().Str("session_id", id).Logger()}

	codec := envelope.NewCodec(creds, adapterCfg.Language, adapterCfg.APIVersion)
	gw := &gatewayClient{
		transport: transport,
		codec:     codec,
		logger:    sessionLog.WithComponent("gateway"),
	}
	tokens := NewTokenManager(creds.AppSecret, issuers, gw, sessionLog)
	gw.tokens = tokens

	sessionLog.Info().Object("credentials", creds).Msg("session created")

	return &Session{
		ID:        id,
		Gateway:   gw,
		Tokens:    tokens,
		transport: transport,
		logger:    sessionLog,
	}, nil
}

// Bind returns a copy of ctx carrying the session ID, which the transport
// adds to its log entries.
func (s *Session) Bind(ctx context.Context) context.Context {
	return utils.WithSessionID(ctx, s.ID)
}

// Start acquires and verifies the app token. It is a no-op when a token is
// already held.
func (s *Session) Start(ctx context.Context) error {
	if _, err := s.Tokens.Acquire(ctx); err != nil {
		return err
	}
	return nil
}

// UsePresetToken installs a token obtained elsewhere. No verification call
// is made.
func (s *Session) UsePresetToken(token string) {
	s.Tokens.Preset(token)
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *logger.Logger {
	return s.logger
}

// Close drops the token and releases the transport. Subsequent calls are
// no-ops.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.Tokens.Invalidate()
		s.transport.Close()
		s.logger.Info().Msg("session closed")
	})
}
