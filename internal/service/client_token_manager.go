// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/adapter"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/utils"
	"github.com/MKhiriev/go-myweblog/models"
)

type tokenManager struct {
	secret    string
	newIssuer adapter.TokenIssuerFactory
	verifier  TokenVerifier
	now       func() time.Time

	mu    sync.Mutex
	token *models.AppToken

	logger *logger.Logger
}

// NewTokenManager returns a [TokenManager] that obtains tokens with secret
// from issuers opened by newIssuer and verifies them through verifier.
func NewTokenManager(secret string, newIssuer adapter.TokenIssuerFactory, verifier TokenVerifier, log *logger.Logger) TokenManager {
	return &tokenManager{
		secret:    secret,
		newIssuer: newIssuer,
		verifier:  verifier,
		now:       time.Now,
		logger:    log.WithComponent("token"),
	}
}

func (m *tokenManager) Acquire(ctx context.Context) (models.AppToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil {
		return *m.token, nil
	}

	issuer := m.newIssuer()
	defer issuer.Close()

	value, err := issuer.FetchToken(ctx, m.secret)
	if err != nil {
		return models.AppToken{}, fmt.Errorf("%w: fetch: %w", ErrTokenAcquisition, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return models.AppToken{}, fmt.Errorf("%w: issuer returned an empty token", ErrTokenAcquisition)
	}

	candidate := models.AppToken{Value: value, AcquiredAt: m.now()}
	if claims, err := utils.InspectToken(value); err == nil {
		candidate.ExpiresAt = claims.ExpiresAt
	}

	profile, err := m.verifier.VerifyToken(ctx, candidate)
	if err != nil {
		m.logger.Warn().Err(err).Msg("token verification failed")
		return models.AppToken{}, fmt.Errorf("%w: verify: %w", ErrTokenAcquisition, err)
	}

	report := models.TokenVerification{
		AppToken:   value,
		Verified:   true,
		FullName:   profile.FullName,
		VerifiedAt: m.now(),
	}
	if err = issuer.ReportVerification(ctx, m.secret, report); err != nil {
		return models.AppToken{}, fmt.Errorf("%w: report: %w", ErrTokenAcquisition, err)
	}

	m.token = &candidate
	m.logger.Info().
		Time("acquired_at", candidate.AcquiredAt).
		Time("expires_at", candidate.ExpiresAt).
		Msg("app token acquired")

	return candidate, nil
}

func (m *tokenManager) Token() (models.AppToken, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == nil {
		return models.AppToken{}, false
	}
	return *m.token, true
}

func (m *tokenManager) Preset(value string) {
	value = strings.TrimSpace(value)

	m.mu.Lock()
	defer m.mu.Unlock()

	if value == "" {
		m.token = nil
		return
	}

	t := models.AppToken{Value: value, AcquiredAt: m.now()}
	if claims, err := utils.InspectToken(value); err == nil {
		t.ExpiresAt = claims.ExpiresAt
	}
	m.token = &t
}

func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	m.token = nil
	m.mu.Unlock()
}
