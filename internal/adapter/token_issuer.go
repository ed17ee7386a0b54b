// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/utils"
	"github.com/MKhiriev/go-myweblog/models"
)

// SecretHeader carries the app secret on both token endpoint calls.
const SecretHeader = "X-app-secret"

type tokenResponse struct {
	AppToken string `json:"app_token"`
}

type httpTokenIssuer struct {
	client   *utils.HTTPClient
	tokenURL string
	logger   *logger.Logger
}

// NewTokenIssuerFactory validates adapterCfg.TokenURL once and returns a
// factory that opens a new resty-backed [TokenIssuer] per call, so every
// acquisition runs on its own connection pool.
func NewTokenIssuerFactory(adapterCfg config.ClientAdapter, logger *logger.Logger) (TokenIssuerFactory, error) {
	tokenURL, err := normalizeURL(adapterCfg.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid token url: %w", err)
	}

	return func() TokenIssuer {
		client := utils.NewHTTPClient()
		client.SetTimeout(adapterCfg.RequestTimeout)
		return &httpTokenIssuer{client: client, tokenURL: tokenURL, logger: logger}
	}, nil
}

// FetchToken implements [TokenIssuer].
func (i *httpTokenIssuer) FetchToken(ctx context.Context, secret string) (string, error) {
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader(SecretHeader, secret).
		SetHeader("Accept", "application/json").
		Get(i.tokenURL)
	if err != nil {
		return "", fmt.Errorf("%w: fetch token: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	token := strings.TrimSpace(tr.AppToken)
	if token == "" {
		return "", ErrEmptyToken
	}

	i.logger.Debug().Msg("app token issued")
	return token, nil
}

// ReportVerification implements [TokenIssuer].
func (i *httpTokenIssuer) ReportVerification(ctx context.Context, secret string, report models.TokenVerification) error {
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader(SecretHeader, secret).
		SetHeader("Content-Type", "application/json").
		SetBody(report).
		Post(i.tokenURL)
	if err != nil {
		return fmt.Errorf("%w: report verification: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// Close implements [TokenIssuer].
func (i *httpTokenIssuer) Close() {
	i.client.GetClient().CloseIdleConnections()
}
