// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/utils"
)

type httpTransport struct {
	client *utils.HTTPClient
	apiURL string

	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty implementation of [Transport].
// It validates adapterCfg.APIURL and applies adapterCfg.RequestTimeout.
//
// Returns an error if the URL is empty or lacks a scheme and host.
func NewHTTPTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	apiURL, err := normalizeURL(adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpTransport{client: client, apiURL: apiURL, logger: logger}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Post implements [Transport].
func (h *httpTransport) Post(ctx context.Context, payload map[string]any) ([]byte, error) {
	if h.isClosed() {
		return nil, ErrTransportClosed
	}

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(h.apiURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	ev := h.logger.Debug()
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		ev = ev.Str("session_id", sessionID)
	}
	qtype, _ := payload["qtype"].(string)
	ev.Str("qtype", qtype).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started)).
		Msg("api post")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Close implements [Transport].
func (h *httpTransport) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.client.GetClient().CloseIdleConnections()
}

func (h *httpTransport) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
