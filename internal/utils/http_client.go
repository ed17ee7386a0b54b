// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent on every outbound request.
const UserAgent = "go-myweblog"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with its own connection pool and the
// package User-Agent set. Retries stay disabled: the callers surface every
// transport failure as-is.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)
	return &HTTPClient{Client: client}
}
