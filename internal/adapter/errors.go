// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport-level sentinels. HTTP statuses are mapped by mapHTTPError so
// callers can use [errors.Is] without looking at status codes.
var (
	ErrRequestFailed       = errors.New("request failed")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	// ErrTransportClosed is returned by calls made after Close.
	ErrTransportClosed = errors.New("transport closed")

	// ErrEmptyToken is returned when the token-issuing service answers 2xx
	// without an app_token.
	ErrEmptyToken = errors.New("token service returned no app_token")
)
