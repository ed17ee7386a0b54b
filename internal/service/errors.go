// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-myweblog/internal/envelope"
	"github.com/MKhiriev/go-myweblog/models"
)

// Error taxonomy of the session layer. Every error returned by this package
// wraps exactly one of these, so callers classify with [errors.Is].
var (
	// ErrConfiguration means credentials or secret are missing. Fatal before
	// any network activity.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthenticationRequired means an authenticated operation was invoked
	// with no app token held. Acquire a token and retry.
	ErrAuthenticationRequired = errors.New("authentication required: no app token")

	// ErrTokenAcquisition means the issuing service or the verification call
	// failed. No token is cached when this is returned.
	ErrTokenAcquisition = errors.New("token acquisition failed")

	// ErrTransport wraps network and HTTP-layer failures. Never retried here.
	ErrTransport = errors.New("transport error")

	// ErrContractViolation means the response failed qType/APIVersion
	// validation or could not be decoded into the expected structure.
	ErrContractViolation = envelope.ErrContractViolation

	// ErrUpstream means the API answered with its own error indicator.
	ErrUpstream = envelope.ErrUpstream

	// ErrAmbiguousMutationResult means a create/delete response matched
	// neither the success nor the failure shape.
	ErrAmbiguousMutationResult = models.ErrAmbiguousMutationResult

	// ErrInvalidBookingWindow means a booking does not satisfy start < end.
	ErrInvalidBookingWindow = errors.New("booking start must be before its end")
)
