// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session layer of the MyWebLog client: the
// typed API gateway, the app token manager and the session object tying
// them to one transport.
package service

import (
	"context"

	"github.com/MKhiriev/go-myweblog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// GatewayClient is the typed façade over the request envelope for every
// business operation. Each method fails fast with [ErrAuthenticationRequired]
// when no app token is held.
type GatewayClient interface {
	// ListAircraft returns every object of the user's clubs, placeholder
	// entries included. Thumbnails are never requested.
	ListAircraft(ctx context.Context) ([]models.Aircraft, error)

	// ListBookings returns the bookings matching q.
	ListBookings(ctx context.Context, q models.BookingQuery) (models.BookingList, error)

	// CreateBooking creates a reservation and interprets the response with
	// the info/error message convention.
	CreateBooking(ctx context.Context, b models.NewBooking) (models.MutationResult, error)

	// CutBooking shortens the booking identified by id to end now.
	CutBooking(ctx context.Context, id int64) (models.MutationResult, error)

	// DeleteBooking removes the booking identified by id. Success is the
	// literal "OK" result marker.
	DeleteBooking(ctx context.Context, id int64) (models.MutationResult, error)

	// GetBalance returns the account balance and the user's profile name.
	GetBalance(ctx context.Context) (models.BalanceRecord, error)

	// GetTransactions returns account transactions, newest first.
	GetTransactions(ctx context.Context, q models.TransactionQuery) ([]models.TransactionRecord, error)

	// GetFlightLog returns flight log rows matching q.
	GetFlightLog(ctx context.Context, q models.FlightLogQuery) ([]models.FlightLogEntry, error)

	// GetFlightLogReversed returns flight log rows matching q in reversed
	// order.
	GetFlightLogReversed(ctx context.Context, q models.FlightLogQuery) ([]models.FlightLogEntry, error)
}

// TokenManager owns the session's app token.
type TokenManager interface {
	// Acquire returns the held token, or obtains, verifies and caches a new
	// one. A second call without Invalidate performs no network exchange.
	Acquire(ctx context.Context) (models.AppToken, error)

	// Token returns the held token and whether one is held.
	Token() (models.AppToken, bool)

	// Preset installs a pre-acquired token without contacting any service.
	Preset(value string)

	// Invalidate drops the held token.
	Invalidate()
}

// TokenVerifier performs a live account lookup with a token that is not yet
// cached, to prove the upstream accepts it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token models.AppToken) (models.BalanceRecord, error)
}

// TokenSource yields the app token currently held by a session.
type TokenSource interface {
	Token() (models.AppToken, bool)
}
