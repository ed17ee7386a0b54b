// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workflow implements the interactive booking loop: aircraft
// selection, listing of active bookings and the create/delete actions with
// confirmation and refresh-after-mutation semantics.
//
// The engine is driven by a [Prompter] and never touches the terminal
// itself. It issues at most one [Gateway] call at a time.
package workflow

import (
	"context"

	"github.com/MKhiriev/go-myweblog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workflow_mock.go -package=mock

// Gateway is the subset of the API gateway the booking loop needs.
type Gateway interface {
	ListAircraft(ctx context.Context) ([]models.Aircraft, error)
	ListBookings(ctx context.Context, q models.BookingQuery) (models.BookingList, error)
	CreateBooking(ctx context.Context, b models.NewBooking) (models.MutationResult, error)
	DeleteBooking(ctx context.Context, id int64) (models.MutationResult, error)
	GetBalance(ctx context.Context) (models.BalanceRecord, error)
}

// Prompter asks the user for input. Every prompt reports ok=false when the
// user declined or aborted it.
type Prompter interface {
	// Select shows options and returns the index of the chosen one.
	Select(ctx context.Context, title string, options []string) (index int, ok bool, err error)

	// Input asks for one line of text prefilled with def.
	Input(ctx context.Context, title, def string) (value string, ok bool, err error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)

	// Notify shows a message without waiting for input.
	Notify(message string)
}
