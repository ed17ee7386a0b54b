// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BookingQuery selects bookings of one aircraft. Nil dates are omitted from
// the request and the upstream default (today) applies.
type BookingQuery struct {
	AircraftID int64
	From       *time.Time
	To         *time.Time
	MineOnly   bool
	IncludeSun bool
}

// NewBooking describes a reservation to create. Start and End are sent in
// their own location with a colon-separated offset.
type NewBooking struct {
	AircraftID int64
	Start      time.Time
	End        time.Time

	// Text is the free text shown on the booking. Omitted when empty.
	Text string

	// ExpectedAirborne is the expected airborne time in minutes.
	ExpectedAirborne *int64

	// SeatsReserved is the number of seats taken by the booker.
	SeatsReserved *int64
}

// Duration returns End - Start.
func (b NewBooking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// DefaultLimit is the row limit used when a caller does not choose one.
const DefaultLimit = 20

// TransactionQuery bounds a getTransactions call. Limit is passed through
// unmodified.
type TransactionQuery struct {
	Limit int
	From  *time.Time
	To    *time.Time
}

// FlightLogQuery bounds a getFlightLog / getFlightLogReversed call.
type FlightLogQuery struct {
	Limit      int
	From       *time.Time
	To         *time.Time
	MineOnly   bool
	AircraftID *int64
}
