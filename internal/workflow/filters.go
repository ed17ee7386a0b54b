// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workflow

import (
	"time"

	"github.com/MKhiriev/go-myweblog/models"
)

// UsableAircraft keeps the aircraft that may be offered for selection.
func UsableAircraft(all []models.Aircraft, placeholderPrefix string) []models.Aircraft {
	usable := make([]models.Aircraft, 0, len(all))
	for _, a := range all {
		if a.Usable(placeholderPrefix) {
			usable = append(usable, a)
		}
	}
	return usable
}

// ActiveBookings drops bookings that ended strictly before now. A booking
// whose end cannot be parsed is kept.
func ActiveBookings(all []models.Booking, now time.Time, loc *time.Location) []models.Booking {
	active := make([]models.Booking, 0, len(all))
	for _, b := range all {
		end, err := b.EndTime(loc)
		if err == nil && end.Before(now) {
			continue
		}
		active = append(active, b)
	}
	return active
}

// OwnBookings keeps the bookings owned by fullName.
func OwnBookings(all []models.Booking, fullName string) []models.Booking {
	own := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.OwnedBy(fullName) {
			own = append(own, b)
		}
	}
	return own
}
