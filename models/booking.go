// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingTimeLayout is the wire layout for bStart/bEnd on createBooking:
// local time with a colon-separated offset, never the compact +hhmm form.
const BookingTimeLayout = "2006-01-02T15:04-07:00"

// DateLayout is the yyyy-mm-dd layout used for every date field on the wire.
const DateLayout = "2006-01-02"

// DisplayLayout is how booking times are rendered to the user.
const DisplayLayout = "2006-01-02 15:04"

var ErrUnparsableTimestamp = errors.New("unparsable timestamp")

// Booking is one reservation of an aircraft. Start and End keep the
// upstream text verbatim; use StartTime/EndTime for parsed values.
type Booking struct {
	ID             FlexInt    `json:"ID"`
	AircraftID     FlexInt    `json:"ac_id"`
	Registration   string     `json:"regnr"`
	UserID         FlexInt    `json:"user_id"`
	OwnerFullName  string     `json:"fullname"`
	OwnerEmail     string     `json:"email"`
	Start          FlexString `json:"bStart"`
	End            FlexString `json:"bEnd"`
	Type           string     `json:"typ"`
	SeatsRemaining FlexInt    `json:"platserkvar"`
	FreeText       string     `json:"fritext"`
	Primary        FlexBool   `json:"primary_booking"`
}

// StartTime parses Start in loc.
func (b Booking) StartTime(loc *time.Location) (time.Time, error) {
	return ParseTimestamp(string(b.Start), loc)
}

// EndTime parses End in loc.
func (b Booking) EndTime(loc *time.Location) (time.Time, error) {
	return ParseTimestamp(string(b.End), loc)
}

// OwnedBy reports whether fullName matches the booking owner exactly.
func (b Booking) OwnedBy(fullName string) bool {
	return fullName != "" && b.OwnerFullName == fullName
}

// Label renders "<id>: <start> - <end> (<owner>)". Unparsable times are
// shown verbatim.
func (b Booking) Label(loc *time.Location) string {
	return fmt.Sprintf("%d: %s - %s (%s)", b.ID, displayTimestamp(string(b.Start), loc), displayTimestamp(string(b.End), loc), b.OwnerFullName)
}

// BookingList is the result object of getBookings.
type BookingList struct {
	Bookings []Booking       `json:"Booking"`
	SunData  json.RawMessage `json:"sunData,omitempty"`
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	BookingTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DisplayLayout,
}

// ParseTimestamp accepts unix seconds or one of the textual layouts the
// upstream API is known to return. Layouts without an offset are read in loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparsableTimestamp)
	}
	if loc == nil {
		loc = time.Local
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).In(loc), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableTimestamp, raw)
}

func displayTimestamp(raw string, loc *time.Location) string {
	t, err := ParseTimestamp(raw, loc)
	if err != nil {
		return raw
	}
	return t.Format(DisplayLayout)
}
