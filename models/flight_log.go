// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FlightLogEntry is one row of getFlightLog / getFlightLogReversed.
type FlightLogEntry struct {
	Date          string  `json:"flight_datum"`
	AircraftID    FlexInt `json:"ac_id"`
	Registration  string  `json:"regnr"`
	PilotFullName string  `json:"fullname"`
	Departure     string  `json:"departure"`
	Via           string  `json:"via,omitempty"`
	Arrival       string  `json:"arrival"`

	BlockStart    FlexString `json:"block_start"`
	BlockEnd      FlexString `json:"block_end"`
	BlockTotal    FlexString `json:"block_total"`
	AirborneStart FlexString `json:"airborne_start"`
	AirborneEnd   FlexString `json:"airborne_end"`
	AirborneTotal FlexString `json:"airborne_total"`
	TachStart     FlexString `json:"tach_start"`
	TachEnd       FlexString `json:"tach_end"`
	TachTotal     FlexString `json:"tach_total"`

	FlightCount       FlexInt    `json:"flights"`
	Distance          FlexString `json:"distance"`
	NatureDescription string     `json:"nature_beskr"`
	Comment           string     `json:"comment"`
	RowID             FlexInt    `json:"rowID"`
}

// FlightLog is the result object of the flight log operations.
type FlightLog struct {
	Entries []FlightLogEntry `json:"FlightLog"`
}
