// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Aircraft is a bookable object as returned by getObjects. Identity is ID.
type Aircraft struct {
	ID           FlexInt    `json:"ID"`
	Registration string     `json:"regnr"`
	Model        string     `json:"model"`
	ClubID       FlexInt    `json:"club_id"`
	ClubName     string     `json:"clubname"`
	Thumbnail    FlexString `json:"objectThumbnail,omitempty"`
}

// Usable reports whether the aircraft may be offered for selection: both
// registration and model are set and the model does not start with the
// placeholder prefix (compared case-insensitively).
func (a Aircraft) Usable(placeholderPrefix string) bool {
	if strings.TrimSpace(a.Registration) == "" || strings.TrimSpace(a.Model) == "" {
		return false
	}
	if placeholderPrefix == "" {
		return true
	}
	return !strings.HasPrefix(strings.ToLower(a.Model), strings.ToLower(placeholderPrefix))
}

// Label renders the aircraft the way selection menus show it.
func (a Aircraft) Label() string {
	return a.Registration + " (" + a.Model + ")"
}

// AircraftList is the result object of getObjects.
type AircraftList struct {
	Objects []Aircraft `json:"Object"`
}
