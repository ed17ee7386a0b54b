// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrEmptyCredentials is returned by [Credentials.Validate] when any of the
// three session secrets is missing.
var ErrEmptyCredentials = errors.New("username, password and app secret must be non-empty")

// Credentials groups the secrets a session is built from. The value is
// immutable for the lifetime of a session.
//
// Password and AppSecret must never reach a log sink in plaintext: both
// [Credentials.String] and [Credentials.MarshalZerologObject] mask them.
type Credentials struct {
	// Username is the MyWebLog login (sent as mwl_u).
	Username string `json:"-"`

	// Password is the MyWebLog password (sent as mwl_p).
	Password string `json:"-"`

	// AppSecret is the long-lived secret exchanged for an app token at the
	// token-issuing service.
	AppSecret string `json:"-"`
}

// Validate reports whether all three secrets are present.
func (c Credentials) Validate() error {
	if c.Username == "" || c.Password == "" || c.AppSecret == "" {
		return ErrEmptyCredentials
	}
	return nil
}

// String implements [fmt.Stringer] without revealing secrets.
func (c Credentials) String() string {
	return "Credentials{Username: " + c.Username + ", Password: " + mask(c.Password) + ", AppSecret: " + mask(c.AppSecret) + "}"
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username).
		Str("password", mask(c.Password)).
		Str("app_secret", mask(c.AppSecret))
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
