// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrMissingCredentials indicates that the username, password or app
	// secret is empty. It is fatal before any network activity.
	ErrMissingCredentials = errors.New("missing required credentials: MYWEBLOG_USERNAME, MYWEBLOG_PASSWORD, APP_SECRET")
	// ErrInvalidAdapterConfigs indicates invalid endpoint settings
	// (for example, missing API URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkflowConfigs indicates invalid workflow settings
	// (for example, a non-positive booking window).
	ErrInvalidWorkflowConfigs = errors.New("invalid workflow configuration")
)
