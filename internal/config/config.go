// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Credentials holds the three session secrets. They are read from the
	// environment (or the JSON file) only; no flag exposes them.
	Credentials Credentials

	// Adapter holds the upstream API and token service endpoints.
	Adapter Adapter `envPrefix:"MYWEBLOG_"`

	// Workflow holds the booking workflow tunables.
	Workflow Workflow `envPrefix:"WORKFLOW_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Credentials groups the secrets a session is started with.
type Credentials struct {
	Username  string `env:"MYWEBLOG_USERNAME"`
	Password  string `env:"MYWEBLOG_PASSWORD"`
	AppSecret string `env:"APP_SECRET"`
}

// Adapter groups the network settings of the client.
type Adapter struct {
	// APIURL is the upstream endpoint every operation is POSTed to,
	// including its version query parameter.
	APIURL string `env:"API_URL"`

	// TokenURL is the token-issuing service endpoint.
	TokenURL string `env:"TOKEN_URL"`

	// APIVersion is the version every response must echo in APIVersion.
	APIVersion string `env:"API_VERSION"`

	// Language is sent as the language protocol field.
	Language string `env:"LANGUAGE"`

	// RequestTimeout bounds each outbound HTTP call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workflow groups the booking workflow settings.
type Workflow struct {
	// WindowDays is the length of the forward booking window, today included.
	WindowDays int `env:"WINDOW_DAYS"`

	// PlaceholderPrefix marks aircraft models that are not real assets.
	PlaceholderPrefix string `env:"PLACEHOLDER_PREFIX"`
}

// Log groups the log sink settings.
type Log struct {
	// Path is the log file. Empty means "logs" next to the executable.
	Path string `env:"PATH"`

	// Level is a zerolog level name.
	Level string `env:"LEVEL"`
}

// Defaults used when no source sets a value.
const (
	DefaultAPIURL            = "https://api.myweblog.se/api_mobile.php?version=2.0.3"
	DefaultTokenURL          = "https://myweblogtoken.netlify.app/api/app_token"
	DefaultAPIVersion        = "2.0.3"
	DefaultLanguage          = "se"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultWindowDays        = 3
	DefaultPlaceholderPrefix = "x"
	DefaultLogLevel          = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			APIURL:         DefaultAPIURL,
			TokenURL:       DefaultTokenURL,
			APIVersion:     DefaultAPIVersion,
			Language:       DefaultLanguage,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workflow: Workflow{
			WindowDays:        DefaultWindowDays,
			PlaceholderPrefix: DefaultPlaceholderPrefix,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
