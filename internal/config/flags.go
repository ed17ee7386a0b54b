// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
)

// RegisterFlags binds the configuration flags to fs and returns the config
// they are written into once fs is parsed. Binaries add their own flags to
// the same set before parsing.
//
// Flags:
//
//	-api-url            upstream API endpoint
//	-token-url          token-issuing service endpoint
//	-api-version        expected APIVersion echo
//	-language           language protocol field
//	-request-timeout    request timeout (e.g., "30s", "1m")
//	-window-days        forward booking window in days
//	-placeholder-prefix model prefix of placeholder aircraft
//	-log-path           log file path
//	-log-level          log level (debug, info, warn, error)
//	-c/-config          json file path with configs
//
// Credentials are read from the environment only.
func RegisterFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.APIURL, "api-url", "", "Upstream API URL")
	fs.StringVar(&cfg.Adapter.TokenURL, "token-url", "", "Token service URL")
	fs.StringVar(&cfg.Adapter.APIVersion, "api-version", "", "Expected API version")
	fs.StringVar(&cfg.Adapter.Language, "language", "", "Language field sent upstream")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Workflow.WindowDays, "window-days", 0, "Forward booking window in days")
	fs.StringVar(&cfg.Workflow.PlaceholderPrefix, "placeholder-prefix", "", "Model prefix of placeholder aircraft")
	fs.StringVar(&cfg.Log.Path, "log-path", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	return cfg
}
