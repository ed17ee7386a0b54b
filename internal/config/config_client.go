// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-myweblog/models"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	APIURL         string
	TokenURL       string
	APIVersion     string
	Language       string
	RequestTimeout time.Duration
}

// ClientWorkflow holds booking workflow settings.
type ClientWorkflow struct {
	WindowDays        int
	PlaceholderPrefix string
}

// ClientLog holds log sink settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the validated configuration handed to the binaries.
type ClientConfig struct {
	Credentials models.Credentials
	Adapter     ClientAdapter
	Workflow    ClientWorkflow
	Log         ClientLog
}

// GetStructuredConfig merges env, flagCfg (may be nil), the JSON file and
// the defaults.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig builds and validates the client configuration.
//
// flagCfg is the value returned by [RegisterFlags] after parsing, or nil
// when the binary takes no configuration flags.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Credentials: models.Credentials{
			Username:  cfg.Credentials.Username,
			Password:  cfg.Credentials.Password,
			AppSecret: cfg.Credentials.AppSecret,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			TokenURL:       cfg.Adapter.TokenURL,
			APIVersion:     cfg.Adapter.APIVersion,
			Language:       cfg.Adapter.Language,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workflow: ClientWorkflow{
			WindowDays:        cfg.Workflow.WindowDays,
			PlaceholderPrefix: cfg.Workflow.PlaceholderPrefix,
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
