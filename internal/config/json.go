// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Credentials struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		AppSecret string `json:"app_secret"`
	} `json:"credentials,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url"`
		TokenURL       string   `json:"token_url"`
		APIVersion     string   `json:"api_version"`
		Language       string   `json:"language"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workflow struct {
		WindowDays        int    `json:"window_days"`
		PlaceholderPrefix string `json:"placeholder_prefix"`
	} `json:"workflow,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Credentials: Credentials{
			Username:  jsonCfg.Credentials.Username,
			Password:  jsonCfg.Credentials.Password,
			AppSecret: jsonCfg.Credentials.AppSecret,
		},
		Adapter: Adapter{
			APIURL:         jsonCfg.Adapter.APIURL,
			TokenURL:       jsonCfg.Adapter.TokenURL,
			APIVersion:     jsonCfg.Adapter.APIVersion,
			Language:       jsonCfg.Adapter.Language,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workflow: Workflow{
			WindowDays:        jsonCfg.Workflow.WindowDays,
			PlaceholderPrefix: jsonCfg.Workflow.PlaceholderPrefix,
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
