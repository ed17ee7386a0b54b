// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MYWEBLOG_USERNAME", "MYWEBLOG_PASSWORD", "APP_SECRET",
		"MYWEBLOG_API_URL", "MYWEBLOG_TOKEN_URL", "MYWEBLOG_API_VERSION",
		"MYWEBLOG_LANGUAGE", "MYWEBLOG_REQUEST_TIMEOUT",
		"WORKFLOW_WINDOW_DAYS", "WORKFLOW_PLACEHOLDER_PREFIX",
		"LOG_PATH", "LOG_LEVEL", "CONFIG",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	clearEnv(t)
	setEnvVars(t, map[string]string{
		"MYWEBLOG_USERNAME":           "pilot",
		"MYWEBLOG_PASSWORD":           "hunter2",
		"APP_SECRET":                  "s3cret",
		"MYWEBLOG_API_URL":            "https://api.example.test/api_mobile.php?version=9",
		"MYWEBLOG_TOKEN_URL":          "https://token.example.test/app_token",
		"MYWEBLOG_API_VERSION":        "9",
		"MYWEBLOG_LANGUAGE":           "en",
		"MYWEBLOG_REQUEST_TIMEOUT":    "5s",
		"WORKFLOW_WINDOW_DAYS":        "7",
		"WORKFLOW_PLACEHOLDER_PREFIX": "zz",
		"LOG_PATH":                    "/tmp/mwl.log",
		"LOG_LEVEL":                   "info",
		"CONFIG":                      "/path/to/config.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "pilot", cfg.Credentials.Username)
	assert.Equal(t, "hunter2", cfg.Credentials.Password)
	assert.Equal(t, "s3cret", cfg.Credentials.AppSecret)
	assert.Equal(t, "https://api.example.test/api_mobile.php?version=9", cfg.Adapter.APIURL)
	assert.Equal(t, "https://token.example.test/app_token", cfg.Adapter.TokenURL)
	assert.Equal(t, "9", cfg.Adapter.APIVersion)
	assert.Equal(t, "en", cfg.Adapter.Language)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 7, cfg.Workflow.WindowDays)
	assert.Equal(t, "zz", cfg.Workflow.PlaceholderPrefix)
	assert.Equal(t, "/tmp/mwl.log", cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYWEBLOG_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source
// is not overridden by a later one, while zero fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{Language: "en"}},
		&StructuredConfig{Adapter: Adapter{Language: "se", APIVersion: "2.0.3"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Adapter.Language)
	assert.Equal(t, "2.0.3", cfg.Adapter.APIVersion)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags(&StructuredConfig{Workflow: Workflow{WindowDays: 5}}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Workflow.WindowDays)
	assert.Equal(t, DefaultPlaceholderPrefix, cfg.Workflow.PlaceholderPrefix)
	assert.Equal(t, DefaultAPIURL, cfg.Adapter.APIURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{JSONFilePath: "/definitely/not/here.json"}).
		withJSON()

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"credentials": map[string]any{"username": "pilot", "password": "pw", "app_secret": "sec"},
		"adapter": map[string]any{
			"api_url":         "https://api.example.test",
			"token_url":       "https://token.example.test",
			"api_version":     "2.0.3",
			"language":        "se",
			"request_timeout": "1m",
		},
		"workflow": map[string]any{"window_days": 4, "placeholder_prefix": "x"},
		"log":      map[string]any{"path": "/var/log/mwl", "level": "warn"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "pilot", cfg.Credentials.Username)
	assert.Equal(t, "sec", cfg.Credentials.AppSecret)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Workflow.WindowDays)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"30s"`, want: 30 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "garbage", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestRegisterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := RegisterFlags(fs)

	err := fs.Parse([]string{
		"-api-url", "https://api.example.test",
		"-request-timeout", "10s",
		"-window-days", "2",
		"-c", "/etc/mwl.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test", cfg.Adapter.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Workflow.WindowDays)
	assert.Equal(t, "/etc/mwl.json", cfg.JSONFilePath)
	assert.Nil(t, fs.Lookup("password"))
}

// ── client config ─────────────────────────────────────────────────────────────

func TestGetClientConfig_Success(t *testing.T) {
	clearEnv(t)
	setEnvVars(t, map[string]string{
		"MYWEBLOG_USERNAME": "pilot",
		"MYWEBLOG_PASSWORD": "pw",
		"APP_SECRET":        "sec",
	})

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "pilot", cfg.Credentials.Username)
	assert.Equal(t, DefaultAPIVersion, cfg.Adapter.APIVersion)
	assert.Equal(t, DefaultWindowDays, cfg.Workflow.WindowDays)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYWEBLOG_USERNAME", "pilot")

	cfg, err := GetClientConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{
				APIURL: "https://a", TokenURL: "https://t", APIVersion: "1", RequestTimeout: time.Second,
			},
			Workflow: ClientWorkflow{WindowDays: 3},
		}
	}

	cfg := valid()
	cfg.Credentials.Username, cfg.Credentials.Password, cfg.Credentials.AppSecret = "u", "p", "s"
	assert.NoError(t, cfg.validate())

	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Credentials.Username, cfg.Credentials.Password, cfg.Credentials.AppSecret = "u", "p", "s"
	cfg.Workflow.WindowDays = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkflowConfigs)
}
