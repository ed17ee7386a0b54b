// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdapterCfg(url string) config.ClientAdapter {
	return config.ClientAdapter{APIURL: url, TokenURL: url, RequestTimeout: 5 * time.Second}
}

func newTestTransport(t *testing.T, serverURL string) Transport {
	t.Helper()
	tr, err := NewHTTPTransport(testAdapterCfg(serverURL+"/api_mobile.php?version=2.0.3"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(tr.Close)
	return tr
}

// ── Transport ────────────────────────────────────────────────────────────────

func TestTransport_Post_SendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api_mobile.php", r.URL.Path)
		assert.Equal(t, "2.0.3", r.URL.Query().Get("version"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var got map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "getObjects", got["qtype"])
		assert.Equal(t, float64(0), got["includeObjectThumbnail"])
		assert.Equal(t, float64(20), got["limit"])

		_, _ = w.Write([]byte(`{"qType":"getObjects"}`))
	}))
	defer srv.Close()

	body, err := newTestTransport(t, srv.URL).Post(context.Background(), map[string]any{
		"qtype":                  "getObjects",
		"includeObjectThumbnail": int64(0),
		"limit":                  int64(20),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"qType":"getObjects"}`, string(body))
}

func TestTransport_Post_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "teapot", status: http.StatusTeapot, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			body, err := newTestTransport(t, srv.URL).Post(context.Background(), map[string]any{"qtype": "getBalance"})
			assert.Nil(t, body)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestTransport_Post_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestTransport(t, url).Post(context.Background(), map[string]any{"qtype": "getBalance"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestTransport_Post_AfterClose(t *testing.T) {
	tr, err := NewHTTPTransport(testAdapterCfg("https://api.example.test"), logger.Nop())
	require.NoError(t, err)

	tr.Close()
	tr.Close()

	_, err = tr.Post(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, ErrTransportClosed)
}

func TestNewHTTPTransport_InvalidURL(t *testing.T) {
	_, err := NewHTTPTransport(testAdapterCfg("   "), logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api url")
}

func TestNormalizeURL(t *testing.T) {
	got, err := normalizeURL("api.myweblog.se/api_mobile.php?version=2.0.3")
	require.NoError(t, err)
	assert.Equal(t, "https://api.myweblog.se/api_mobile.php?version=2.0.3", got)

	_, err = normalizeURL("https://")
	assert.Error(t, err)
}

// ── TokenIssuer ──────────────────────────────────────────────────────────────

func TestTokenIssuer_FetchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "s3cret", r.Header.Get(SecretHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"app_token":" tok-123 "}`))
	}))
	defer srv.Close()

	factory, err := NewTokenIssuerFactory(testAdapterCfg(srv.URL), logger.Nop())
	require.NoError(t, err)
	issuer := factory()
	defer issuer.Close()

	token, err := issuer.FetchToken(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestTokenIssuer_FetchToken_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	factory, err := NewTokenIssuerFactory(testAdapterCfg(srv.URL), logger.Nop())
	require.NoError(t, err)

	_, err = factory().FetchToken(context.Background(), "s3cret")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestTokenIssuer_FetchToken_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad secret"))
	}))
	defer srv.Close()

	factory, err := NewTokenIssuerFactory(testAdapterCfg(srv.URL), logger.Nop())
	require.NoError(t, err)

	_, err = factory().FetchToken(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokenIssuer_ReportVerification(t *testing.T) {
	verifiedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "s3cret", r.Header.Get(SecretHeader))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var got models.TokenVerification
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "tok", got.AppToken)
		assert.True(t, got.Verified)
		assert.Equal(t, "Anna Pilot", got.FullName)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	factory, err := NewTokenIssuerFactory(testAdapterCfg(srv.URL), logger.Nop())
	require.NoError(t, err)

	err = factory().ReportVerification(context.Background(), "s3cret", models.TokenVerification{
		AppToken: "tok", Verified: true, FullName: "Anna Pilot", VerifiedAt: verifiedAt,
	})
	require.NoError(t, err)
}

func TestTokenIssuerFactory_Independent(t *testing.T) {
	factory, err := NewTokenIssuerFactory(testAdapterCfg("https://token.example.test"), logger.Nop())
	require.NoError(t, err)

	a := factory().(*httpTokenIssuer)
	b := factory().(*httpTokenIssuer)
	assert.NotSame(t, a.client, b.client)
}
