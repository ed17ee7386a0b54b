// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-myweblog/internal/adapter"
	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/envelope"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/mock"
	"github.com/MKhiriev/go-myweblog/internal/utils"
	"github.com/MKhiriev/go-myweblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdapterCfg = config.ClientAdapter{APIVersion: testVersion, Language: "se"}

func TestNewSession_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	factory := func() adapter.TokenIssuer {
		t.Fatal("no issuer may be opened")
		return nil
	}

	for _, creds := range []models.Credentials{
		{Password: "pw", AppSecret: "s"},
		{Username: "u", AppSecret: "s"},
		{Username: "u", Password: "pw"},
	} {
		s, err := NewSession(creds, testAdapterCfg, transport, factory, logger.Nop())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.ErrorIs(t, err, models.ErrEmptyCredentials)
	}
}

func TestSession_StartVerifiesThroughTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	issuer := mock.NewMockTokenIssuer(ctrl)

	s, err := NewSession(testCreds, testAdapterCfg, transport, func() adapter.TokenIssuer { return issuer }, logger.Nop())
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	ctx := context.Background()
	var verifyPayload, listPayload map[string]any
	gomock.InOrder(
		issuer.EXPECT().FetchToken(ctx, "secret").Return("tok-session", nil),
		transport.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p map[string]any) ([]byte, error) {
			verifyPayload = p
			return response(OpGetBalance, `{"fullname":"Test User"}`), nil
		}),
		issuer.EXPECT().ReportVerification(ctx, "secret", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, r models.TokenVerification) error {
				assert.True(t, r.Verified)
				assert.Equal(t, "Test User", r.FullName)
				return nil
			}),
		issuer.EXPECT().Close(),
		transport.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p map[string]any) ([]byte, error) {
			listPayload = p
			return response(OpGetObjects, `{"Object":[]}`), nil
		}),
	)

	require.NoError(t, s.Start(ctx))
	assert.Equal(t, OpGetBalance, verifyPayload[envelope.FieldOperation])
	assert.Equal(t, "tok-session", verifyPayload[envelope.FieldAppToken])

	// Already started: no second exchange.
	require.NoError(t, s.Start(ctx))

	_, err = s.Gateway.ListAircraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-session", listPayload[envelope.FieldAppToken])

	transport.EXPECT().Close().Times(1)
	s.Close()
	s.Close()

	_, ok := s.Tokens.Token()
	assert.False(t, ok)
	_, err = s.Gateway.ListAircraft(ctx)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestSession_StartFailureLeavesNoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	issuer := mock.NewMockTokenIssuer(ctrl)

	s, err := NewSession(testCreds, testAdapterCfg, transport, func() adapter.TokenIssuer { return issuer }, logger.Nop())
	require.NoError(t, err)

	issuer.EXPECT().FetchToken(gomock.Any(), "secret").Return("tok", nil)
	transport.EXPECT().Post(gomock.Any(), gomock.Any()).
		Return([]byte(`{"qType":"getBalance","APIVersion":"2.0.3","errorMessage":"Invalid token"}`), nil)
	issuer.EXPECT().Close()

	err = s.Start(context.Background())
	assert.ErrorIs(t, err, ErrTokenAcquisition)
	assert.ErrorIs(t, err, ErrUpstream)

	_, ok := s.Tokens.Token()
	assert.False(t, ok)

	sessionID, ok := utils.GetSessionIDFromContext(s.Bind(context.Background()))
	assert.True(t, ok)
	assert.Equal(t, s.ID, sessionID)

	transport.EXPECT().Close()
	s.Close()
}

func TestSession_UsePresetToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)

	s, err := NewSession(testCreds, testAdapterCfg, transport, func() adapter.TokenIssuer {
		t.Fatal("no issuer may be opened")
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	s.UsePresetToken("preset")
	require.NoError(t, s.Start(context.Background()))

	var payload map[string]any
	expectPost(transport, response(OpGetBalance, `{"fullname":"Test User"}`), &payload)
	rec, err := s.Gateway.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test User", rec.FullName)
	assert.Equal(t, "preset", payload[envelope.FieldAppToken])

	transport.EXPECT().Close()
	s.Close()
}
