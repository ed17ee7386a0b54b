// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-myweblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec() *Codec {
	return NewCodec(models.Credentials{Username: "pilot", Password: "secret", AppSecret: "app"}, "", "2.0.3")
}

// ── Build ────────────────────────────────────────────────────────────────────

func TestCodec_Build_ProtocolFields(t *testing.T) {
	c := testCodec()
	req := c.Build("getObjects", models.AppToken{Value: "tok"}, Fields{}.Bool("includeObjectThumbnail", false))

	payload := req.Payload()
	assert.Equal(t, map[string]any{
		"qtype":                  "getObjects",
		"mwl_u":                  "pilot",
		"mwl_p":                  "secret",
		"returnType":             "JSON",
		"charset":                "UTF-8",
		"app_token":              "tok",
		"language":               "se",
		"includeObjectThumbnail": int64(0),
	}, payload)
}

func TestCodec_Build_OperationFieldsNeverShadowProtocol(t *testing.T) {
	c := testCodec()
	fields := Fields{
		"qtype":     "deleteBooking",
		"mwl_u":     "intruder",
		"app_token": "forged",
		"ac_id":     int64(7),
	}

	payload := c.Build("getBookings", models.AppToken{Value: "tok"}, fields).Payload()

	assert.Equal(t, "getBookings", payload["qtype"])
	assert.Equal(t, "pilot", payload["mwl_u"])
	assert.Equal(t, "tok", payload["app_token"])
	assert.Equal(t, int64(7), payload["ac_id"])
	// caller's map is not modified
	assert.Equal(t, "forged", fields["app_token"])
}

func TestCodec_Build_FreshPerCall(t *testing.T) {
	c := testCodec()
	first := c.Build("getBookings", models.AppToken{Value: "tok"}, Fields{}.Int("ac_id", 1))
	second := c.Build("getBalance", models.AppToken{Value: "tok"}, nil)

	_, leaked := second.Payload()["ac_id"]
	assert.False(t, leaked)
	assert.Equal(t, int64(1), first.Payload()["ac_id"])
}

func TestFields_Encoding(t *testing.T) {
	day := time.Date(2026, 5, 3, 14, 0, 0, 0, time.UTC)
	limit := int64(20)

	f := Fields{}.
		Bool("mybookings", true).
		Bool("includeSun", false).
		Date("from_date", day).
		OptionalDate("to_date", nil).
		OptionalString("fritext", "").
		OptionalInt("limit", &limit).
		Int("ac_id", 42)

	assert.Equal(t, Fields{
		"mybookings": int64(1),
		"includeSun": int64(0),
		"from_date":  "2026-05-03",
		"limit":      int64(20),
		"ac_id":      int64(42),
	}, f)
}

func TestRequest_Payload_JSONKeepsNumbers(t *testing.T) {
	req := testCodec().Build("getBookings", models.AppToken{Value: "tok"},
		Fields{}.Int("ac_id", 42).Bool("mybookings", true).Str("from_date", "2026-05-03"))

	body, err := json.Marshal(req.Payload())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, float64(42), decoded["ac_id"])
	assert.Equal(t, float64(1), decoded["mybookings"])
	assert.Equal(t, "2026-05-03", decoded["from_date"])
	assert.Equal(t, "getBookings", decoded["qtype"])
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_RoundTripReturnsResultUnmodified(t *testing.T) {
	result := `{"Object":[ {"ID":"1","regnr":"SE-ABC"} ],"extra":  true}`
	raw := []byte(`{"qType":"getObjects","APIVersion":"2.0.3","result":` + result + `}`)

	got, err := testCodec().Validate(raw, "getObjects")
	require.NoError(t, err)
	assert.Equal(t, result, string(got))
}

func TestValidate_NumericVersion(t *testing.T) {
	raw := []byte(`{"qType":"getBalance","APIVersion":3,"result":{}}`)

	got, err := Validate(raw, "getBalance", "3")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

func TestValidate_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `<html>maintenance</html>`},
		{name: "operation mismatch", raw: `{"qType":"getBookings","APIVersion":"2.0.3","result":{}}`},
		{name: "version mismatch", raw: `{"qType":"getObjects","APIVersion":"2.0.2","result":{}}`},
		{name: "missing echo", raw: `{"result":{}}`},
		{name: "missing result", raw: `{"qType":"getObjects","APIVersion":"2.0.3"}`},
		{name: "null result", raw: `{"qType":"getObjects","APIVersion":"2.0.3","result":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testCodec().Validate([]byte(tt.raw), "getObjects")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrContractViolation)

			var ce *ContractError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.raw, string(ce.Raw))
			assert.Equal(t, "getObjects", ce.Operation)
		})
	}
}

func TestValidate_ErrorIndicator(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		msg  string
	}{
		{name: "error string", raw: `{"qType":"getBalance","APIVersion":"2.0.3","error":"Invalid app token"}`, msg: "Invalid app token"},
		{name: "errorMessage", raw: `{"qType":"getBalance","APIVersion":"2.0.3","errorMessage":"Wrong password"}`, msg: "Wrong password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate([]byte(tt.raw), "getBalance", "2.0.3")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)
			assert.NotErrorIs(t, err, ErrContractViolation)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestValidate_FalseErrorFlagIsIgnored(t *testing.T) {
	raw := []byte(`{"qType":"getBalance","APIVersion":"2.0.3","error":false,"result":{"Saldo":"10"}}`)

	got, err := Validate(raw, "getBalance", "2.0.3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Saldo":"10"}`, string(got))
}
