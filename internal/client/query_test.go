// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/mock"
	"github.com/MKhiriev/go-myweblog/internal/service"
	"github.com/MKhiriev/go-myweblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var queryNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestQuery(t *testing.T) (*Query, *mock.MockGatewayClient, *mock.MockQueryPrompter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gw := mock.NewMockGatewayClient(ctrl)
	prompter := mock.NewMockQueryPrompter(ctrl)
	out := &bytes.Buffer{}

	q := NewQuery(gw, prompter, out, QueryOptions{
		PlaceholderPrefix: "x",
		Now:               func() time.Time { return queryNow },
	}, logger.Nop())

	return q, gw, prompter, out
}

func TestOperations_FlagsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range Operations {
		for _, f := range []string{op.Flag, op.Short} {
			assert.False(t, seen[f], f)
			seen[f] = true
		}
	}
	assert.Len(t, Operations, 6)
}

func TestQuery_ChooseOperations(t *testing.T) {
	q, _, prompter, _ := newTestQuery(t)

	prompter.EXPECT().MultiSelect(gomock.Any(), gomock.Any(), []string{
		"GetObjects", "GetBookings", "GetBalance", "GetTransactions", "GetFlightLog", "GetFlightLogReversed",
	}).Return([]int{2, 5}, true, nil)

	names, err := q.ChooseOperations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{service.OpGetBalance, service.OpGetFlightLogReversed}, names)
}

func TestQuery_ChooseOperations_Cancelled(t *testing.T) {
	q, _, prompter, _ := newTestQuery(t)
	prompter.EXPECT().MultiSelect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, nil)

	names, err := q.ChooseOperations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestQuery_RunPrintsJSON(t *testing.T) {
	q, gw, _, out := newTestQuery(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().GetBalance(ctx).Return(models.BalanceRecord{FullName: "Test User", Balance: 10.5}, nil),
		gw.EXPECT().GetTransactions(ctx, models.TransactionQuery{Limit: models.DefaultLimit}).
			Return([]models.TransactionRecord{{Date: "2026-04-30", Amount: -200}}, nil),
		gw.EXPECT().GetFlightLog(ctx, models.FlightLogQuery{Limit: models.DefaultLimit}).Return(nil, nil),
	)

	err := q.Run(ctx, []string{service.OpGetBalance, service.OpGetTransactions, service.OpGetFlightLog})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "getBalance:\n{\n  \"Fornamn\"")
	assert.Contains(t, text, `"fullname": "Test User"`)
	assert.Contains(t, text, `"Saldo": 10.5`)
	assert.Contains(t, text, `"belopp": -200`)
	assert.Contains(t, text, "getFlightLog:\nnull")
}

func TestQuery_LimitPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGatewayClient(ctrl)
	q := NewQuery(gw, mock.NewMockQueryPrompter(ctrl), &bytes.Buffer{}, QueryOptions{Limit: -5}, logger.Nop())
	ctx := context.Background()

	gw.EXPECT().GetTransactions(ctx, models.TransactionQuery{Limit: -5}).Return(nil, nil)

	require.NoError(t, q.Run(ctx, []string{service.OpGetTransactions}))
}

func TestQuery_Bookings(t *testing.T) {
	q, gw, prompter, out := newTestQuery(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().ListAircraft(ctx).Return([]models.Aircraft{
			{ID: 2, Registration: "SE-XXX", Model: "Xtest"},
			{ID: 1, Registration: "SE-ABC", Model: "C172"},
		}, nil),
		prompter.EXPECT().Select(ctx, "Select an airplane:", []string{"SE-ABC (C172)"}).Return(0, true, nil),
		gw.EXPECT().ListBookings(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, bq models.BookingQuery) (models.BookingList, error) {
				assert.Equal(t, int64(1), bq.AircraftID)
				assert.Equal(t, "2026-05-01", bq.From.Format(models.DateLayout))
				assert.Equal(t, "2026-05-04", bq.To.Format(models.DateLayout))
				return models.BookingList{Bookings: []models.Booking{{ID: 9, OwnerFullName: "Test User"}}}, nil
			}),
	)

	require.NoError(t, q.Run(ctx, []string{service.OpGetBookings}))
	assert.Contains(t, out.String(), `"fullname": "Test User"`)
}

func TestQuery_BookingsDeclinedPrintsNothing(t *testing.T) {
	q, gw, prompter, out := newTestQuery(t)

	gw.EXPECT().ListAircraft(gomock.Any()).Return([]models.Aircraft{{ID: 1, Registration: "SE-ABC", Model: "C172"}}, nil)
	prompter.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, false, nil)

	require.NoError(t, q.Run(context.Background(), []string{service.OpGetBookings}))
	assert.Empty(t, out.String())
}

func TestQuery_RunStopsOnError(t *testing.T) {
	q, gw, _, out := newTestQuery(t)

	gw.EXPECT().ListAircraft(gomock.Any()).Return(nil, service.ErrAuthenticationRequired)

	err := q.Run(context.Background(), []string{service.OpGetObjects, service.OpGetBalance})
	assert.ErrorIs(t, err, service.ErrAuthenticationRequired)
	assert.Contains(t, err.Error(), service.OpGetObjects)
	assert.Empty(t, out.String())
}

func TestQuery_UnknownOperation(t *testing.T) {
	q, _, _, _ := newTestQuery(t)

	err := q.Run(context.Background(), []string{"getEverything"})
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}
