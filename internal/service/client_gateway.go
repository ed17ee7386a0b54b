// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/adapter"
	"github.com/MKhiriev/go-myweblog/internal/envelope"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/models"
)

// Upstream operation names.
const (
	OpGetObjects           = "getObjects"
	OpGetBookings          = "getBookings"
	OpCreateBooking        = "createBooking"
	OpCutBooking           = "cutBooking"
	OpDeleteBooking        = "deleteBooking"
	OpGetBalance           = "getBalance"
	OpGetTransactions      = "getTransactions"
	OpGetFlightLog         = "getFlightLog"
	OpGetFlightLogReversed = "getFlightLogReversed"
)

// Operation-specific wire fields.
const (
	fieldIncludeThumbnail = "includeObjectThumbnail"
	fieldAircraftID       = "ac_id"
	fieldMyBookings       = "mybookings"
	fieldFromDate         = "from_date"
	fieldToDate           = "to_date"
	fieldIncludeSun       = "includeSun"
	fieldBookingStart     = "bStart"
	fieldBookingEnd       = "bEnd"
	fieldFreeText         = "fritext"
	fieldAirborneMinutes  = "flygtid"
	fieldSeats            = "platser"
	fieldBookingID        = "bookingID"
	fieldLimit            = "limit"
	fieldMyFlights        = "myflights"
)

type gatewayClient struct {
	transport adapter.Transport
	codec     *envelope.Codec
	tokens    TokenSource
	logger    *logger.Logger
}

// NewGatewayClient returns a [GatewayClient] sending every request through
// transport. tokens supplies the app token; a nil source behaves as if no
// token were held.
func NewGatewayClient(transport adapter.Transport, codec *envelope.Codec, tokens TokenSource, log *logger.Logger) GatewayClient {
	return &gatewayClient{
		transport: transport,
		codec:     codec,
		tokens:    tokens,
		logger:    log.WithComponent("gateway"),
	}
}

func (g *gatewayClient) ListAircraft(ctx context.Context) ([]models.Aircraft, error) {
	fields := envelope.Fields{}.Int(fieldIncludeThumbnail, 0)

	var list models.AircraftList
	if err := g.call(ctx, OpGetObjects, fields, &list); err != nil {
		return nil, err
	}

	return list.Objects, nil
}

func (g *gatewayClient) ListBookings(ctx context.Context, q models.BookingQuery) (models.BookingList, error) {
	fields := envelope.Fields{}.
		Int(fieldAircraftID, q.AircraftID).
		Bool(fieldMyBookings, q.MineOnly).
		OptionalDate(fieldFromDate, q.From).
		OptionalDate(fieldToDate, q.To).
		Bool(fieldIncludeSun, q.IncludeSun)

	var list models.BookingList
	if err := g.call(ctx, OpGetBookings, fields, &list); err != nil {
		return models.BookingList{}, err
	}

	return list, nil
}

func (g *gatewayClient) CreateBooking(ctx context.Context, b models.NewBooking) (models.MutationResult, error) {
	if !b.Start.Before(b.End) {
		return models.MutationResult{}, fmt.Errorf("%w: %s >= %s", ErrInvalidBookingWindow,
			b.Start.Format(models.BookingTimeLayout), b.End.Format(models.BookingTimeLayout))
	}

	fields := envelope.Fields{}.
		Int(fieldAircraftID, b.AircraftID).
		Str(fieldBookingStart, b.Start.Format(models.BookingTimeLayout)).
		Str(fieldBookingEnd, b.End.Format(models.BookingTimeLayout)).
		OptionalString(fieldFreeText, b.Text).
		OptionalInt(fieldAirborneMinutes, b.ExpectedAirborne).
		OptionalInt(fieldSeats, b.SeatsReserved)

	return g.mutate(ctx, OpCreateBooking, fields, interpretCreateResult)
}

func (g *gatewayClient) CutBooking(ctx context.Context, id int64) (models.MutationResult, error) {
	fields := envelope.Fields{}.Int(fieldBookingID, id)
	return g.mutate(ctx, OpCutBooking, fields, interpretRemovalResult)
}

func (g *gatewayClient) DeleteBooking(ctx context.Context, id int64) (models.MutationResult, error) {
	fields := envelope.Fields{}.Int(fieldBookingID, id)
	return g.mutate(ctx, OpDeleteBooking, fields, interpretRemovalResult)
}

func (g *gatewayClient) GetBalance(ctx context.Context) (models.BalanceRecord, error) {
	token, ok := g.token()
	if !ok {
		return models.BalanceRecord{}, ErrAuthenticationRequired
	}
	return g.balance(ctx, token)
}

// VerifyToken performs getBalance with a token that is not yet held by the
// session. It implements [TokenVerifier].
func (g *gatewayClient) VerifyToken(ctx context.Context, token models.AppToken) (models.BalanceRecord, error) {
	if token.IsZero() {
		return models.BalanceRecord{}, ErrAuthenticationRequired
	}
	return g.balance(ctx, token)
}

func (g *gatewayClient) balance(ctx context.Context, token models.AppToken) (models.BalanceRecord, error) {
	var rec models.BalanceRecord
	if err := g.do(ctx, OpGetBalance, token, envelope.Fields{}, &rec); err != nil {
		return models.BalanceRecord{}, err
	}
	return rec, nil
}

func (g *gatewayClient) GetTransactions(ctx context.Context, q models.TransactionQuery) ([]models.TransactionRecord, error) {
	fields := envelope.Fields{}.
		Int(fieldLimit, int64(limitOrDefault(q.Limit))).
		OptionalDate(fieldFromDate, q.From).
		OptionalDate(fieldToDate, q.To)

	var list models.TransactionList
	if err := g.call(ctx, OpGetTransactions, fields, &list); err != nil {
		return nil, err
	}

	return list.Transactions, nil
}

func (g *gatewayClient) GetFlightLog(ctx context.Context, q models.FlightLogQuery) ([]models.FlightLogEntry, error) {
	return g.flightLog(ctx, OpGetFlightLog, q)
}

func (g *gatewayClient) GetFlightLogReversed(ctx context.Context, q models.FlightLogQuery) ([]models.FlightLogEntry, error) {
	return g.flightLog(ctx, OpGetFlightLogReversed, q)
}

func (g *gatewayClient) flightLog(ctx context.Context, op string, q models.FlightLogQuery) ([]models.FlightLogEntry, error) {
	fields := envelope.Fields{}.
		Int(fieldLimit, int64(limitOrDefault(q.Limit))).
		OptionalDate(fieldFromDate, q.From).
		OptionalDate(fieldToDate, q.To).
		Bool(fieldMyFlights, q.MineOnly).
		OptionalInt(fieldAircraftID, q.AircraftID)

	var log models.FlightLog
	if err := g.call(ctx, op, fields, &log); err != nil {
		return nil, err
	}

	return log.Entries, nil
}

// call runs op with the held token and decodes the result into out.
func (g *gatewayClient) call(ctx context.Context, op string, fields envelope.Fields, out any) error {
	token, ok := g.token()
	if !ok {
		return ErrAuthenticationRequired
	}
	return g.do(ctx, op, token, fields, out)
}

func (g *gatewayClient) do(ctx context.Context, op string, token models.AppToken, fields envelope.Fields, out any) error {
	result, err := g.exchange(ctx, op, token, fields)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(result, out); err != nil {
		return &envelope.ContractError{Operation: op, Reason: fmt.Sprintf("decode result: %v", err), Raw: result}
	}

	return nil
}

// exchange builds, posts and validates one request and returns the result
// object exactly as received.
func (g *gatewayClient) exchange(ctx context.Context, op string, token models.AppToken, fields envelope.Fields) ([]byte, error) {
	req := g.codec.Build(op, token, fields)

	started := time.Now()
	raw, err := g.transport.Post(ctx, req.Payload())
	if err != nil {
		g.logger.Err(err).Str("qtype", op).Msg("request failed")
		return nil, mapAdapterError(err)
	}

	result, err := g.codec.Validate(raw, op)
	if err != nil {
		g.logger.Warn().Err(err).Str("qtype", op).Msg("response rejected")
		return nil, err
	}

	g.logger.Debug().Str("qtype", op).Dur("elapsed", time.Since(started)).Msg("response accepted")
	return result, nil
}

type resultInterpreter func(result json.RawMessage) models.MutationResult

func (g *gatewayClient) mutate(ctx context.Context, op string, fields envelope.Fields, interpret resultInterpreter) (models.MutationResult, error) {
	token, ok := g.token()
	if !ok {
		return models.MutationResult{}, ErrAuthenticationRequired
	}

	result, err := g.exchange(ctx, op, token, fields)
	if err != nil {
		var apiErr *envelope.APIError
		if errors.As(err, &apiErr) {
			return models.MutationResult{Kind: models.MutationFailure, Message: apiErr.Message}, nil
		}
		return models.MutationResult{}, err
	}

	res := interpret(result)
	g.logger.Info().Str("qtype", op).Stringer("outcome", res.Kind).Msg("mutation interpreted")
	return res, nil
}

func (g *gatewayClient) token() (models.AppToken, bool) {
	if g.tokens == nil {
		return models.AppToken{}, false
	}
	t, ok := g.tokens.Token()
	if !ok || t.IsZero() {
		return models.AppToken{}, false
	}
	return t, true
}

// limitOrDefault substitutes the default for an unset limit only. Any other
// value, negative ones included, is sent as given.
func limitOrDefault(limit int) int {
	if limit == 0 {
		return models.DefaultLimit
	}
	return limit
}
