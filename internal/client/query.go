// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/service"
	"github.com/MKhiriev/go-myweblog/internal/workflow"
	"github.com/MKhiriev/go-myweblog/models"
)

// Operation is one read-only call offered by the query utility.
type Operation struct {
	// Label is shown in the interactive picker.
	Label string
	// Name is the upstream operation name.
	Name string
	// Flag and Short are the long and one-letter command-line flags.
	Flag  string
	Short string
}

// Operations lists the query utility operations in display order.
var Operations = []Operation{
	{Label: "GetObjects", Name: service.OpGetObjects, Flag: "objects", Short: "o"},
	{Label: "GetBookings", Name: service.OpGetBookings, Flag: "bookings", Short: "b"},
	{Label: "GetBalance", Name: service.OpGetBalance, Flag: "balance", Short: "c"},
	{Label: "GetTransactions", Name: service.OpGetTransactions, Flag: "transactions", Short: "t"},
	{Label: "GetFlightLog", Name: service.OpGetFlightLog, Flag: "flightlog", Short: "f"},
	{Label: "GetFlightLogReversed", Name: service.OpGetFlightLogReversed, Flag: "flightlog-reversed", Short: "r"},
}

// ErrUnknownOperation is returned for an operation name missing from
// [Operations].
var ErrUnknownOperation = errors.New("unknown operation")

// QueryOptions tunes the query utility.
type QueryOptions struct {
	Limit             int
	WindowDays        int
	PlaceholderPrefix string
	Now               func() time.Time
}

// Query runs read-only operations and prints each result as indented JSON.
type Query struct {
	gateway  service.GatewayClient
	prompter QueryPrompter
	out      io.Writer
	opts     QueryOptions
	logger   *logger.Logger
}

// NewQuery returns a query runner printing to out.
func NewQuery(gateway service.GatewayClient, prompter QueryPrompter, out io.Writer, opts QueryOptions, log *logger.Logger) *Query {
	if opts.Limit == 0 {
		opts.Limit = models.DefaultLimit
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = 3
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Query{gateway: gateway, prompter: prompter, out: out, opts: opts, logger: log.WithComponent("query")}
}

// ChooseOperations asks the user which operations to run. An empty result
// means nothing was chosen.
func (q *Query) ChooseOperations(ctx context.Context) ([]string, error) {
	labels := make([]string, len(Operations))
	for i, op := range Operations {
		labels[i] = op.Label
	}

	picked, ok, err := q.prompter.MultiSelect(ctx, "Select operations to run:", labels)
	if err != nil || !ok {
		return nil, err
	}

	names := make([]string, 0, len(picked))
	for _, i := range picked {
		names = append(names, Operations[i].Name)
	}
	return names, nil
}

// Run executes names in order. The first failure stops the run.
func (q *Query) Run(ctx context.Context, names []string) error {
	for _, name := range names {
		result, err := q.execute(ctx, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if result == nil {
			continue
		}
		if err = q.print(name, result); err != nil {
			return err
		}
	}
	return nil
}

func (q *Query) execute(ctx context.Context, name string) (any, error) {
	q.logger.Debug().Str("qtype", name).Msg("run query")

	switch name {
	case service.OpGetObjects:
		return q.gateway.ListAircraft(ctx)
	case service.OpGetBookings:
		return q.bookings(ctx)
	case service.OpGetBalance:
		return q.gateway.GetBalance(ctx)
	case service.OpGetTransactions:
		return q.gateway.GetTransactions(ctx, models.TransactionQuery{Limit: q.opts.Limit})
	case service.OpGetFlightLog:
		return q.gateway.GetFlightLog(ctx, models.FlightLogQuery{Limit: q.opts.Limit})
	case service.OpGetFlightLogReversed:
		return q.gateway.GetFlightLogReversed(ctx, models.FlightLogQuery{Limit: q.opts.Limit})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// bookings lets the user pick a usable aircraft and lists its bookings over
// the forward window. A declined pick yields a nil result.
func (q *Query) bookings(ctx context.Context) (any, error) {
	all, err := q.gateway.ListAircraft(ctx)
	if err != nil {
		return nil, err
	}

	usable := workflow.UsableAircraft(all, q.opts.PlaceholderPrefix)
	if len(usable) == 0 {
		q.prompter.Notify("No airplanes available.")
		return nil, nil
	}

	labels := make([]string, len(usable))
	for i, a := range usable {
		labels[i] = a.Label()
	}
	idx, ok, err := q.prompter.Select(ctx, "Select an airplane:", labels)
	if err != nil || !ok {
		return nil, err
	}

	now := q.opts.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, q.opts.WindowDays)

	return q.gateway.ListBookings(ctx, models.BookingQuery{
		AircraftID: int64(usable[idx].ID),
		From:       &from,
		To:         &to,
	})
}

func (q *Query) print(name string, result any) error {
	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	_, err = fmt.Fprintf(q.out, "%s:\n%s\n", name, body)
	return err
}
