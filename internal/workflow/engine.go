// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/models"
)

// Menu labels.
const (
	MenuCreate   = "Create a new booking"
	MenuDelete   = "Delete one of your bookings"
	MenuReselect = "Select another airplane"
	MenuExit     = "Exit"
	MenuBack     = "Back"
)

const (
	timeOfDayLayout   = "15:04"
	defaultWindowDays = 3
	ownMarker         = " [YOURS]"
)

// Options tunes the engine. Zero values fall back to the defaults.
type Options struct {
	// WindowDays is the length of the forward listing window.
	WindowDays int

	// PlaceholderPrefix marks aircraft models that are never offered.
	PlaceholderPrefix string

	// Location is used to read and render booking times.
	Location *time.Location

	// Now is the clock.
	Now func() time.Time
}

// Engine runs the booking loop for one session.
type Engine struct {
	gateway  Gateway
	prompter Prompter
	opts     Options
	logger   *logger.Logger

	state    State
	fullName string
	aircraft    []models.Aircraft
	selected    models.Aircraft
	hasSelected bool
	bookings    []models.Booking
}

// NewEngine returns an engine in [StateSelectAircraft].
func NewEngine(gateway Gateway, prompter Prompter, opts Options, log *logger.Logger) *Engine {
	if opts.WindowDays <= 0 {
		opts.WindowDays = defaultWindowDays
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		gateway:  gateway,
		prompter: prompter,
		opts:     opts,
		logger:   log.WithComponent("workflow"),
		state:    StateSelectAircraft,
	}
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// FullName returns the profile name fetched at start.
func (e *Engine) FullName() string {
	return e.fullName
}

// Run fetches the user's profile name once and drives the loop until it
// terminates. Errors are returned only when the loop cannot continue at
// all: the profile or the first aircraft lookup failed, a prompt broke, or ctx was
// cancelled.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	profile, err := e.gateway.GetBalance(ctx)
	if err != nil {
		return OutcomeExited, fmt.Errorf("fetch profile: %w", err)
	}
	e.fullName = profile.FullName
	e.prompter.Notify(fmt.Sprintf("Welcome, %s!", e.fullName))

	for {
		if err = ctx.Err(); err != nil {
			return OutcomeExited, err
		}

		e.logger.Debug().Stringer("state", e.state).Msg("enter state")

		var next State
		switch e.state {
		case StateSelectAircraft:
			next, err = e.selectAircraft(ctx)
			if errors.Is(err, errNoAircraft) {
				e.prompter.Notify("No airplanes available.")
				e.state = StateTerminated
				return OutcomeNoAircraft, nil
			}
		case StateListing:
			next = e.listing(ctx)
		case StateMainMenu:
			next, err = e.mainMenu(ctx)
		case StateCreating:
			next, err = e.creating(ctx)
		case StateDeleting:
			next, err = e.deleting(ctx)
		case StateReselecting:
			next = StateSelectAircraft
		case StateTerminated:
			e.prompter.Notify("Goodbye!")
			return OutcomeExited, nil
		}

		if err != nil {
			e.state = StateTerminated
			return OutcomeExited, err
		}
		e.state = next
	}
}

var errNoAircraft = errors.New("no usable aircraft")

func (e *Engine) selectAircraft(ctx context.Context) (State, error) {
	all, err := e.gateway.ListAircraft(ctx)
	if err != nil {
		if !e.hasSelected {
			return StateTerminated, fmt.Errorf("list aircraft: %w", err)
		}
		// Keep the current aircraft and its snapshot.
		e.logger.Err(err).Msg("list aircraft")
		e.prompter.Notify("Could not fetch airplanes: " + err.Error())
		return StateMainMenu, nil
	}

	e.aircraft = UsableAircraft(all, e.opts.PlaceholderPrefix)
	if len(e.aircraft) == 0 {
		return StateTerminated, errNoAircraft
	}

	options := make([]string, 0, len(e.aircraft)+1)
	for _, a := range e.aircraft {
		options = append(options, a.Label())
	}
	options = append(options, MenuExit)

	idx, ok, err := e.prompter.Select(ctx, "Select an airplane:", options)
	if err != nil {
		return StateTerminated, err
	}
	if !ok || idx < 0 || idx >= len(e.aircraft) {
		return StateTerminated, nil
	}

	e.selected = e.aircraft[idx]
	e.hasSelected = true
	e.prompter.Notify("Selected: " + e.selected.Registration)

	return StateListing, nil
}

func (e *Engine) listing(ctx context.Context) State {
	now := e.opts.Now().In(e.opts.Location)
	from := startOfDay(now)
	to := from.AddDate(0, 0, e.opts.WindowDays)

	list, err := e.gateway.ListBookings(ctx, models.BookingQuery{
		AircraftID: int64(e.selected.ID),
		From:       &from,
		To:         &to,
	})
	if err != nil {
		e.logger.Err(err).Int64("ac_id", int64(e.selected.ID)).Msg("list bookings")
		e.bookings = nil
		e.prompter.Notify("Could not fetch bookings: " + err.Error())
		return StateMainMenu
	}

	e.bookings = ActiveBookings(list.Bookings, now, e.opts.Location)
	e.prompter.Notify(e.renderBookings())

	return StateMainMenu
}

func (e *Engine) renderBookings() string {
	if len(e.bookings) == 0 {
		return "No bookings for this airplane."
	}

	var sb strings.Builder
	sb.WriteString("Current bookings:")
	for _, b := range e.bookings {
		sb.WriteString("\n   ")
		sb.WriteString(e.bookingLabel(b))
	}
	return sb.String()
}

func (e *Engine) bookingLabel(b models.Booking) string {
	label := b.Label(e.opts.Location)
	if b.OwnedBy(e.fullName) {
		label += ownMarker
	}
	return label
}

func (e *Engine) mainMenu(ctx context.Context) (State, error) {
	options := []string{MenuCreate}
	targets := []State{StateCreating}
	if len(OwnBookings(e.bookings, e.fullName)) > 0 {
		options = append(options, MenuDelete)
		targets = append(targets, StateDeleting)
	}
	options = append(options, MenuReselect, MenuExit)
	targets = append(targets, StateReselecting, StateTerminated)

	idx, ok, err := e.prompter.Select(ctx, "What would you like to do?", options)
	if err != nil {
		return StateTerminated, err
	}
	if !ok || idx < 0 || idx >= len(targets) {
		return StateTerminated, nil
	}

	return targets[idx], nil
}

func (e *Engine) creating(ctx context.Context) (State, error) {
	booking, ok, err := e.promptNewBooking(ctx)
	if err != nil || !ok {
		return StateMainMenu, err
	}

	minutes := int64(booking.Duration() / time.Minute)
	confirmed, err := e.prompter.Confirm(ctx,
		fmt.Sprintf("You will now book %s for %d minutes. Please confirm.", e.selected.Registration, minutes))
	if err != nil {
		return StateTerminated, err
	}
	if !confirmed {
		e.prompter.Notify("Booking creation cancelled.")
		return StateMainMenu, nil
	}

	res, err := e.gateway.CreateBooking(ctx, booking)
	if err != nil {
		e.logger.Err(err).Msg("create booking")
		e.prompter.Notify("Booking creation failed: " + err.Error())
		return StateListing, nil
	}

	switch res.Kind {
	case models.MutationSuccess:
		e.prompter.Notify(fmt.Sprintf("Booking created successfully! %s: %s", res.Title, strings.TrimSpace(res.Message)))
	case models.MutationFailure:
		e.prompter.Notify("Booking creation failed: " + res.Message)
	default:
		e.prompter.Notify("Unexpected response to booking creation: " + string(res.Raw))
	}

	return StateListing, nil
}

// promptNewBooking collects date, start time and duration. Invalid input is
// reported and yields ok=false.
func (e *Engine) promptNewBooking(ctx context.Context) (models.NewBooking, bool, error) {
	today := e.opts.Now().In(e.opts.Location).Format(models.DateLayout)

	dateStr, ok, err := e.prompter.Input(ctx, "Booking date (YYYY-MM-DD):", today)
	if err != nil || !ok {
		return models.NewBooking{}, false, err
	}
	timeStr, ok, err := e.prompter.Input(ctx, "Start time (HH:MM, 24h):", "")
	if err != nil || !ok {
		return models.NewBooking{}, false, err
	}
	lengthStr, ok, err := e.prompter.Input(ctx, "Length in minutes:", "")
	if err != nil || !ok {
		return models.NewBooking{}, false, err
	}

	start, err := time.ParseInLocation(models.DateLayout+" "+timeOfDayLayout,
		strings.TrimSpace(dateStr)+" "+strings.TrimSpace(timeStr), e.opts.Location)
	if err != nil {
		e.prompter.Notify("Invalid input: " + err.Error())
		return models.NewBooking{}, false, nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(lengthStr))
	if err != nil || length <= 0 {
		e.prompter.Notify(fmt.Sprintf("Invalid input: length %q must be a positive number of minutes", lengthStr))
		return models.NewBooking{}, false, nil
	}

	return models.NewBooking{
		AircraftID: int64(e.selected.ID),
		Start:      start,
		End:        start.Add(time.Duration(length) * time.Minute),
		Text:       e.fullName,
	}, true, nil
}

func (e *Engine) deleting(ctx context.Context) (State, error) {
	own := OwnBookings(e.bookings, e.fullName)
	if len(own) == 0 {
		e.prompter.Notify("You have no bookings to delete.")
		return StateMainMenu, nil
	}

	options := make([]string, 0, len(own)+1)
	for _, b := range own {
		options = append(options, e.bookingLabel(b))
	}
	options = append(options, MenuBack)

	idx, ok, err := e.prompter.Select(ctx, "Select a booking to delete:", options)
	if err != nil {
		return StateTerminated, err
	}
	if !ok {
		return StateTerminated, nil
	}
	if idx < 0 || idx >= len(own) {
		return StateMainMenu, nil
	}

	target := own[idx]
	res, err := e.gateway.DeleteBooking(ctx, int64(target.ID))
	if err != nil {
		e.logger.Err(err).Int64("booking_id", int64(target.ID)).Msg("delete booking")
		e.prompter.Notify("Booking deletion failed: " + err.Error())
		return StateListing, nil
	}

	switch res.Kind {
	case models.MutationSuccess:
		e.prompter.Notify(fmt.Sprintf("Booking deleted successfully! Booking ID: %d", target.ID))
	case models.MutationFailure:
		e.prompter.Notify("Booking deletion failed: " + res.Message)
	default:
		e.prompter.Notify("Unexpected response to booking deletion: " + string(res.Raw))
	}

	return StateListing, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
