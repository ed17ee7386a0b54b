// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the interactive prompts of the client binaries with
// bubbletea. Every prompt runs as its own short-lived inline program, so
// output printed between prompts stays in the terminal scrollback.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-myweblog/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedModel = errors.New("prompt finished with an unexpected model")

// Prompter implements the workflow prompter on top of bubbletea.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// New returns a Prompter reading keys from in and drawing to out. Nil
// values fall back to the process stdin and stdout.
func New(in io.Reader, out io.Writer, log *logger.Logger) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: in, out: out, logger: log.WithComponent("tui")}
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		p.logger.Err(err).Msg("prompt aborted")
		return nil, err
	}
	return final, nil
}

// Select shows options and returns the chosen index. ok is false when the
// user pressed esc or ctrl+c.
func (p *Prompter) Select(ctx context.Context, title string, options []string) (int, bool, error) {
	final, err := p.run(ctx, newSelectModel(title, options))
	if err != nil {
		return 0, false, err
	}

	m, ok := final.(selectModel)
	if !ok {
		return 0, false, ErrUnexpectedModel
	}
	if !m.chosen {
		return 0, false, nil
	}
	return m.idx, true, nil
}

// Input asks for one line of text prefilled with def.
func (p *Prompter) Input(ctx context.Context, title, def string) (string, bool, error) {
	final, err := p.run(ctx, newInputModel(title, def))
	if err != nil {
		return "", false, err
	}

	m, ok := final.(inputModel)
	if !ok {
		return "", false, ErrUnexpectedModel
	}
	if !m.submitted {
		return "", false, nil
	}
	return m.value(), true, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, message string) (bool, error) {
	final, err := p.run(ctx, newConfirmModel(message))
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, ErrUnexpectedModel
	}
	return m.yes, nil
}

// MultiSelect lets the user tick any number of options and returns their
// indexes in display order.
func (p *Prompter) MultiSelect(ctx context.Context, title string, options []string) ([]int, bool, error) {
	final, err := p.run(ctx, newCheckboxModel(title, options))
	if err != nil {
		return nil, false, err
	}

	m, ok := final.(checkboxModel)
	if !ok {
		return nil, false, ErrUnexpectedModel
	}
	if !m.submitted {
		return nil, false, nil
	}
	return m.selected(), true, nil
}

// Notify prints message on its own line.
func (p *Prompter) Notify(message string) {
	if _, err := fmt.Fprintln(p.out, message); err != nil {
		p.logger.Err(err).Msg("notify")
	}
}
