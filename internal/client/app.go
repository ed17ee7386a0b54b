// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-myweblog/internal/adapter"
	"github.com/MKhiriev/go-myweblog/internal/config"
	"github.com/MKhiriev/go-myweblog/internal/logger"
	"github.com/MKhiriev/go-myweblog/internal/service"
	"github.com/MKhiriev/go-myweblog/internal/workflow"
)

// App runs the interactive booking loop over one session.
type App struct {
	session *service.Session
	engine  *workflow.Engine
	logger  *logger.Logger
}

// NewSessionFromConfig builds the resty adapters described by cfg and opens
// a session on them. The caller owns the session and must Close it.
func NewSessionFromConfig(cfg *config.ClientConfig, log *logger.Logger) (*service.Session, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrConfiguration, err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log.WithComponent("transport"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrConfiguration, err)
	}

	issuers, err := adapter.NewTokenIssuerFactory(cfg.Adapter, log.WithComponent("token_issuer"))
	if err != nil {
		transport.Close()
		return nil, fmt.Errorf("%w: %w", service.ErrConfiguration, err)
	}

	session, err := service.NewSession(cfg.Credentials, cfg.Adapter, transport, issuers, log)
	if err != nil {
		transport.Close()
		return nil, err
	}

	return session, nil
}

// NewApp returns the booking program for session, prompting through
// prompter.
func NewApp(session *service.Session, prompter workflow.Prompter, workflowCfg config.ClientWorkflow, log *logger.Logger) *App {
	engine := workflow.NewEngine(session.Gateway, prompter, workflow.Options{
		WindowDays:        workflowCfg.WindowDays,
		PlaceholderPrefix: workflowCfg.PlaceholderPrefix,
	}, session.Logger())

	return &App{
		session: session,
		engine:  engine,
		logger:  log.WithComponent("booking"),
	}
}

// Run acquires the app token, drives the booking loop and closes the
// session.
func (a *App) Run(ctx context.Context) error {
	defer a.session.Close()

	ctx = a.session.Bind(ctx)

	if err := a.session.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	outcome, err := a.engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("booking loop: %w", err)
	}

	a.logger.Info().Stringer("outcome", outcome).Msg("booking loop finished")
	return nil
}
