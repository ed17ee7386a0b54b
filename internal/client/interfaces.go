// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-myweblog/internal/workflow"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the lifecycle contract of a runnable client program.
type Client interface {
	// Run blocks until the program is done. The session is released on
	// every exit path.
	Run(ctx context.Context) error
}

// QueryPrompter is the prompter used by the query utility. It adds a
// multi-choice prompt to the workflow prompter.
type QueryPrompter interface {
	workflow.Prompter

	MultiSelect(ctx context.Context, title string, options []string) ([]int, bool, error)
}
