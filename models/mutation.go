// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMutationRejected is returned by [MutationResult.Err] when the
	// upstream refused the mutation.
	ErrMutationRejected = errors.New("mutation rejected")

	// ErrAmbiguousMutationResult is returned by [MutationResult.Err] when the
	// response matched neither the success nor the failure shape.
	ErrAmbiguousMutationResult = errors.New("ambiguous mutation result")
)

// MutationKind tags the outcome of a create/cut/delete call.
type MutationKind int

const (
	// MutationAmbiguous means the response matched neither the success nor
	// the failure shape. It is never treated as success.
	MutationAmbiguous MutationKind = iota
	MutationSuccess
	MutationFailure
)

func (k MutationKind) String() string {
	switch k {
	case MutationSuccess:
		return "success"
	case MutationFailure:
		return "failure"
	default:
		return "ambiguous"
	}
}

// MutationResult is the interpreted result of a mutating call. Raw always
// holds the unmodified result object so ambiguous outcomes can be shown
// verbatim.
type MutationResult struct {
	Kind    MutationKind
	Title   string
	Message string
	Raw     json.RawMessage
}

// Succeeded reports whether Kind is [MutationSuccess].
func (r MutationResult) Succeeded() bool {
	return r.Kind == MutationSuccess
}

// Err converts the outcome into an error: nil on success, a wrapped
// [ErrMutationRejected] on failure and a wrapped [ErrAmbiguousMutationResult]
// carrying the raw result otherwise.
func (r MutationResult) Err() error {
	switch r.Kind {
	case MutationSuccess:
		return nil
	case MutationFailure:
		return fmt.Errorf("%w: %s", ErrMutationRejected, r.Message)
	default:
		return fmt.Errorf("%w: %s", ErrAmbiguousMutationResult, string(r.Raw))
	}
}
