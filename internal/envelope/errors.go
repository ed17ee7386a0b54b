// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation marks a response that does not honour the
	// qType/APIVersion/result contract.
	ErrContractViolation = errors.New("response contract violation")

	// ErrUpstream marks a well-formed response carrying the API's own error
	// indicator instead of a result.
	ErrUpstream = errors.New("upstream api error")
)

// ContractError describes why a response was rejected. Raw holds the
// payload exactly as received for diagnostics.
type ContractError struct {
	Operation string
	Reason    string
	Raw       []byte
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrContractViolation, e.Operation, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

// APIError is returned when the upstream answered with an error indicator.
type APIError struct {
	Operation string
	Message   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUpstream, e.Operation, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrUpstream
}
