// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
)

// mapAdapterError lifts any adapter failure into ErrTransport while keeping
// the adapter sentinel (and context errors) reachable through errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
