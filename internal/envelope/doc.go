// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope builds the authenticated request payload every MyWebLog
// operation is sent with and validates the response contract.
//
// The codec is pure: it performs no I/O and holds no retry logic. Requests
// are built fresh per call via [Codec.Build]; responses are checked by
// [Validate], which returns the nested result object unmodified or a
// [*ContractError] carrying the raw payload.
package envelope
