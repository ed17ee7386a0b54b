// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires configuration, adapters, the session and the
// terminal prompter into the two client programs: the interactive booking
// loop ([App]) and the read-only query utility ([Query]).
package client
