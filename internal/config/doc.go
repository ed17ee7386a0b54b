// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the MyWebLog client binaries.
//
// Configuration is assembled from multiple sources. The builder merges them
// with mergo without overriding, so the first source that sets a field
// wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
