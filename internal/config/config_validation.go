// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Credentials.Validate() != nil {
		return ErrMissingCredentials
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.TokenURL == "" ||
		cfg.Adapter.APIVersion == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workflow.WindowDays <= 0 {
		return ErrInvalidWorkflowConfigs
	}

	return nil
}
