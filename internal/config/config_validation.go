// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key is deliberately not required: a missing or weak key
// makes the token service fall back to a per-process random key.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.ProviderBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: provider base URL and positive timeout are required", ErrInvalidAdapterConfigs)
	}

	if len(cfg.Workers.KafkaBrokers) > 0 && (cfg.Workers.BookingEventsTopic == "" || cfg.Workers.QueueSize <= 0) {
		return fmt.Errorf("%w: kafka brokers need a topic and a positive queue size", ErrInvalidWorkerConfigs)
	}

	return nil
}
