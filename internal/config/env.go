// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names come from the
// `env` tags joined with each group's `envPrefix` (APP_, STORAGE_DB_,
// SERVER_, ADAPTER_, WORKERS_ ...). Unset variables leave fields at their
// zero value so the merge step keeps the defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
