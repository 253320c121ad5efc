// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads CONFIG and the APP_*, SERVER_* and STORAGE_DB_* variables
// from environ, or from the process environment when environ is nil. Unset
// variables stay zero, so flags, the JSON file and the defaults still apply.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnv, err)
	}
	return &cfg, nil
}
