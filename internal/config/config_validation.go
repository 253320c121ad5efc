// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// MinTokenSignKeyLength is the shortest signing key accepted in production.
const MinTokenSignKeyLength = 32

// placeholderSignKey is the value shipped in example configs.
const placeholderSignKey = "change-me"

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// In production the signing key must be set, must not be the placeholder
// value and must be at least [MinTokenSignKeyLength] bytes long. Outside
// production an empty key is replaced with a random per-process key and
// GeneratedSignKey is set so that the caller can warn about it.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31 {
		return fmt.Errorf("%w: password hash cost must be between 4 and 31", ErrInvalidAppConfigs)
	}

	key := strings.TrimSpace(cfg.App.TokenSignKey)
	if cfg.App.IsProduction() {
		switch {
		case key == "":
			return fmt.Errorf("%w: token sign key is required", ErrInvalidSignKey)
		case key == placeholderSignKey:
			return fmt.Errorf("%w: token sign key must not be the placeholder value", ErrInvalidSignKey)
		case len(key) < MinTokenSignKeyLength:
			return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidSignKey, MinTokenSignKeyLength)
		}
		return nil
	}

	if key == "" {
		generated, err := randomSignKey()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignKey, err)
		}
		cfg.App.TokenSignKey = generated
		cfg.GeneratedSignKey = true
	}

	return nil
}

func randomSignKey() (string, error) {
	buf := make([]byte, MinTokenSignKeyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating sign key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
