package config

import "errors"

// ErrInvalidEnv wraps a variable that cannot be converted to its field type,
// e.g. APP_TOKEN_DURATION=week.
var ErrInvalidEnv = errors.New("error getting env configs")

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown environment name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSignKey indicates a session signing key that is unsafe to
	// run production with.
	ErrInvalidSignKey = errors.New("invalid token sign key")
)
