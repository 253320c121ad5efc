// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// Core concepts:
//   - Validator: generic interface to validate a payload, optionally scoped
//     to a subset of its fields.
//   - FieldError: the first offending field together with a message that is
//     safe to return to the caller. It wraps ErrInvalidData.
//
// Validation is independent of transport and storage, so the same rules
// apply whichever way a payload arrives.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
