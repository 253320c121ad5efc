// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the auth middleware and the request decoders.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the auth middleware when the request
	// carries neither a session cookie nor an "Authorization: Bearer" header.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidJSON is answered when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidTransactionID is answered when the {id} path segment is not
	// a positive integer.
	ErrInvalidTransactionID = errors.New("invalid transaction id")

	// ErrInvalidQueryParameter is answered when a list or statistics query
	// parameter cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
