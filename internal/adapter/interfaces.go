// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-fin-tracker HTTP API.
//
// The primary abstraction is [APIClient], which hides request building,
// session token handling and response decoding. The package ships an
// HTTP/REST implementation ([NewHTTPAPIClient]) on top of resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). The server's error message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// APIClient talks to a go-fin-tracker server on behalf of one user.
// Implementations keep the session token between calls.
type APIClient interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" before a login.
	Token() string

	// Version fetches the server's build information. No session needed.
	Version(ctx context.Context) (models.AppInfo, error)

	// Register creates an account and stores the issued session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and stores the issued session token.
	Login(ctx context.Context, c models.Credentials) (models.User, error)

	// Logout asks the server to clear the session cookie and forgets the
	// stored token. Tokens are stateless, so the token itself stays valid
	// until it expires.
	Logout(ctx context.Context) error

	Profile(ctx context.Context) (models.User, error)
	UpdateName(ctx context.Context, change models.NameChange) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	ListTransactions(ctx context.Context, query models.ListQuery) (models.TransactionPage, error)
	CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// DashboardStats fetches the reporting summary. An empty reportType
	// lets the server pick its default.
	DashboardStats(ctx context.Context, filter models.Filter, reportType models.ReportType) (models.DashboardStats, error)
}
