package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
)

var (
	// ErrInvalidDataProvided is matched by every validation failure,
	// including the *validators.FieldError values returned by the
	// validation wrappers.
	ErrInvalidDataProvided = validators.ErrInvalidData

	// ErrWrongPassword is returned by a password change whose current
	// password does not match. It is a validation failure.
	ErrWrongPassword error = &validators.FieldError{
		Field:   validators.FieldCurrentPassword,
		Message: "current password is incorrect",
	}

	// ErrInvalidCredentials is the single answer to a failed login, whether
	// the email is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrUnauthenticated means no user id was found in the request context.
	ErrUnauthenticated = errors.New("authentication required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// userIDFromContext returns the authenticated user id put into ctx by the
// auth middleware, or [ErrUnauthenticated].
func userIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := utils.UserIDFromContext(ctx)
	if !ok || userID <= 0 {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}
