package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"field error", &validators.FieldError{Field: validators.FieldEmail, Message: "invalid email"}, http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusBadRequest},
		{"wrapped json", fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("unexpected EOF")), http.StatusBadRequest},
		{"duplicate email", fmt.Errorf("create: %w", store.ErrEmailAlreadyExists), http.StatusConflict},
		{"duplicate custom id", store.ErrCustomIDAlreadyExists, http.StatusConflict},
		{"not found", store.ErrTransactionNotFound, http.StatusNotFound},
		{"no user", store.ErrNoUserWasFound, http.StatusNotFound},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no token", ErrNoSessionToken, http.StatusUnauthorized},
		{"sql", errors.Join(store.ErrExecutingQuery, errUnexpected), http.StatusInternalServerError},
		{"unknown", errUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "field error keeps its message",
			err:  fmt.Errorf("validate: %w", &validators.FieldError{Field: validators.FieldAmount, Message: "amount must be greater than 0"}),
			want: "amount must be greater than 0",
		},
		{
			name: "sentinel text without wrapping context",
			err:  fmt.Errorf("error updating transaction with id 3 for user 9: %w", store.ErrTransactionNotFound),
			want: store.ErrTransactionNotFound.Error(),
		},
		{
			name: "query parameter",
			err:  fmt.Errorf("%w: page", ErrInvalidQueryParameter),
			want: ErrInvalidQueryParameter.Error(),
		},
		{
			name: "internal",
			err:  fmt.Errorf("%w: %w", store.ErrScanningRows, errUnexpected),
			want: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicMessage(tt.err, statusFromError(tt.err)))
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)

	writeServiceError(rec, req, errors.Join(store.ErrExecutingQuery, errUnexpected))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
