package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
)

const internalErrorMessage = "internal server error"

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidTransactionID:        http.StatusBadRequest,
	ErrInvalidQueryParameter:       http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrCustomIDAlreadyExists: http.StatusConflict,

	store.ErrTransactionNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound:      http.StatusNotFound,

	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	ErrNoSessionToken:                  http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text safe to show the caller. A field error
// carries its own message; internal failures never leak their cause.
func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return internalErrorMessage
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}

	for target, targetStatus := range errorStatusMap {
		if targetStatus == status && errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// writeServiceError answers err as {"error": message} with the status from
// errorStatusMap. Internal errors are logged with the request's trace id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, publicMessage(err, status), status)
}
