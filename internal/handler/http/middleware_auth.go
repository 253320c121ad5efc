package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication on the
// protected API group.
//
// It takes the token from the session cookie or an "Authorization: Bearer"
// header, validates it via [service.AuthService.ParseToken], and on success
// stores the authenticated user's ID in the request context with
// [utils.WithUserID] before delegating to the next handler.
//
// A missing or rejected token is answered with 401 {"error": ...}. The gate
// has usually rejected such requests already; auth does not rely on it.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := utils.SessionTokenFromRequest(r)
		if !ok {
			log.Debug().Err(ErrNoSessionToken).Send()
			writeServiceError(w, r, ErrNoSessionToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
