// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// gate runs [Classify] on every request before routing.
//
// RedirectToLogin is answered with 401 {"error": ...} on /api paths and with
// 303 to [LoginPath] elsewhere. RedirectToHome is always 303 to [HomePath].
func (h *Handler) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := Classify(r.URL.Path, h.hasValidSession(r))

		switch decision {
		case RedirectToLogin:
			logger.FromRequest(r).Debug().Str("path", r.URL.Path).Stringer("decision", decision).Msg("gate rejected request")
			if isAPIPath(r.URL.Path) {
				utils.WriteError(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		case RedirectToHome:
			http.Redirect(w, r, HomePath, http.StatusSeeOther)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (h *Handler) hasValidSession(r *http.Request) bool {
	tokenString, ok := utils.SessionTokenFromRequest(r)
	if !ok {
		return false
	}
	_, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	return err == nil
}
