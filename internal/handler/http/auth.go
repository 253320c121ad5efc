package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	h.startSession(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.startSession(w, r, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, h.secureCookie)
	w.WriteHeader(http.StatusNoContent)
}

// startSession issues a token for user and hands it out both as the session
// cookie and in the Authorization header.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	utils.SetSessionCookie(w, token.SignedString, h.sessionTTL, h.secureCookie)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user, Token: token.SignedString}, status)
}
