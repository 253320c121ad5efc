package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	var change models.NameChange
	if err := decodeJSON(w, r, &change); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateName(r.Context(), change)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var change models.PasswordChange
	if err := decodeJSON(w, r, &change); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), change); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
