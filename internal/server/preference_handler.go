package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fdumary/doctor-ai/internal/domain"
)

// PreferenceHandler serves the accessibility settings.
type PreferenceHandler struct {
	preferences domain.PreferenceService
}

func NewPreferenceHandler(preferences domain.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// RegisterRoutes mounts the preference routes.
func (h *PreferenceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users/{userKey}/preferences", h.handleGet)
	r.Put("/users/{userKey}/preferences", h.handleSave)
}

func (h *PreferenceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	prefs, err := h.preferences.GetPreferences(r.Context(), userKey)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

func (h *PreferenceHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.preferences.SavePreferences(r.Context(), userKey, prefs); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
