package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/flow"
	"github.com/fdumary/doctor-ai/internal/insights"
	"github.com/fdumary/doctor-ai/internal/utils"
)

// CheckInHandler serves the durable check-in history and the dashboard stats
// derived from it.
type CheckInHandler struct {
	checkIns domain.CheckInService
	sessions flow.Store
}

func NewCheckInHandler(checkIns domain.CheckInService, sessions flow.Store) *CheckInHandler {
	return &CheckInHandler{checkIns: checkIns, sessions: sessions}
}

// RegisterRoutes mounts the check-in routes.
func (h *CheckInHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/{userKey}/checkins", h.handleAdd)
	r.Get("/users/{userKey}/checkins", h.handleHistory)
	r.Get("/users/{userKey}/dashboard", h.handleDashboard)
}

func (h *CheckInHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	var data domain.DailyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.checkIns.AddRecord(r.Context(), userKey, data); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *CheckInHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	history, err := h.checkIns.GetUserHistory(r.Context(), userKey)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

// handleDashboard computes the stat block from the durable history and the
// session's risk level.
func (h *CheckInHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	history, err := h.checkIns.GetUserHistory(r.Context(), userKey)
	if err != nil {
		respondAppError(w, err)
		return
	}

	level := domain.RiskStable
	if session := h.sessions.Get(userKey); session.Profile != nil {
		level = session.Profile.RiskLevel
	}

	stats := insights.Dashboard(history, level, utils.TodayLabel())
	respondJSON(w, http.StatusOK, stats)
}
