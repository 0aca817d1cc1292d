package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/flow"
	"github.com/fdumary/doctor-ai/internal/logger"
)

// SessionHandler drives the screen-flow controller over HTTP: one event in,
// one transition applied, the resolved view out.
type SessionHandler struct {
	sessions flow.Store
	checkIns domain.CheckInService
}

func NewSessionHandler(sessions flow.Store, checkIns domain.CheckInService) *SessionHandler {
	return &SessionHandler{sessions: sessions, checkIns: checkIns}
}

// RegisterRoutes mounts the session routes.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/session/{userKey}", h.handleGetSession)
	r.Post("/session/{userKey}/events", h.handleEvent)
}

// viewResponse is what the rendering layer consumes. Renders false means "no
// screen": a precondition for the current screen is unmet and the client must
// issue a new valid event.
type viewResponse struct {
	Screen          string        `json:"screen,omitempty"`
	CompanionScreen string        `json:"companionScreen,omitempty"`
	Renders         bool          `json:"renders"`
	Layout          string        `json:"layout"`
	Session         *flow.Session `json:"session"`
}

func (h *SessionHandler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")
	session := h.sessions.Get(userKey)
	respondJSON(w, http.StatusOK, buildViewResponse(session))
}

func (h *SessionHandler) handleEvent(w http.ResponseWriter, r *http.Request) {
	userKey := chi.URLParam(r, "userKey")

	var event flow.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.Kind == "" {
		respondError(w, http.StatusBadRequest, "Event kind is required")
		return
	}

	session := h.sessions.Get(userKey)
	if err := flow.Apply(session, event); err != nil {
		respondAppError(w, err)
		return
	}

	// Completed daily check-ins also go to the durable history consumed by
	// the dashboard and history routes, keyed the same way so one userKey
	// reads back what its events wrote.
	if event.Kind == flow.EventDailyCompleted && session.Account != nil {
		if err := h.checkIns.AddRecord(r.Context(), userKey, *event.Daily); err != nil {
			logger.Errorf("failed to persist check-in for %s: %v", userKey, err)
		}
	}

	if err := h.sessions.Save(userKey, session); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondJSON(w, http.StatusOK, buildViewResponse(session))
}

func buildViewResponse(session *flow.Session) viewResponse {
	resp := viewResponse{
		Layout:  string(session.Layout),
		Session: session,
	}
	if screen, ok := session.View(); ok {
		resp.Screen = string(screen)
		resp.Renders = true
	}
	if companion, ok := session.CompanionView(); ok {
		resp.CompanionScreen = string(companion)
	}
	return resp
}
