package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/flow"
)

// Dependencies holds all service dependencies for the HTTP layer.
type Dependencies struct {
	Accounts    domain.AccountService
	CheckIns    domain.CheckInService
	Preferences domain.PreferenceService
	Patients    domain.PatientStore
	Sessions    flow.Store
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	accountHandler := NewAccountHandler(deps.Accounts)
	sessionHandler := NewSessionHandler(deps.Sessions, deps.CheckIns)
	patientHandler := NewPatientHandler(deps.Patients)
	checkInHandler := NewCheckInHandler(deps.CheckIns, deps.Sessions)
	preferenceHandler := NewPreferenceHandler(deps.Preferences)

	r.Route("/api", func(api chi.Router) {
		accountHandler.RegisterRoutes(api)
		sessionHandler.RegisterRoutes(api)
		patientHandler.RegisterRoutes(api)
		checkInHandler.RegisterRoutes(api)
		preferenceHandler.RegisterRoutes(api)
	})

	return r
}
