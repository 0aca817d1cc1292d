package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/insights"
)

// PatientHandler serves the doctor dashboard and patient detail views.
type PatientHandler struct {
	patients domain.PatientStore
}

func NewPatientHandler(patients domain.PatientStore) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// RegisterRoutes mounts the patient routes.
func (h *PatientHandler) RegisterRoutes(r chi.Router) {
	r.Get("/patients", h.handleList)
	r.Get("/patients/{patientID}", h.handleDetail)
}

func (h *PatientHandler) handleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"patients": h.patients.List(),
	})
}

// handleDetail returns the record plus the derived detail scores.
func (h *PatientHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	patient, ok := h.patients.FindByID(patientID)
	if !ok {
		respondError(w, http.StatusNotFound, "Patient not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"patient":           patient,
		"energyScore":       insights.EnergyScore(patient.DailyHistory),
		"stressScore":       insights.StressScore(patient.DailyHistory),
		"compliancePercent": insights.CompliancePercent(len(patient.DailyHistory)),
	})
}
