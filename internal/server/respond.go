package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/fdumary/doctor-ai/internal/errors"
	"github.com/fdumary/doctor-ai/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps the error taxonomy onto HTTP statuses: validation and
// precondition failures are the caller's to fix, everything else is ours.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeValidation:
		respondError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypePrecondition:
		respondError(w, http.StatusConflict, appErr.Message)
	case apperrors.ErrorTypeDatabase:
		if appErr.Code == "ACCOUNT_NOT_FOUND" {
			respondError(w, http.StatusNotFound, appErr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, appErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, appErr.Message)
	}
}
