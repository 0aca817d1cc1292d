package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/logger"
)

// AccountHandler exposes the signup shim and the account management routes
// the settings screen calls.
type AccountHandler struct {
	accounts domain.AccountService
}

func NewAccountHandler(accounts domain.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// RegisterRoutes mounts the account routes.
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/signin", h.handleSignIn)
	r.Post("/signout", h.handleSignOut)
	r.Put("/account/email", h.handleUpdateEmail)
	r.Put("/account/password", h.handleUpdatePassword)
	r.Post("/account/mfa", h.handleEnrollSecondFactor)
}

// handleSignup creates a pre-confirmed account so the client can sign in with
// the same credentials right after.
func (h *AccountHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var input domain.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Email == "" || input.Password == "" || input.Name == "" || input.Role == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	account, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		logger.Errorf("signup failed: %v", err)
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"userId":  account.UserID,
	})
}

func (h *AccountHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accounts.SignIn(r.Context(), input.Email, input.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"user": account})
}

func (h *AccountHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accounts.SignOut(r.Context(), input.UserID); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AccountHandler) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID   string `json:"userId"`
		NewEmail string `json:"newEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accounts.UpdateEmail(r.Context(), input.UserID, input.NewEmail); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AccountHandler) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID      string `json:"userId"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accounts.UpdatePassword(r.Context(), input.UserID, input.NewPassword); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AccountHandler) handleEnrollSecondFactor(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	qrCode, err := h.accounts.EnrollSecondFactor(r.Context(), input.UserID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"qrCode": qrCode})
}
