package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fdumary/doctor-ai/internal/flow"
	"github.com/fdumary/doctor-ai/internal/patients"
)

func setupRouter() (http.Handler, *fakeCheckInService, *flow.Manager) {
	checkIns := newFakeCheckInService()
	sessions := flow.NewManager()
	router := NewRouter(Dependencies{
		Accounts:    newFakeAccountService(),
		CheckIns:    checkIns,
		Preferences: newFakePreferenceService(),
		Patients:    patients.NewMemoryStore(patients.Seed()),
		Sessions:    sessions,
	})
	return router, checkIns, sessions
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSignupCreatesAccount(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/signup", map[string]string{
		"email":    "new@example.com",
		"password": "longenough",
		"name":     "New Patient",
		"role":     "patient",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		Success bool   `json:"success"`
		UserID  string `json:"userId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success || result.UserID == "" {
		t.Fatalf("unexpected response: %+v", result)
	}
}

func TestSignupMissingFields(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/signup", map[string]string{
		"email": "new@example.com",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSignupShortPassword(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/signup", map[string]string{
		"email":    "new@example.com",
		"password": "short",
		"name":     "New Patient",
		"role":     "patient",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSignupThenSignInSameCredentials(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/signup", map[string]string{
		"email":    "new@example.com",
		"password": "longenough",
		"name":     "New Patient",
		"role":     "patient",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("signup failed: %d", resp.Code)
	}

	resp = postJSON(t, router, "/api/signin", map[string]string{
		"email":    "new@example.com",
		"password": "longenough",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on sign-in, got %d", resp.Code)
	}
}

func TestSignInUnknownAccount(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/signin", map[string]string{
		"email":    "missing@example.com",
		"password": "whatever1",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestEnrollSecondFactorReturnsQRPayload(t *testing.T) {
	router, _, _ := setupRouter()

	resp := postJSON(t, router, "/api/account/mfa", map[string]string{"userId": "user-1"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result struct {
		QRCode string `json:"qrCode"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.QRCode == "" {
		t.Fatal("expected a qrCode payload")
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
