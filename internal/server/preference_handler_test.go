package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fdumary/doctor-ai/internal/domain"
)

func TestPreferencesDefaultWhenUnset(t *testing.T) {
	router, _, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/preferences", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(resp.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if prefs.FontSize != "medium" || prefs.ZoomLevel != 100 {
		t.Fatalf("unexpected defaults: %+v", prefs)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	router, _, _ := setupRouter()

	payload, _ := json.Marshal(domain.Preferences{FontSize: "large", ZoomLevel: 125})
	req := httptest.NewRequest(http.MethodPut, "/api/users/u1/preferences", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/u1/preferences", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var prefs domain.Preferences
	if err := json.Unmarshal(resp.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if prefs.FontSize != "large" || prefs.ZoomLevel != 125 {
		t.Fatalf("unexpected stored prefs: %+v", prefs)
	}
}
