package patients_test

import (
	"testing"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/patients"
)

func TestSeedRoster(t *testing.T) {
	store := patients.NewMemoryStore(patients.Seed())

	roster := store.List()
	if len(roster) != 3 {
		t.Fatalf("roster length = %d, want 3", len(roster))
	}

	patient, ok := store.FindByID("P002")
	if !ok {
		t.Fatal("P002 should exist")
	}
	if patient.Profile.RiskLevel != domain.RiskAtRisk || !patient.HasSymptoms {
		t.Fatalf("unexpected P002 record: %+v", patient)
	}
}

func TestFindByIDMissing(t *testing.T) {
	store := patients.NewMemoryStore(patients.Seed())
	if _, ok := store.FindByID("P999"); ok {
		t.Fatal("unknown id must not resolve")
	}
}
