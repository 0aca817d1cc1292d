// Package patients holds the read-only patient roster the doctor views
// render. Records are fixed seed data; no in-system event creates or updates
// one.
package patients

import "github.com/fdumary/doctor-ai/internal/domain"

// MemoryStore implements domain.PatientStore with an in-memory slice.
type MemoryStore struct {
	items []domain.PatientRecord
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied records.
func NewMemoryStore(items []domain.PatientRecord) *MemoryStore {
	return &MemoryStore{items: append([]domain.PatientRecord(nil), items...)}
}

// List returns the full roster.
func (s *MemoryStore) List() []domain.PatientRecord {
	return append([]domain.PatientRecord(nil), s.items...)
}

// FindByID looks up a patient by identifier.
func (s *MemoryStore) FindByID(id string) (domain.PatientRecord, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.PatientRecord{}, false
}
