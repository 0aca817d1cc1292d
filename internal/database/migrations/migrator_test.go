package migrations

import (
	"testing"

	"gorm.io/gorm"
)

func TestInitialSchemaRegistered(t *testing.T) {
	m, ok := migrations["001_initial_schema"]
	if !ok {
		t.Fatal("initial schema migration not registered")
	}
	if m.Up == nil || m.Down == nil {
		t.Fatal("initial schema migration must carry up and down steps")
	}
}

func TestRegisterAddsToRegistry(t *testing.T) {
	id := "999_test_only"
	Register(id, func(db *gorm.DB) error { return nil }, nil)
	defer delete(migrations, id)

	if _, ok := migrations[id]; !ok {
		t.Fatalf("migration %s not found after Register", id)
	}
}
