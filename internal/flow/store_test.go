package flow_test

import (
	"testing"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/flow"
)

func TestManagerReturnsFreshSessionForUnknownUser(t *testing.T) {
	m := flow.NewManager()
	s := m.Get("nobody")
	if s.Screen != flow.ScreenRoleSelect || s.Role != "" {
		t.Fatalf("unexpected initial session: %+v", s)
	}
}

func TestManagerSaveAndGet(t *testing.T) {
	m := flow.NewManager()

	s := flow.NewSession()
	mustApply(t, s, flow.Event{Kind: flow.EventSelectRole, Role: domain.RolePatient})
	if err := m.Save("user-1", s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := m.Get("user-1")
	if got.Screen != flow.ScreenCreateAccount || got.Role != domain.RolePatient {
		t.Fatalf("unexpected stored session: %+v", got)
	}

	// Mutating the returned session must not affect the stored copy.
	got.Screen = flow.ScreenDashboard
	if m.Get("user-1").Screen != flow.ScreenCreateAccount {
		t.Fatal("Get must return a copy")
	}
}

func TestManagerCopiesDoNotShareHistory(t *testing.T) {
	m := flow.NewManager()

	s := signedInPatient(t)
	// Spare capacity so that a later append reuses the backing array.
	s.DailyHistory = make([]domain.DailyData, 1, 8)
	s.DailyHistory[0] = domain.DailyData{BodyFeel: "normal", Date: "Jan 30 2026"}
	if err := m.Save("user-1", s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	first := m.Get("user-1")
	second := m.Get("user-1")

	mustApply(t, first, flow.Event{Kind: flow.EventStartDaily})
	mustApply(t, first, flow.Event{Kind: flow.EventDailyCompleted, Daily: &domain.DailyData{BodyFeel: "tired", Date: "Feb 1 2026"}})
	mustApply(t, second, flow.Event{Kind: flow.EventStartDaily})
	mustApply(t, second, flow.Event{Kind: flow.EventDailyCompleted, Daily: &domain.DailyData{BodyFeel: "energetic", Date: "Feb 2 2026"}})

	if got := first.DailyHistory[1].Date; got != "Feb 1 2026" {
		t.Fatalf("first copy's entry rewritten to %q", got)
	}
	if got := m.Get("user-1").DailyHistory[0].Date; got != "Jan 30 2026" {
		t.Fatalf("stored history changed: %q", got)
	}

	// Pointer fields must be isolated as well.
	first.Account.Email = "other@example.com"
	if m.Get("user-1").Account.Email == "other@example.com" {
		t.Fatal("stored account shared with returned copy")
	}
}

func TestManagerClear(t *testing.T) {
	m := flow.NewManager()
	if err := m.Save("user-1", signedInPatient(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m.Clear("user-1")
	if m.Get("user-1").Screen != flow.ScreenRoleSelect {
		t.Fatal("cleared user should get a fresh session")
	}
}
