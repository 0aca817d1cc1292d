package flow

import "github.com/fdumary/doctor-ai/internal/domain"

// Session is the complete in-memory state of one user's interaction. It is
// created at app start, mutated by every navigation event and reset to its
// initial state on logout.
type Session struct {
	Screen            Screen              `json:"screen"`
	Layout            domain.DeviceLayout `json:"layout"`
	Role              domain.Role         `json:"role,omitempty"`
	Account           *domain.Account     `json:"account,omitempty"`
	Profile           *domain.UserProfile `json:"profile,omitempty"`
	DailyHistory      []domain.DailyData  `json:"dailyHistory,omitempty"`
	SelectedPatientID string              `json:"selectedPatientId,omitempty"`
}

// NewSession returns the initial session: role selection on the phone layout
// with nothing accumulated yet.
func NewSession() *Session {
	return &Session{
		Screen: ScreenRoleSelect,
		Layout: domain.LayoutPhone,
	}
}

// reset wipes the session back to its initial state in place.
func (s *Session) reset() {
	*s = *NewSession()
}

// clone returns a deep copy of the session. The history slice and the
// account/profile pointers are duplicated so that appending to or mutating
// one copy can never be observed through another.
func (s *Session) clone() *Session {
	copied := *s
	if s.Account != nil {
		account := *s.Account
		copied.Account = &account
	}
	if s.Profile != nil {
		profile := *s.Profile
		copied.Profile = &profile
	}
	if s.DailyHistory != nil {
		copied.DailyHistory = make([]domain.DailyData, len(s.DailyHistory))
		copy(copied.DailyHistory, s.DailyHistory)
	}
	return &copied
}
