package flow

// View resolves the primary rendering for the session. ok is false when the
// current screen's preconditions are unmet (for example results without a
// computed profile); callers must render nothing and wait for a new valid
// event.
func (s *Session) View() (Screen, bool) {
	switch s.Screen {
	case ScreenCreateAccount:
		return s.Screen, s.Role != ""
	case ScreenSettings:
		return s.Screen, s.Account != nil
	case ScreenResults:
		return s.Screen, s.Profile != nil && s.Account != nil
	case ScreenDashboard:
		return s.Screen, s.Profile != nil
	case ScreenPatientDetail:
		return s.Screen, s.SelectedPatientID != ""
	default:
		return s.Screen, true
	}
}

// CompanionView resolves the reduced watch rendering. Only the dashboard and
// the daily check-in define one; it always mirrors the same session data as
// the primary rendering.
func (s *Session) CompanionView() (Screen, bool) {
	screen, ok := s.View()
	if !ok {
		return "", false
	}
	if screen == ScreenDashboard || screen == ScreenDailyCheckIn {
		return screen, true
	}
	return "", false
}
