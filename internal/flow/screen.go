// Package flow owns the screen-flow state machine. A Session is mutated only
// through Apply; rendering code reads it through View and never reaches into
// transition internals.
package flow

// Screen identifies one of the fixed app screens.
type Screen string

const (
	ScreenRoleSelect      Screen = "role-select"
	ScreenCreateAccount   Screen = "create-account"
	ScreenLogin           Screen = "login"
	ScreenSettings        Screen = "settings"
	ScreenDoctorSelection Screen = "doctor-selection"
	ScreenOnboarding      Screen = "onboarding"
	ScreenResults         Screen = "results"
	ScreenDashboard       Screen = "dashboard"
	ScreenDailyCheckIn    Screen = "daily-check-in"
	ScreenWeeklyCheck     Screen = "weekly-check"
	ScreenDoctorDashboard Screen = "doctor-dashboard"
	ScreenPatientDetail   Screen = "patient-detail"
)
