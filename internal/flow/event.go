package flow

import (
	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/risk"
)

// EventKind discriminates the user actions the controller understands.
type EventKind string

const (
	EventSelectRole          EventKind = "select-role"
	EventAccountCreated      EventKind = "account-created"
	EventSwitchToLogin       EventKind = "switch-to-login"
	EventSwitchToSignUp      EventKind = "switch-to-sign-up"
	EventDoctorChosen        EventKind = "doctor-chosen"
	EventOnboardingCompleted EventKind = "onboarding-completed"
	EventContinue            EventKind = "continue"
	EventStartDaily          EventKind = "start-daily"
	EventStartWeekly         EventKind = "start-weekly"
	EventDailyCompleted      EventKind = "daily-completed"
	EventWeeklyCompleted     EventKind = "weekly-completed"
	EventSwitchToDoctor      EventKind = "switch-to-doctor"
	EventSwitchToPatientView EventKind = "switch-to-patient-view"
	EventViewPatient         EventKind = "view-patient"
	EventOpenSettings        EventKind = "open-settings"
	EventBack                EventKind = "back"
	EventLogout              EventKind = "logout"
	EventSwitchLayout        EventKind = "switch-layout"
)

// Event is the tagged union of user actions. Only the payload fields the kind
// needs are set; the rest stay zero.
type Event struct {
	Kind      EventKind          `json:"kind"`
	Role      domain.Role        `json:"role,omitempty"`
	Account   *domain.Account    `json:"account,omitempty"`
	Doctor    *domain.DoctorInfo `json:"doctor,omitempty"`
	Answers   *risk.Answers      `json:"answers,omitempty"`
	Daily     *domain.DailyData  `json:"daily,omitempty"`
	PatientID string             `json:"patientId,omitempty"`
}
