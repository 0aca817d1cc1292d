package flow

import (
	"github.com/fdumary/doctor-ai/internal/domain"
	apperrors "github.com/fdumary/doctor-ai/internal/errors"
	"github.com/fdumary/doctor-ai/internal/logger"
	"github.com/fdumary/doctor-ai/internal/risk"
)

// transitionKey addresses the transition table. A (screen, event) pair absent
// from the table is rejected before any session mutation.
type transitionKey struct {
	screen Screen
	kind   EventKind
}

// transitionFunc mutates the session for one accepted event and returns the
// next screen.
type transitionFunc func(s *Session, ev Event) Screen

var transitions = map[transitionKey]transitionFunc{
	{ScreenRoleSelect, EventSelectRole}: func(s *Session, ev Event) Screen {
		s.Role = ev.Role
		return ScreenCreateAccount
	},

	{ScreenCreateAccount, EventAccountCreated}: accountCreated,
	{ScreenLogin, EventAccountCreated}:         accountCreated,
	{ScreenCreateAccount, EventSwitchToLogin}: func(s *Session, ev Event) Screen {
		return ScreenLogin
	},
	{ScreenLogin, EventSwitchToSignUp}: func(s *Session, ev Event) Screen {
		return ScreenCreateAccount
	},
	{ScreenCreateAccount, EventBack}: backToRoleSelect,
	{ScreenLogin, EventBack}:         backToRoleSelect,

	{ScreenDoctorSelection, EventDoctorChosen}: func(s *Session, ev Event) Screen {
		// Recorded for the log only; the choice is not persisted further.
		if ev.Doctor != nil {
			logger.Infof("Doctor selected: %s (%s)", ev.Doctor.Name, ev.Doctor.ID)
		}
		return ScreenOnboarding
	},
	{ScreenDoctorSelection, EventBack}: func(s *Session, ev Event) Screen {
		return ScreenCreateAccount
	},

	{ScreenOnboarding, EventOnboardingCompleted}: func(s *Session, ev Event) Screen {
		profile := risk.BuildProfile(*ev.Answers)
		s.Profile = &profile
		return ScreenResults
	},
	{ScreenResults, EventContinue}: func(s *Session, ev Event) Screen {
		return ScreenDashboard
	},

	{ScreenDashboard, EventStartDaily}: func(s *Session, ev Event) Screen {
		return ScreenDailyCheckIn
	},
	{ScreenDashboard, EventStartWeekly}: func(s *Session, ev Event) Screen {
		return ScreenWeeklyCheck
	},
	{ScreenDashboard, EventSwitchToDoctor}: func(s *Session, ev Event) Screen {
		return ScreenDoctorDashboard
	},
	{ScreenDashboard, EventOpenSettings}: func(s *Session, ev Event) Screen {
		return ScreenSettings
	},

	{ScreenDailyCheckIn, EventDailyCompleted}: func(s *Session, ev Event) Screen {
		s.DailyHistory = append(s.DailyHistory, *ev.Daily)
		return ScreenDashboard
	},
	{ScreenDailyCheckIn, EventBack}: func(s *Session, ev Event) Screen {
		return ScreenDashboard
	},

	// Weekly symptom answers are discarded on completion; they never reach a
	// patient record.
	{ScreenWeeklyCheck, EventWeeklyCompleted}: func(s *Session, ev Event) Screen {
		return ScreenDashboard
	},
	{ScreenWeeklyCheck, EventBack}: func(s *Session, ev Event) Screen {
		return ScreenDashboard
	},

	{ScreenDoctorDashboard, EventSwitchToPatientView}: func(s *Session, ev Event) Screen {
		if s.Profile != nil {
			return ScreenDashboard
		}
		return ScreenOnboarding
	},
	{ScreenDoctorDashboard, EventViewPatient}: func(s *Session, ev Event) Screen {
		s.SelectedPatientID = ev.PatientID
		return ScreenPatientDetail
	},
	{ScreenDoctorDashboard, EventOpenSettings}: func(s *Session, ev Event) Screen {
		return ScreenSettings
	},

	{ScreenPatientDetail, EventBack}: func(s *Session, ev Event) Screen {
		s.SelectedPatientID = ""
		return ScreenDoctorDashboard
	},

	{ScreenSettings, EventBack}: func(s *Session, ev Event) Screen {
		if s.Role == domain.RoleDoctor {
			return ScreenDoctorDashboard
		}
		return ScreenDashboard
	},
}

// accountCreated stores the account and routes by role: patients pick a
// doctor first, doctors land straight on their dashboard.
func accountCreated(s *Session, ev Event) Screen {
	s.Account = ev.Account
	s.Role = ev.Account.Role
	if ev.Account.Role == domain.RolePatient {
		return ScreenDoctorSelection
	}
	return ScreenDoctorDashboard
}

func backToRoleSelect(s *Session, ev Event) Screen {
	s.Role = ""
	s.Account = nil
	return ScreenRoleSelect
}

// Apply processes one event against the session. Logout and the layout
// toggle are accepted from every screen; everything else must match the
// transition table for the current screen or the session is left untouched
// and ErrInvalidTransition returned.
func Apply(s *Session, ev Event) error {
	switch ev.Kind {
	case EventLogout:
		s.reset()
		return nil
	case EventSwitchLayout:
		if s.Layout == domain.LayoutPhone {
			s.Layout = domain.LayoutWatch
		} else {
			s.Layout = domain.LayoutPhone
		}
		return nil
	}

	fn, ok := transitions[transitionKey{s.Screen, ev.Kind}]
	if !ok {
		return apperrors.New(apperrors.ErrorTypePrecondition, "INVALID_TRANSITION",
			"Event is not valid for the current screen").
			WithContext("screen", string(s.Screen)).
			WithContext("event", string(ev.Kind))
	}

	if err := checkPayload(ev); err != nil {
		return err
	}

	s.Screen = fn(s, ev)
	return nil
}

// checkPayload rejects events whose kind demands a payload that is missing,
// so transition funcs can dereference without guards.
func checkPayload(ev Event) error {
	switch ev.Kind {
	case EventSelectRole:
		if ev.Role != domain.RolePatient && ev.Role != domain.RoleDoctor {
			return apperrors.NewValidationError("selectRole requires a patient or doctor role")
		}
	case EventAccountCreated:
		if ev.Account == nil {
			return apperrors.NewValidationError("accountCreated requires account data")
		}
	case EventOnboardingCompleted:
		if ev.Answers == nil {
			return apperrors.NewValidationError("onboarding completion requires questionnaire answers")
		}
	case EventDailyCompleted:
		if ev.Daily == nil {
			return apperrors.NewValidationError("daily completion requires check-in data")
		}
	case EventViewPatient:
		if ev.PatientID == "" {
			return apperrors.NewValidationError("viewPatient requires a patient id")
		}
	}
	return nil
}
