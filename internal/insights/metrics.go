// Package insights derives dashboard and patient-detail metrics from a daily
// check-in history. Everything here is a pure function of the history (and
// "today" where relevant).
package insights

import (
	"math"

	"github.com/fdumary/doctor-ai/internal/domain"
)

// Badge tier labels, highest-matching tier wins.
const (
	TierStabilizer    = "Stabilizer"
	TierRebuilder     = "Rebuilder"
	TierMomentumMaker = "Momentum Maker"
)

// DashboardStats is what the patient dashboard renders above the check-in
// buttons.
type DashboardStats struct {
	StreakDays     int    `json:"streakDays"`
	BadgeTier      string `json:"badgeTier"`
	TodayCheckedIn bool   `json:"todayCheckedIn"`
	ShowTrends     bool   `json:"showTrends"`
	ShowPrediction bool   `json:"showPrediction"`
}

// Dashboard computes the full stat block for a history, risk level and
// today's date label.
func Dashboard(history []domain.DailyData, level domain.RiskLevel, today string) DashboardStats {
	return DashboardStats{
		StreakDays:     StreakDays(history),
		BadgeTier:      BadgeTier(len(history)),
		TodayCheckedIn: TodayCheckedIn(history, today),
		ShowTrends:     len(history) >= 3,
		ShowPrediction: len(history) >= 14 && level != domain.RiskStable,
	}
}

// StreakDays counts logged entries. This is total history length, not a
// consecutive-day streak.
func StreakDays(history []domain.DailyData) int {
	return len(history)
}

// BadgeTier maps a history length to a tier label with inclusive lower
// bounds: >=14 Momentum Maker, >=7 Rebuilder, else Stabilizer.
func BadgeTier(historyLen int) string {
	if historyLen >= 14 {
		return TierMomentumMaker
	}
	if historyLen >= 7 {
		return TierRebuilder
	}
	return TierStabilizer
}

// TodayCheckedIn reports whether any entry's date label exactly matches
// today's. This is a string comparison, not a calendar-date one.
func TodayCheckedIn(history []domain.DailyData, today string) bool {
	for _, entry := range history {
		if entry.Date == today {
			return true
		}
	}
	return false
}

// EnergyScore averages a 3/2/1 ordinal mapping of the 7 most recent entries'
// bodyFeel answers, scaled by 33.33 and rounded. The max ordinal lands near
// 100 rather than exactly on it; that rounding behavior is kept as-is.
func EnergyScore(history []domain.DailyData) int {
	return ordinalScore(history, func(entry domain.DailyData) int {
		switch entry.BodyFeel {
		case "energetic":
			return 3
		case "normal":
			return 2
		default:
			return 1
		}
	})
}

// StressScore is the same ordinal average over the stress answers, where calm
// scores highest.
func StressScore(history []domain.DailyData) int {
	return ordinalScore(history, func(entry domain.DailyData) int {
		switch entry.Stress {
		case "calm":
			return 3
		case "moderate":
			return 2
		default:
			return 1
		}
	})
}

// CompliancePercent reports check-in compliance against a 7-entry target,
// capped at 100.
func CompliancePercent(totalCheckIns int) int {
	if totalCheckIns >= 7 {
		return 100
	}
	return int(math.Round(float64(totalCheckIns) / 7 * 100))
}

func ordinalScore(history []domain.DailyData, rank func(domain.DailyData) int) int {
	recent := recentEntries(history, 7)
	if len(recent) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range recent {
		sum += rank(entry)
	}
	return int(math.Round(float64(sum) / float64(len(recent)) * 33.33))
}

func recentEntries(history []domain.DailyData, n int) []domain.DailyData {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
