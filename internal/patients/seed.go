package patients

import "github.com/fdumary/doctor-ai/internal/domain"

// Seed returns the sample patient roster.
func Seed() []domain.PatientRecord {
	return []domain.PatientRecord{
		{
			ID:   "P001",
			Name: "Sarah Johnson",
			Profile: domain.UserProfile{
				Lifestyle:        "active-inconsistent",
				AgeGroup:         "45-59",
				Height:           "165cm",
				Weight:           "72kg",
				FamilyHistory:    "yes",
				HealthConditions: "one",
				WaistWeight:      "yes",
				Movement:         "walking",
				Sleep:            "okay",
				Sugar:            "occasional",
				RiskLevel:        domain.RiskWatchful,
				MetabolicAge:     52,
			},
			DailyHistory: []domain.DailyData{
				{BodyFeel: "normal", Movement: "some", Food: "mixed", Stress: "moderate", Sleep: "okay", Date: "Jan 30 2026"},
				{BodyFeel: "tired", Movement: "barely", Food: "sugary", Stress: "high", Sleep: "poor", Date: "Jan 29 2026"},
			},
			LastCheckIn: "1 day ago",
			HasSymptoms: false,
		},
		{
			ID:   "P002",
			Name: "Michael Chen",
			Profile: domain.UserProfile{
				Lifestyle:        "sitting",
				AgeGroup:         "30-44",
				Height:           "178cm",
				Weight:           "95kg",
				FamilyHistory:    "yes",
				HealthConditions: "more-than-one",
				WaistWeight:      "yes",
				Movement:         "sitting",
				Sleep:            "exhausting",
				Sugar:            "daily",
				RiskLevel:        domain.RiskAtRisk,
				MetabolicAge:     45,
			},
			DailyHistory: []domain.DailyData{
				{BodyFeel: "tired", Movement: "barely", Food: "sugary", Stress: "high", Sleep: "poor", Date: "Jan 28 2026"},
			},
			LastCheckIn: "3 days ago",
			HasSymptoms: true,
		},
		{
			ID:   "P003",
			Name: "Emma Rodriguez",
			Profile: domain.UserProfile{
				Lifestyle:        "active-inconsistent",
				AgeGroup:         "30-44",
				Height:           "160cm",
				Weight:           "58kg",
				FamilyHistory:    "no",
				HealthConditions: "none",
				WaistWeight:      "no",
				Movement:         "active",
				Sleep:            "restful",
				Sugar:            "rare",
				RiskLevel:        domain.RiskStable,
				MetabolicAge:     32,
			},
			DailyHistory: []domain.DailyData{
				{BodyFeel: "energetic", Movement: "enough", Food: "balanced", Stress: "calm", Sleep: "good", Date: "Jan 31 2026"},
				{BodyFeel: "energetic", Movement: "enough", Food: "balanced", Stress: "calm", Sleep: "good", Date: "Jan 30 2026"},
				{BodyFeel: "normal", Movement: "some", Food: "balanced", Stress: "calm", Sleep: "good", Date: "Jan 29 2026"},
			},
			LastCheckIn: "Today",
			HasSymptoms: false,
		},
	}
}
