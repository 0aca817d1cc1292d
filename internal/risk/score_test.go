package risk_test

import (
	"testing"

	"github.com/fdumary/doctor-ai/internal/domain"
	"github.com/fdumary/doctor-ai/internal/risk"
)

func TestScoreDeterministic(t *testing.T) {
	answers := risk.Answers{
		AgeGroup:         "45-59",
		FamilyHistory:    "yes",
		HealthConditions: "one",
		Movement:         "walking",
		Sleep:            "okay",
		Sugar:            "occasional",
	}

	first := risk.Score(answers)
	for i := 0; i < 10; i++ {
		if got := risk.Score(answers); got != first {
			t.Fatalf("call %d diverged: got %+v want %+v", i, got, first)
		}
	}
}

func TestScoreWeightsAndClassification(t *testing.T) {
	tests := []struct {
		name      string
		answers   risk.Answers
		wantScore int
		wantLevel domain.RiskLevel
	}{
		{
			name:      "all zero-weight answers",
			answers:   risk.Answers{AgeGroup: "30", FamilyHistory: "no", HealthConditions: "none", WaistWeight: "no", Movement: "walking", Sleep: "okay", Sugar: "rare"},
			wantScore: 0,
			wantLevel: domain.RiskStable,
		},
		{
			name:      "score 2 stays stable",
			answers:   risk.Answers{FamilyHistory: "yes"},
			wantScore: 2,
			wantLevel: domain.RiskStable,
		},
		{
			name:      "score 3 crosses into watchful",
			answers:   risk.Answers{FamilyHistory: "yes", HealthConditions: "one"},
			wantScore: 3,
			wantLevel: domain.RiskWatchful,
		},
		{
			name:      "score 5 still watchful",
			answers:   risk.Answers{FamilyHistory: "yes", HealthConditions: "more-than-one"},
			wantScore: 5,
			wantLevel: domain.RiskWatchful,
		},
		{
			name:      "score 6 crosses into at-risk",
			answers:   risk.Answers{FamilyHistory: "yes", HealthConditions: "more-than-one", Sleep: "exhausting"},
			wantScore: 6,
			wantLevel: domain.RiskAtRisk,
		},
		{
			name:      "maximum score",
			answers:   risk.Answers{FamilyHistory: "yes", HealthConditions: "more-than-one", WaistWeight: "yes", Movement: "sitting", Sleep: "exhausting", Sugar: "daily"},
			wantScore: 12,
			wantLevel: domain.RiskAtRisk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := risk.Score(tt.answers)
			if got.RiskScore != tt.wantScore {
				t.Fatalf("RiskScore = %d, want %d", got.RiskScore, tt.wantScore)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Fatalf("RiskLevel = %s, want %s", got.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestScoreMetabolicAge(t *testing.T) {
	// familyHistory yes (+2) + one condition (+1) = 3, ageGroup 45-59 -> 45+3.
	answers := risk.Answers{
		AgeGroup:         "45-59",
		FamilyHistory:    "yes",
		HealthConditions: "one",
		WaistWeight:      "no",
		Movement:         "walking",
		Sleep:            "okay",
		Sugar:            "occasional",
	}
	got := risk.Score(answers)
	if got.RiskLevel != domain.RiskWatchful {
		t.Fatalf("RiskLevel = %s, want watchful", got.RiskLevel)
	}
	if got.MetabolicAge != 48 {
		t.Fatalf("MetabolicAge = %d, want 48", got.MetabolicAge)
	}
}

func TestScoreBaseAgeParsing(t *testing.T) {
	tests := []struct {
		ageGroup string
		want     int
	}{
		{"30", 30},
		{"30-44", 30},
		{"45-59", 45},
		{"60", 60},
		{"", 30},
		{"unknown", 30},
	}

	for _, tt := range tests {
		got := risk.Score(risk.Answers{AgeGroup: tt.ageGroup})
		if got.MetabolicAge != tt.want {
			t.Fatalf("ageGroup %q: MetabolicAge = %d, want %d", tt.ageGroup, got.MetabolicAge, tt.want)
		}
	}
}

func TestScoreNoClamping(t *testing.T) {
	// A high-risk young respondent: base 30 + 12 = 42, accepted as-is.
	answers := risk.Answers{
		AgeGroup:         "30",
		FamilyHistory:    "yes",
		HealthConditions: "more-than-one",
		WaistWeight:      "yes",
		Movement:         "sitting",
		Sleep:            "exhausting",
		Sugar:            "daily",
	}
	got := risk.Score(answers)
	if got.MetabolicAge != 42 {
		t.Fatalf("MetabolicAge = %d, want 42", got.MetabolicAge)
	}
}

func TestBuildProfileDerivedFields(t *testing.T) {
	answers := risk.Answers{
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
	}

	profile := risk.BuildProfile(answers)
	assessment := risk.Score(answers)

	if profile.RiskLevel != assessment.RiskLevel {
		t.Fatalf("profile RiskLevel = %s, assessment = %s", profile.RiskLevel, assessment.RiskLevel)
	}
	if profile.MetabolicAge != assessment.MetabolicAge {
		t.Fatalf("profile MetabolicAge = %d, assessment = %d", profile.MetabolicAge, assessment.MetabolicAge)
	}
	if profile.AgeGroup != answers.AgeGroup || profile.Sugar != answers.Sugar {
		t.Fatal("answers were not carried into the profile")
	}
}
