// Package risk computes the metabolic risk classification from onboarding
// questionnaire answers. Scoring is a pure function: identical answers always
// yield identical output, and BuildProfile is the only constructor path for a
// profile's derived fields.
package risk

import (
	"strconv"
	"strings"

	"github.com/fdumary/doctor-ai/internal/domain"
)

// Answers holds the raw questionnaire selections, one categorical value per
// question. Zero values contribute no weight.
type Answers struct {
	Lifestyle        string `json:"lifestyle"`
	AgeGroup         string `json:"ageGroup"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
	FamilyHistory    string `json:"familyHistory"`
	HealthConditions string `json:"healthConditions"`
	WaistWeight      string `json:"waistWeight"`
	Movement         string `json:"movement"`
	Sleep            string `json:"sleep"`
	Sugar            string `json:"sugar"`
}

// Assessment is the computed result: a classification plus the derived
// metabolic age.
type Assessment struct {
	RiskScore    int
	RiskLevel    domain.RiskLevel
	MetabolicAge int
}

const defaultBaseAge = 30

// Score applies the additive weights, classifies the total with inclusive
// lower bounds (>=6 at-risk, >=3 watchful) and derives metabolic age as base
// age plus score. Metabolic age is deliberately not clamped.
func Score(a Answers) Assessment {
	score := 0
	if a.FamilyHistory == "yes" {
		score += 2
	}
	if a.HealthConditions == "more-than-one" {
		score += 3
	}
	if a.HealthConditions == "one" {
		score += 1
	}
	if a.WaistWeight == "yes" {
		score += 2
	}
	if a.Movement == "sitting" {
		score += 2
	}
	if a.Sleep == "exhausting" {
		score += 1
	}
	if a.Sugar == "daily" {
		score += 2
	}

	level := domain.RiskStable
	if score >= 6 {
		level = domain.RiskAtRisk
	} else if score >= 3 {
		level = domain.RiskWatchful
	}

	return Assessment{
		RiskScore:    score,
		RiskLevel:    level,
		MetabolicAge: baseAge(a.AgeGroup) + score,
	}
}

// BuildProfile assembles a UserProfile from answers, filling the derived
// fields from Score. Rendering and persistence code must never set RiskLevel
// or MetabolicAge by hand.
func BuildProfile(a Answers) domain.UserProfile {
	assessment := Score(a)
	return domain.UserProfile{
		Lifestyle:        a.Lifestyle,
		AgeGroup:         a.AgeGroup,
		Height:           a.Height,
		Weight:           a.Weight,
		FamilyHistory:    a.FamilyHistory,
		HealthConditions: a.HealthConditions,
		WaistWeight:      a.WaistWeight,
		Movement:         a.Movement,
		Sleep:            a.Sleep,
		Sugar:            a.Sugar,
		RiskLevel:        assessment.RiskLevel,
		MetabolicAge:     assessment.MetabolicAge,
	}
}

// baseAge parses the leading integer of an age-group token ("45-59" -> 45,
// "30" -> 30). Malformed or missing input defaults to 30.
func baseAge(ageGroup string) int {
	token := strings.TrimSpace(ageGroup)
	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	age, err := strconv.Atoi(token[:end])
	if err != nil {
		return defaultBaseAge
	}
	return age
}
