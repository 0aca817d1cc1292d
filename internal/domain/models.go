package domain

// Role identifies which experience a user signed up for.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// DeviceLayout selects the rendering target. The watch layout is a reduced
// companion rendering shown alongside the phone one for screens that define it.
type DeviceLayout string

const (
	LayoutPhone DeviceLayout = "phone"
	LayoutWatch DeviceLayout = "watch"
)

// RiskLevel classifies a metabolic risk score.
type RiskLevel string

const (
	RiskStable   RiskLevel = "stable"
	RiskWatchful RiskLevel = "watchful"
	RiskAtRisk   RiskLevel = "at-risk"
)

// Account is the signed-in identity returned by the auth backend.
type Account struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// UserProfile holds the onboarding questionnaire answers plus the two derived
// fields. RiskLevel and MetabolicAge are always computed by the risk engine,
// never set directly; a new onboarding run replaces the profile wholesale.
type UserProfile struct {
	Lifestyle        string    `json:"lifestyle"`
	AgeGroup         string    `json:"ageGroup"`
	Height           string    `json:"height"`
	Weight           string    `json:"weight"`
	FamilyHistory    string    `json:"familyHistory"`
	HealthConditions string    `json:"healthConditions"`
	WaistWeight      string    `json:"waistWeight"`
	Movement         string    `json:"movement"`
	Sleep            string    `json:"sleep"`
	Sugar            string    `json:"sugar"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	MetabolicAge     int       `json:"metabolicAge"`
}

// DailyData is one daily check-in record. History is append-only,
// most-recent-last, never mutated after creation.
type DailyData struct {
	BodyFeel string `json:"bodyFeel"`
	Movement string `json:"movement"`
	Food     string `json:"food"`
	Stress   string `json:"stress"`
	Sleep    string `json:"sleep"`
	Date     string `json:"date"`
}

// PatientRecord aggregates everything the doctor views see for one patient.
// These are read-only seed records; no in-system event creates or updates one.
type PatientRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Profile      UserProfile `json:"profile"`
	DailyHistory []DailyData `json:"dailyHistory"`
	LastCheckIn  string      `json:"lastCheckIn"`
	HasSymptoms  bool        `json:"hasSymptoms"`
}

// DoctorInfo describes a selectable doctor during patient onboarding. The
// chosen doctor is logged but not persisted beyond navigation.
type DoctorInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Preferences holds the two accessibility settings of the local preference
// store. Absent values fall back to "medium" and 100.
type Preferences struct {
	FontSize  string `json:"fontSize"`
	ZoomLevel int    `json:"zoomLevel"`
}

const (
	DefaultFontSize  = "medium"
	DefaultZoomLevel = 100
)
