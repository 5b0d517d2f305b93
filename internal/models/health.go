package models

// VitalStatus classifies a vital-sign reading or a resident's overall
// condition on the health screens.
type VitalStatus string

const (
	VitalGood     VitalStatus = "good"
	VitalNormal   VitalStatus = "normal"
	VitalWarning  VitalStatus = "warning"
	VitalElevated VitalStatus = "elevated"
	VitalCritical VitalStatus = "critical"
)

type VitalKind string

const (
	VitalBloodPressure VitalKind = "blood-pressure"
	VitalHeartRate     VitalKind = "heart-rate"
	VitalBloodSugar    VitalKind = "blood-sugar"
	VitalWeight        VitalKind = "weight"
	VitalTemperature   VitalKind = "temperature"
)

// HealthMetric is one current reading on the resident health screen.
type HealthMetric struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	Value       string      `db:"value"`
	Unit        string      `db:"unit"`
	Status      VitalStatus `db:"status"`
	LastUpdated string      `db:"last_updated"`
}

// ResidentHealth is the monitoring summary of one resident: the latest
// reading of each tracked vital plus an overall status.
type ResidentHealth struct {
	ResidentID    string      `db:"resident_id"`
	ResidentName  string      `db:"resident_name"`
	BloodPressure string      `db:"blood_pressure"`
	HeartRate     string      `db:"heart_rate"`
	BloodSugar    string      `db:"blood_sugar"`
	Weight        string      `db:"weight"`
	Status        VitalStatus `db:"status"`
	LastCheckup   string      `db:"last_checkup"`
}

// HealthRecord is one logged measurement in the recent-records feed.
type HealthRecord struct {
	ID           string      `db:"id"`
	ResidentID   string      `db:"resident_id"`
	ResidentName string      `db:"resident_name"`
	Kind         VitalKind   `db:"kind"`
	Value        string      `db:"value"`
	Timestamp    string      `db:"timestamp"`
	Status       VitalStatus `db:"status"`
}

// BloodPressureSample is one point of the 7-day blood pressure trend.
type BloodPressureSample struct {
	Day       string `db:"day"`
	Systolic  int    `db:"systolic"`
	Diastolic int    `db:"diastolic"`
}

// ActivitySample is one point of the weekly step-count chart.
type ActivitySample struct {
	Day   string `db:"day"`
	Steps int    `db:"steps"`
}
