package models

type ResidentStatus string

const (
	ResidentGood           ResidentStatus = "good"
	ResidentNeedsAttention ResidentStatus = "needs-attention"
	ResidentCritical       ResidentStatus = "critical"
)

// Resident is one roster entry of the care facility.
type Resident struct {
	ID              string
	Name            string
	Room            string
	Age             int
	Status          ResidentStatus
	Conditions      []string
	LastCheckup     string
	Medications     int
	NextAppointment string
}
