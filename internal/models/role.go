package models

// Role identifies which dashboard a session is using. A session has exactly
// one active role, chosen on the role-selection screen and cleared on logout.
type Role string

const (
	// RoleNone means no role has been selected yet and the role-selection
	// screen is shown. It is the zero value on purpose.
	RoleNone      Role = ""
	RoleResident  Role = "resident"
	RoleCaretaker Role = "caretaker"
)

// Valid reports whether r is a selectable role.
func (r Role) Valid() bool {
	return r == RoleResident || r == RoleCaretaker
}

// DisplayName returns the label shown in the dashboard header.
func (r Role) DisplayName() string {
	switch r {
	case RoleResident:
		return "Resident"
	case RoleCaretaker:
		return "Staff"
	default:
		return ""
	}
}
