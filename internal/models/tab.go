package models

// Tab is a top-level dashboard section. Each role has its own set of tabs
// and exactly one of them is active at a time.
type Tab string

const (
	TabNone Tab = ""

	// Resident dashboard tabs.
	TabHome      Tab = "home"
	TabEmergency Tab = "emergency"
	TabHealth    Tab = "health"

	// Caretaker dashboard tabs.
	TabResidents  Tab = "residents"
	TabReminders  Tab = "reminders"
	TabMonitoring Tab = "monitoring"

	// Shared tabs.
	TabChat     Tab = "chat"
	TabSettings Tab = "settings"
)

var residentTabs = []Tab{TabHome, TabEmergency, TabHealth, TabChat, TabSettings}
var caretakerTabs = []Tab{TabResidents, TabReminders, TabMonitoring, TabChat, TabSettings}

// DefaultTab is the tab a freshly selected role lands on.
func DefaultTab(r Role) Tab {
	switch r {
	case RoleResident:
		return TabHome
	case RoleCaretaker:
		return TabResidents
	default:
		return TabNone
	}
}

// TabsFor lists the tabs of the given role's dashboard in display order.
func TabsFor(r Role) []Tab {
	switch r {
	case RoleResident:
		return residentTabs
	case RoleCaretaker:
		return caretakerTabs
	default:
		return nil
	}
}

// ValidFor reports whether t belongs to the given role's dashboard.
func (t Tab) ValidFor(r Role) bool {
	for _, candidate := range TabsFor(r) {
		if t == candidate {
			return true
		}
	}
	return false
}

// SupportsDetail reports whether t has a drill-down detail view: the
// caretaker roster and health monitoring, conversations for both roles, and
// the resident's emergency contacts.
func (t Tab) SupportsDetail(r Role) bool {
	if t == TabChat {
		return r.Valid()
	}
	if r == RoleResident {
		return t == TabEmergency
	}
	return r == RoleCaretaker && (t == TabResidents || t == TabMonitoring)
}

// SupportsModal reports whether t has a create/add form. Only the caretaker
// management tabs do.
func (t Tab) SupportsModal(r Role) bool {
	return r == RoleCaretaker && (t == TabResidents || t == TabReminders || t == TabMonitoring)
}

// Title returns the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabHome:
		return "Home"
	case TabEmergency:
		return "Emergency"
	case TabHealth:
		return "Health"
	case TabResidents:
		return "Residents"
	case TabReminders:
		return "Reminders"
	case TabMonitoring:
		return "Monitoring"
	case TabChat:
		return "Chat"
	case TabSettings:
		return "Settings"
	default:
		return ""
	}
}
