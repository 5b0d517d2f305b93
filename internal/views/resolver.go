// Package views resolves the current navigation state plus the data
// collections into a view descriptor: which screen to render and with what
// data subset. Resolution is a pure function, so the whole screen flow can be
// tested without templates or a server.
package views

import (
	"sort"

	"github.com/carewell/eldercare/internal/models"
	"github.com/carewell/eldercare/internal/navigation"
)

// Screen identifies which page template renders the view.
type Screen string

const (
	ScreenRoleSelect Screen = "roleselect"
	ScreenNotFound   Screen = "notfound"

	ScreenHome          Screen = "home"
	ScreenEmergency     Screen = "emergency"
	ScreenContactDetail Screen = "contactdetail"
	ScreenHealth        Screen = "health"
	ScreenChat          Screen = "chat"
	ScreenChatDetail    Screen = "chatdetail"
	ScreenSettings      Screen = "settings"

	ScreenResidents      Screen = "residents"
	ScreenResidentDetail Screen = "residentdetail"
	ScreenResidentForm   Screen = "residentform"

	ScreenReminders    Screen = "reminders"
	ScreenReminderForm Screen = "reminderform"

	ScreenMonitoring       Screen = "monitoring"
	ScreenMonitoringDetail Screen = "monitoringdetail"
	ScreenHealthRecordForm Screen = "healthrecordform"
)

// Collections are the read-only datasets supplied by the data provider.
type Collections struct {
	Reminders      []models.Reminder
	Contacts       []models.Contact
	Residents      []models.Resident
	Conversations  []models.Conversation
	Metrics        []models.HealthMetric
	ResidentHealth []models.ResidentHealth
	RecentRecords  []models.HealthRecord
	BloodPressure  []models.BloodPressureSample
	Activity       []models.ActivitySample
}

// View is the resolved descriptor handed to the presentation layer. Only the
// fields relevant to Screen are populated.
type View struct {
	Screen      Screen
	Role        models.Role
	Tab         models.Tab
	SearchQuery string

	Reminders      []models.Reminder
	Contacts       []models.Contact
	Residents      []models.Resident
	Conversations  []models.Conversation
	Metrics        []models.HealthMetric
	ResidentHealth []models.ResidentHealth
	RecentRecords  []models.HealthRecord
	BloodPressure  []models.BloodPressureSample
	Activity       []models.ActivitySample

	Contact      *models.Contact
	Resident     *models.Resident
	Conversation *models.Conversation
	Health       *models.ResidentHealth
}

// Resolve maps navigation state and collections to the screen to render.
// A detail id that does not resolve to a record yields the not-found screen,
// never an error.
func Resolve(s navigation.State, c Collections) View {
	if s.Role == models.RoleNone {
		return View{Screen: ScreenRoleSelect}
	}

	view := View{Role: s.Role, Tab: s.Tab, SearchQuery: s.SearchQuery}

	switch s.Tab {
	case models.TabHome:
		view.Screen = ScreenHome
		view.Reminders = c.Reminders

	case models.TabEmergency:
		contacts := emergencyFirst(c.Contacts)
		if s.DetailID != "" {
			if contact := findContact(contacts, s.DetailID); contact != nil {
				view.Screen = ScreenContactDetail
				view.Contact = contact
				return view
			}
			view.Screen = ScreenNotFound
			return view
		}
		view.Screen = ScreenEmergency
		view.Contacts = contacts

	case models.TabHealth:
		view.Screen = ScreenHealth
		view.Metrics = c.Metrics
		view.BloodPressure = c.BloodPressure
		view.Activity = c.Activity

	case models.TabChat:
		if s.DetailID != "" {
			if conv := findConversation(c.Conversations, s.DetailID); conv != nil {
				view.Screen = ScreenChatDetail
				view.Conversation = conv
				return view
			}
			view.Screen = ScreenNotFound
			return view
		}
		view.Screen = ScreenChat
		view.Conversations = c.Conversations

	case models.TabSettings:
		view.Screen = ScreenSettings

	case models.TabResidents:
		if s.ModalOpen {
			view.Screen = ScreenResidentForm
			return view
		}
		if s.DetailID != "" {
			if resident := findResident(c.Residents, s.DetailID); resident != nil {
				view.Screen = ScreenResidentDetail
				view.Resident = resident
				view.RecentRecords = recordsForResident(c.RecentRecords, resident.ID)
				return view
			}
			view.Screen = ScreenNotFound
			return view
		}
		view.Screen = ScreenResidents
		view.Residents = Filter(c.Residents, s.SearchQuery, func(r models.Resident) []string {
			return []string{r.Name, r.Room}
		})

	case models.TabReminders:
		if s.ModalOpen {
			view.Screen = ScreenReminderForm
			view.Residents = c.Residents
			return view
		}
		view.Screen = ScreenReminders
		view.Reminders = Filter(c.Reminders, s.SearchQuery, func(r models.Reminder) []string {
			return []string{r.Title, r.ResidentName}
		})

	case models.TabMonitoring:
		if s.ModalOpen {
			view.Screen = ScreenHealthRecordForm
			view.Residents = c.Residents
			return view
		}
		if s.DetailID != "" {
			if health := findHealth(c.ResidentHealth, s.DetailID); health != nil {
				view.Screen = ScreenMonitoringDetail
				view.Health = health
				view.RecentRecords = recordsForResident(c.RecentRecords, health.ResidentID)
				view.BloodPressure = c.BloodPressure
				view.Activity = c.Activity
				return view
			}
			view.Screen = ScreenNotFound
			return view
		}
		view.Screen = ScreenMonitoring
		view.ResidentHealth = Filter(c.ResidentHealth, s.SearchQuery, func(h models.ResidentHealth) []string {
			return []string{h.ResidentName}
		})
		view.RecentRecords = c.RecentRecords

	default:
		view.Screen = ScreenNotFound
	}

	return view
}

// emergencyFirst orders contacts so that emergency-category entries always
// lead the list, keeping the stored order otherwise.
func emergencyFirst(contacts []models.Contact) []models.Contact {
	ordered := make([]models.Contact, len(contacts))
	copy(ordered, contacts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Category == models.ContactEmergency && ordered[j].Category != models.ContactEmergency
	})
	return ordered
}

func findContact(contacts []models.Contact, id string) *models.Contact {
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i]
		}
	}
	return nil
}

func findResident(residents []models.Resident, id string) *models.Resident {
	for i := range residents {
		if residents[i].ID == id {
			return &residents[i]
		}
	}
	return nil
}

func findConversation(conversations []models.Conversation, id string) *models.Conversation {
	for i := range conversations {
		if conversations[i].ID == id {
			return &conversations[i]
		}
	}
	return nil
}

func findHealth(health []models.ResidentHealth, id string) *models.ResidentHealth {
	for i := range health {
		if health[i].ResidentID == id {
			return &health[i]
		}
	}
	return nil
}

func recordsForResident(records []models.HealthRecord, residentID string) []models.HealthRecord {
	var matched []models.HealthRecord
	for _, record := range records {
		if record.ResidentID == residentID {
			matched = append(matched, record)
		}
	}
	return matched
}
