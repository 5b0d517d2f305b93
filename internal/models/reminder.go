package models

import "fmt"

type ReminderCategory string

const (
	ReminderMedicine    ReminderCategory = "medicine"
	ReminderMeal        ReminderCategory = "meal"
	ReminderAppointment ReminderCategory = "appointment"
	ReminderExercise    ReminderCategory = "exercise"
	ReminderOther       ReminderCategory = "other"
)

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderMissed    ReminderStatus = "missed"
)

type RepeatRule string

const (
	RepeatOnce   RepeatRule = "once"
	RepeatDaily  RepeatRule = "daily"
	RepeatWeekly RepeatRule = "weekly"
)

// Reminder is a scheduled care task for one resident. Status only ever
// transitions pending → completed.
type Reminder struct {
	ID           string           `db:"id"`
	ResidentID   string           `db:"resident_id"`
	ResidentName string           `db:"resident_name"`
	Category     ReminderCategory `db:"category"`
	Title        string           `db:"title"`
	Time         string           `db:"time"`
	Repeat       RepeatRule       `db:"repeat"`
	Status       ReminderStatus   `db:"status"`
	VoiceEnabled bool             `db:"voice_enabled"`
	Details      string           `db:"details"`
}

// Announcement is the read-aloud text for the reminder.
func (r Reminder) Announcement() string {
	if r.Details == "" {
		return fmt.Sprintf("Reminder: %s at %s.", r.Title, r.Time)
	}
	return fmt.Sprintf("Reminder: %s at %s. %s", r.Title, r.Time, r.Details)
}
