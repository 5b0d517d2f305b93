// Package styling maps the closed domain enums to presentation tokens.
// Every view that badges a status or a category goes through these tables so
// the fallback behaviour cannot diverge between screens. All lookups are
// total: unrecognized values resolve to the neutral default, never to a
// missing entry.
package styling

import "github.com/carewell/eldercare/internal/models"

// Style is one resolved presentation entry: a CSS token, an icon identifier,
// and the badge label.
type Style struct {
	Token string
	Icon  string
	Label string
}

var neutral = Style{Token: "neutral", Icon: "circle", Label: "Unknown"}

// Neutral returns the fallback style used for unrecognized values.
func Neutral() Style {
	return neutral
}

var residentStatusStyles = map[models.ResidentStatus]Style{
	models.ResidentGood:           {Token: "positive", Icon: "check-circle", Label: "Good"},
	models.ResidentNeedsAttention: {Token: "caution", Icon: "alert-circle", Label: "Needs Attention"},
	models.ResidentCritical:       {Token: "alert", Icon: "alert-circle", Label: "Critical"},
}

// ResidentStatus resolves a roster status badge.
func ResidentStatus(s models.ResidentStatus) Style {
	if style, ok := residentStatusStyles[s]; ok {
		return style
	}
	return neutral
}

var vitalStatusStyles = map[models.VitalStatus]Style{
	models.VitalGood:     {Token: "positive", Icon: "trending-up", Label: "Normal"},
	models.VitalNormal:   {Token: "positive", Icon: "trending-up", Label: "Normal"},
	models.VitalWarning:  {Token: "caution", Icon: "alert-circle", Label: "Monitor"},
	models.VitalElevated: {Token: "caution", Icon: "alert-circle", Label: "Elevated"},
	models.VitalCritical: {Token: "alert", Icon: "alert-circle", Label: "Alert"},
}

// VitalStatus resolves a health reading badge.
func VitalStatus(s models.VitalStatus) Style {
	if style, ok := vitalStatusStyles[s]; ok {
		return style
	}
	return neutral
}

var reminderCategoryStyles = map[models.ReminderCategory]Style{
	models.ReminderMedicine:    {Token: "category-medicine", Icon: "pill", Label: "Medicine"},
	models.ReminderMeal:        {Token: "category-meal", Icon: "utensils", Label: "Meal"},
	models.ReminderAppointment: {Token: "category-appointment", Icon: "calendar", Label: "Appointment"},
	models.ReminderExercise:    {Token: "category-exercise", Icon: "activity", Label: "Exercise"},
	models.ReminderOther:       {Token: "neutral", Icon: "bell", Label: "Other"},
}

// ReminderCategory resolves a reminder's icon and colour pair.
func ReminderCategory(c models.ReminderCategory) Style {
	if style, ok := reminderCategoryStyles[c]; ok {
		return style
	}
	return Style{Token: "neutral", Icon: "bell", Label: "Other"}
}

var reminderStatusStyles = map[models.ReminderStatus]Style{
	models.ReminderPending:   {Token: "caution", Icon: "clock", Label: "Pending"},
	models.ReminderCompleted: {Token: "positive", Icon: "check-circle", Label: "Completed"},
	models.ReminderMissed:    {Token: "alert", Icon: "alert-circle", Label: "Missed"},
}

// ReminderStatus resolves a reminder's status badge.
func ReminderStatus(s models.ReminderStatus) Style {
	if style, ok := reminderStatusStyles[s]; ok {
		return style
	}
	return neutral
}

var contactCategoryStyles = map[models.ContactCategory]Style{
	models.ContactEmergency: {Token: "alert", Icon: "shield", Label: "Emergency"},
	models.ContactStaff:     {Token: "category-staff", Icon: "user", Label: "Staff"},
	models.ContactFamily:    {Token: "category-family", Icon: "heart", Label: "Family"},
	models.ContactMedical:   {Token: "category-medical", Icon: "heart", Label: "Medical"},
}

// ContactCategory resolves a contact card's colour and icon.
func ContactCategory(c models.ContactCategory) Style {
	if style, ok := contactCategoryStyles[c]; ok {
		return style
	}
	return Style{Token: "neutral", Icon: "phone", Label: "Contact"}
}

var senderRoleStyles = map[models.SenderRole]Style{
	models.SenderResident: {Token: "sender-own", Icon: "user", Label: "You"},
	models.SenderFamily:   {Token: "category-family", Icon: "heart", Label: "Family"},
	models.SenderStaff:    {Token: "category-staff", Icon: "user", Label: "Staff"},
}

// SenderRole resolves a chat bubble's badge.
func SenderRole(r models.SenderRole) Style {
	if style, ok := senderRoleStyles[r]; ok {
		return style
	}
	return neutral
}
