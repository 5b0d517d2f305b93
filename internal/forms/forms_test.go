package forms_test

import (
	"context"
	"io"
	"testing"

	"github.com/carewell/eldercare/internal/forms"
	"github.com/carewell/eldercare/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSink records how often submissions reach the sink.
type countingSink struct {
	reminders     int
	residents     int
	healthRecords int
}

func (s *countingSink) AcceptReminder(context.Context, forms.ReminderForm) (string, error) {
	s.reminders++
	return "reminder-test", nil
}

func (s *countingSink) AcceptResident(context.Context, forms.ResidentForm) (string, error) {
	s.residents++
	return "resident-test", nil
}

func (s *countingSink) AcceptHealthRecord(context.Context, forms.HealthRecordForm) (string, error) {
	s.healthRecords++
	return "record-test", nil
}

func TestValidator_Validate(t *testing.T) {
	validate := forms.NewValidator()

	tests := []struct {
		name         string
		form         any
		wantMessages []string
	}{
		{
			name: "complete reminder passes",
			form: forms.ReminderForm{
				ResidentID: "resident-1",
				Category:   "medicine",
				Title:      "Blood Pressure Medication",
				Time:       "09:00 AM",
				Repeat:     "daily",
			},
			wantMessages: nil,
		},
		{
			name: "reminder missing title and time names both fields",
			form: forms.ReminderForm{
				ResidentID: "resident-1",
				Category:   "meal",
			},
			wantMessages: []string{
				"Please fill in the title field.",
				"Please fill in the time field.",
			},
		},
		{
			name: "reminder with unknown category",
			form: forms.ReminderForm{
				ResidentID: "resident-1",
				Category:   "gardening",
				Title:      "Water the plants",
				Time:       "10:00 AM",
			},
			wantMessages: []string{"Please choose a valid category."},
		},
		{
			name:         "empty resident form names every required field",
			form:         forms.ResidentForm{},
			wantMessages: []string{
				"Please fill in the name field.",
				"Please fill in the room field.",
				"Please fill in the age field.",
			},
		},
		{
			name: "resident with impossible age",
			form: forms.ResidentForm{Name: "Edith Crane", Room: "110B", Age: 412},
			wantMessages: []string{
				"Please enter a realistic age.",
			},
		},
		{
			name: "complete health record passes",
			form: forms.HealthRecordForm{
				ResidentID: "resident-2",
				Kind:       "blood-pressure",
				Value:      "145/92 mmHg",
			},
			wantMessages: nil,
		},
		{
			name: "health record with unknown kind",
			form: forms.HealthRecordForm{
				ResidentID: "resident-2",
				Kind:       "mood",
				Value:      "sunny",
			},
			wantMessages: []string{"Please choose a valid record type."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := validate.Validate(tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestInvalidSubmissionNeverReachesSink(t *testing.T) {
	validate := forms.NewValidator()
	sink := &countingSink{}

	form := forms.ReminderForm{Category: "medicine"}
	messages, err := validate.Validate(form)
	require.NoError(t, err)
	require.NotEmpty(t, messages)

	// The handler pattern: only forward when validation produced no messages.
	if len(messages) == 0 {
		_, _ = sink.AcceptReminder(context.Background(), form)
	}
	assert.Zero(t, sink.reminders)
	assert.Zero(t, sink.residents)
	assert.Zero(t, sink.healthRecords)
}

func TestAcceptingSink_IssuesPrefixedIDs(t *testing.T) {
	sink := forms.NewAcceptingSink(testhelpers.NewLogger(io.Discard))
	ctx := context.Background()

	reminderID, err := sink.AcceptReminder(ctx, forms.ReminderForm{ResidentID: "resident-1"})
	require.NoError(t, err)
	assert.Regexp(t, "^reminder-", reminderID)

	residentID, err := sink.AcceptResident(ctx, forms.ResidentForm{Name: "Edith Crane"})
	require.NoError(t, err)
	assert.Regexp(t, "^resident-", residentID)

	recordID, err := sink.AcceptHealthRecord(ctx, forms.HealthRecordForm{ResidentID: "resident-1"})
	require.NoError(t, err)
	assert.Regexp(t, "^record-", recordID)

	secondID, err := sink.AcceptReminder(ctx, forms.ReminderForm{ResidentID: "resident-1"})
	require.NoError(t, err)
	assert.NotEqual(t, reminderID, secondID)
}
