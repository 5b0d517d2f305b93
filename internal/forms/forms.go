// Package forms validates the caretaker's data-entry forms and hands accepted
// submissions to a Sink. Submissions mutate nothing; the dashboards keep
// rendering the seeded datasets.
package forms

import (
	"context"
	"log/slog"
	"strings"

	"github.com/carewell/eldercare/internal/errors"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReminderForm carries a new care reminder submission.
type ReminderForm struct {
	ResidentID   string `form:"resident_id" validate:"required"`
	Category     string `form:"category" validate:"required,oneof=medicine meal appointment exercise other"`
	Title        string `form:"title" validate:"required"`
	Time         string `form:"time" validate:"required"`
	Repeat       string `form:"repeat" validate:"omitempty,oneof=once daily weekly"`
	VoiceEnabled bool   `form:"voice_enabled"`
	Details      string `form:"details"`
}

// ResidentForm carries a new resident submission.
type ResidentForm struct {
	Name       string `form:"name" validate:"required"`
	Room       string `form:"room" validate:"required"`
	Age        int    `form:"age" validate:"required,gte=1,lte=130"`
	Conditions string `form:"conditions"`
	Notes      string `form:"notes"`
}

// HealthRecordForm carries a new vital measurement submission.
type HealthRecordForm struct {
	ResidentID string `form:"resident_id" validate:"required"`
	Kind       string `form:"kind" validate:"required,oneof=blood-pressure heart-rate blood-sugar weight temperature"`
	Value      string `form:"value" validate:"required"`
	Notes      string `form:"notes"`
}

// Sink receives accepted submissions. Accepting them is the whole contract;
// nothing downstream reads them back.
type Sink interface {
	AcceptReminder(ctx context.Context, form ReminderForm) (id string, err error)
	AcceptResident(ctx context.Context, form ResidentForm) (id string, err error)
	AcceptHealthRecord(ctx context.Context, form HealthRecordForm) (id string, err error)
}

// fieldLabels maps struct field names to the wording shown to the caretaker.
var fieldLabels = map[string]string{
	"ResidentID": "resident",
	"Category":   "category",
	"Title":      "title",
	"Time":       "time",
	"Repeat":     "repeat",
	"Name":       "name",
	"Room":       "room",
	"Age":        "age",
	"Kind":       "record type",
	"Value":      "value",
}

// Validator validates form submissions and renders validation failures as
// messages that name the offending fields.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate checks the form against its rules. The returned messages are in
// field declaration order and safe to show verbatim.
func (v *Validator) Validate(form any) (messages []string, err error) {
	err = v.validate.Struct(form)
	if err == nil {
		return nil, nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, errors.Wrap(err, "validate form")
	}
	for _, fieldError := range validationErrors {
		messages = append(messages, message(fieldError))
	}
	return messages, nil
}

func message(fieldError validator.FieldError) string {
	label := fieldLabels[fieldError.Field()]
	if label == "" {
		label = strings.ToLower(fieldError.Field())
	}
	switch fieldError.Tag() {
	case "required":
		return "Please fill in the " + label + " field."
	case "oneof":
		return "Please choose a valid " + label + "."
	case "gte", "lte":
		return "Please enter a realistic " + label + "."
	default:
		return "Please check the " + label + " field."
	}
}

// AcceptingSink acknowledges every submission with a fresh id and a log line.
type AcceptingSink struct {
	logger *slog.Logger
}

func NewAcceptingSink(logger *slog.Logger) *AcceptingSink {
	return &AcceptingSink{logger: logger}
}

func (s *AcceptingSink) AcceptReminder(ctx context.Context, form ReminderForm) (string, error) {
	id := "reminder-" + uuid.NewString()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "accepted reminder submission",
		slog.String("id", id),
		slog.String("resident_id", form.ResidentID),
		slog.String("category", form.Category))
	return id, nil
}

func (s *AcceptingSink) AcceptResident(ctx context.Context, form ResidentForm) (string, error) {
	id := "resident-" + uuid.NewString()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "accepted resident submission",
		slog.String("id", id),
		slog.String("room", form.Room))
	return id, nil
}

func (s *AcceptingSink) AcceptHealthRecord(ctx context.Context, form HealthRecordForm) (string, error) {
	id := "record-" + uuid.NewString()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "accepted health record submission",
		slog.String("id", id),
		slog.String("resident_id", form.ResidentID),
		slog.String("kind", form.Kind))
	return id, nil
}
