package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.NewSentinel("not found")

type ReminderRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewReminderRepository(dbs *db.Database, logger *slog.Logger) *ReminderRepository {
	return &ReminderRepository{
		dbs:    dbs,
		logger: logger.With("source", "ReminderRepository"),
	}
}

// List returns all reminders in schedule order.
func (r *ReminderRepository) List(ctx context.Context) ([]models.Reminder, error) {
	var reminders []models.Reminder
	stmt := `SELECT id, resident_id, resident_name, category, title, time, repeat, status, voice_enabled, details
	FROM reminders
	ORDER BY time, id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &reminders, stmt); err != nil {
		return nil, errors.Wrap(err, "select reminders")
	}
	return reminders, nil
}

// Get returns the reminder with the given id or ErrNotFound.
func (r *ReminderRepository) Get(ctx context.Context, id string) (*models.Reminder, error) {
	var reminder models.Reminder
	stmt := `SELECT id, resident_id, resident_name, category, title, time, repeat, status, voice_enabled, details
	FROM reminders
	WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &reminder, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get reminder", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "get reminder")
	}
	return &reminder, nil
}

// Complete marks a pending reminder as completed. Completing an already
// completed or missed reminder changes nothing; an unknown id returns
// ErrNotFound.
func (r *ReminderRepository) Complete(ctx context.Context, id string) error {
	stmt := `UPDATE reminders SET status = ? WHERE id = ? AND status = ?`
	result, err := r.dbs.ReadWrite.ExecContext(ctx, stmt, models.ReminderCompleted, id, models.ReminderPending)
	if err != nil {
		return errors.Wrap(err, "complete reminder")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		// Distinguish a missing reminder from one that was not pending.
		if _, err = r.Get(ctx, id); err != nil {
			return err
		}
		r.logger.LogAttrs(ctx, slog.LevelDebug, "reminder not pending, leaving as is", slog.String("id", id))
	}
	return nil
}
