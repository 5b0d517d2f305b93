package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
)

type ContactRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewContactRepository(dbs *db.Database, logger *slog.Logger) *ContactRepository {
	return &ContactRepository{
		dbs:    dbs,
		logger: logger.With("source", "ContactRepository"),
	}
}

// List returns all contacts with emergency services first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	stmt := `SELECT id, name, relationship, phone, available, category
	FROM contacts
	ORDER BY category != 'emergency', id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &contacts, stmt); err != nil {
		return nil, errors.Wrap(err, "select contacts")
	}
	return contacts, nil
}

// Get returns the contact with the given id or ErrNotFound.
func (r *ContactRepository) Get(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	stmt := `SELECT id, name, relationship, phone, available, category
	FROM contacts
	WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &contact, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get contact", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "get contact")
	}
	return &contact, nil
}
