package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
)

type ResidentRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewResidentRepository(dbs *db.Database, logger *slog.Logger) *ResidentRepository {
	return &ResidentRepository{
		dbs:    dbs,
		logger: logger.With("source", "ResidentRepository"),
	}
}

// residentRow mirrors the residents table. Conditions are stored as a
// comma-separated list.
type residentRow struct {
	ID              string                `db:"id"`
	Name            string                `db:"name"`
	Room            string                `db:"room"`
	Age             int                   `db:"age"`
	Status          models.ResidentStatus `db:"status"`
	Conditions      string                `db:"conditions"`
	LastCheckup     string                `db:"last_checkup"`
	Medications     int                   `db:"medications"`
	NextAppointment string                `db:"next_appointment"`
}

func (row residentRow) toModel() models.Resident {
	var conditions []string
	if row.Conditions != "" {
		conditions = strings.Split(row.Conditions, ",")
	}
	return models.Resident{
		ID:              row.ID,
		Name:            row.Name,
		Room:            row.Room,
		Age:             row.Age,
		Status:          row.Status,
		Conditions:      conditions,
		LastCheckup:     row.LastCheckup,
		Medications:     row.Medications,
		NextAppointment: row.NextAppointment,
	}
}

// List returns the resident roster ordered by room.
func (r *ResidentRepository) List(ctx context.Context) ([]models.Resident, error) {
	var rows []residentRow
	stmt := `SELECT id, name, room, age, status, conditions, last_checkup, medications, next_appointment
	FROM residents
	ORDER BY room`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select residents")
	}
	residents := make([]models.Resident, 0, len(rows))
	for _, row := range rows {
		residents = append(residents, row.toModel())
	}
	return residents, nil
}

// Get returns the resident with the given id or ErrNotFound.
func (r *ResidentRepository) Get(ctx context.Context, id string) (*models.Resident, error) {
	var row residentRow
	stmt := `SELECT id, name, room, age, status, conditions, last_checkup, medications, next_appointment
	FROM residents
	WHERE id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &row, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get resident", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "get resident")
	}
	resident := row.toModel()
	return &resident, nil
}
