package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/carewell/eldercare/internal/db"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/models"
)

type HealthRepository struct {
	dbs    *db.Database
	logger *slog.Logger
}

func NewHealthRepository(dbs *db.Database, logger *slog.Logger) *HealthRepository {
	return &HealthRepository{
		dbs:    dbs,
		logger: logger.With("source", "HealthRepository"),
	}
}

// Metrics returns the resident dashboard's personal health metrics.
func (r *HealthRepository) Metrics(ctx context.Context) ([]models.HealthMetric, error) {
	var metrics []models.HealthMetric
	stmt := `SELECT id, name, value, unit, status, last_updated FROM health_metrics ORDER BY id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &metrics, stmt); err != nil {
		return nil, errors.Wrap(err, "select health metrics")
	}
	return metrics, nil
}

// ResidentHealth returns the monitored vitals summary for every resident.
func (r *HealthRepository) ResidentHealth(ctx context.Context) ([]models.ResidentHealth, error) {
	var health []models.ResidentHealth
	stmt := `SELECT resident_id, resident_name, blood_pressure, heart_rate, blood_sugar, weight, status, last_checkup
	FROM resident_health
	ORDER BY resident_id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &health, stmt); err != nil {
		return nil, errors.Wrap(err, "select resident health")
	}
	return health, nil
}

// GetResidentHealth returns one resident's vitals summary or ErrNotFound.
func (r *HealthRepository) GetResidentHealth(ctx context.Context, residentID string) (*models.ResidentHealth, error) {
	var health models.ResidentHealth
	stmt := `SELECT resident_id, resident_name, blood_pressure, heart_rate, blood_sugar, weight, status, last_checkup
	FROM resident_health
	WHERE resident_id = ?`
	if err := r.dbs.ReadOnly.GetContext(ctx, &health, stmt, residentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get resident health", slog.String("resident_id", residentID))
		}
		return nil, errors.Wrap(err, "get resident health")
	}
	return &health, nil
}

// RecentRecords returns the latest vital measurements across all residents.
func (r *HealthRepository) RecentRecords(ctx context.Context) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	stmt := `SELECT id, resident_id, resident_name, kind, value, timestamp, status
	FROM health_records
	ORDER BY id`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &records, stmt); err != nil {
		return nil, errors.Wrap(err, "select health records")
	}
	return records, nil
}

// BloodPressureTrend returns the week of blood pressure samples in day order.
func (r *HealthRepository) BloodPressureTrend(ctx context.Context) ([]models.BloodPressureSample, error) {
	var samples []models.BloodPressureSample
	stmt := `SELECT day, systolic, diastolic FROM blood_pressure_trend ORDER BY ord`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &samples, stmt); err != nil {
		return nil, errors.Wrap(err, "select blood pressure trend")
	}
	return samples, nil
}

// ActivityTrend returns the week of step counts in day order.
func (r *HealthRepository) ActivityTrend(ctx context.Context) ([]models.ActivitySample, error) {
	var samples []models.ActivitySample
	stmt := `SELECT day, steps FROM activity_trend ORDER BY ord`
	if err := r.dbs.ReadOnly.SelectContext(ctx, &samples, stmt); err != nil {
		return nil, errors.Wrap(err, "select activity trend")
	}
	return samples, nil
}
