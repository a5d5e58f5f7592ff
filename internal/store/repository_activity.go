package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/models"
)

type activityRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *activityRepository) Record(ctx context.Context, activity models.Activity) error {
	log := logger.FromContext(ctx)

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = r.now()
	}

	query, args, err := buildInsertActivityQuery(r.db.builder, activity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*activityRepository.Record").Msg("error recording activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List returns activity entries newest first.
func (r *activityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActivityQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.List").Msg("error querying activity")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}

// PruneBefore deletes entries created before the given time and returns how
// many were removed.
func (r *activityRepository) PruneBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneActivityQuery(r.db.builder, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.PruneBefore").Msg("error pruning activity")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
