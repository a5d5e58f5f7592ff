package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/models"
)

// DefaultActivityLimit caps activity listings that do not set a limit.
const DefaultActivityLimit uint64 = 500

type activityService struct {
	activityRepository store.ActivityRepository
	metrics            *metrics.Metrics
	now                func() time.Time

	logger *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, m *metrics.Metrics, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		metrics:            m,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *activityService) Record(ctx context.Context, username string, action models.Action, civilID string) {
	err := s.activityRepository.Record(ctx, models.Activity{
		Username:  username,
		Action:    action,
		CivilID:   civilID,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("username", username).
			Str("action", string(action)).
			Msg("failed to record activity")
	}
}

func (s *activityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultActivityLimit
	}

	activities, err := s.activityRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing activity: %w", err)
	}

	return activities, nil
}

// Prune deletes entries older than retention.
func (s *activityService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: retention must be positive", ErrInvalidDataProvided)
	}

	pruned, err := s.activityRepository.PruneBefore(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("error pruning activity: %w", err)
	}
	s.metrics.AddActivityPruned(pruned)

	return pruned, nil
}
