package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/service"
)

// ActivityPruner deletes activity log entries older than the retention
// period on a fixed interval. A failed run is logged and retried on the
// next tick.
type ActivityPruner struct {
	activity  service.ActivityService
	interval  time.Duration
	retention time.Duration

	logger *logger.Logger
}

func NewActivityPruner(activity service.ActivityService, interval, retention time.Duration, logger *logger.Logger) *ActivityPruner {
	return &ActivityPruner{
		activity:  activity,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Run prunes once immediately, then every interval until ctx is cancelled.
func (p *ActivityPruner) Run(ctx context.Context) error {
	p.logger.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("activity pruner started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.prune(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Msg("activity pruner stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (p *ActivityPruner) prune(ctx context.Context) {
	pruned, err := p.activity.Prune(ctx, p.retention)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Msg("activity pruning failed")
		}
		return
	}

	if pruned > 0 {
		p.logger.Info().Int64("pruned", pruned).Msg("old activity deleted")
	}
}
