package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. A zero PruneInterval or
// ActivityRetention disables activity pruning.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.PruneInterval > 0 && cfg.ActivityRetention > 0 {
		w.workers = append(w.workers, NewActivityPruner(services.ActivityService, cfg.PruneInterval, cfg.ActivityRetention, logger))
	} else {
		logger.Info().Msg("activity pruning disabled")
	}

	return w
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
