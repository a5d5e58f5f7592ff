package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
)

// Storages bundles the repositories used by the service layer together with
// the connections backing them.
type Storages struct {
	AccountRepository   AccountRepository
	BlocklistRepository BlocklistRepository
	ActivityRepository  ActivityRepository
	SupportRepository   SupportRepository

	db    *DB
	redis *redis.Client
}

// NewStorages opens the configured database, applies migrations and wires
// the repositories. When a Redis URL is configured blocklist lookups are
// cached.
func NewStorages(ctx context.Context, cfg config.Storage, m *metrics.Metrics, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return NewMemoryStorages(), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	redisClient, err := NewRedisClient(ctx, cfg.Cache, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		AccountRepository:   NewAccountRepository(db, log),
		BlocklistRepository: NewCachedBlocklistRepository(NewBlocklistRepository(db, log), redisClient, cfg.Cache.TTL, m, log),
		ActivityRepository:  NewActivityRepository(db, log),
		SupportRepository:   NewSupportRepository(db, log),
		db:                  db,
		redis:               redisClient,
	}, nil
}

// NewMemoryStorages returns storages kept entirely in process memory.
func NewMemoryStorages() *Storages {
	return &Storages{
		AccountRepository:   NewMemoryAccountRepository(),
		BlocklistRepository: NewMemoryBlocklistRepository(),
		ActivityRepository:  NewMemoryActivityRepository(),
		SupportRepository:   NewMemorySupportRepository(),
	}
}

// Ping checks the database and the cache connection.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}

	return nil
}

func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
