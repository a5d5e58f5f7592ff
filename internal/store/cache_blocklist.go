package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/models"
)

const blocklistKeyPrefix = "blocklist:civil_id:"

// cachedBlocklistRepository is a read-through Redis cache in front of a
// [BlocklistRepository]. Only Found results are cached, so a lookup can
// never hide a record that was inserted meanwhile. Insert writes the new
// entry itself and the read path uses SETNX, so a slow read cannot replace
// it. Redis failures never fail a request, the call falls through to the
// wrapped repository.
type cachedBlocklistRepository struct {
	next    BlocklistRepository
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewCachedBlocklistRepository wraps next with a Redis cache. A nil client
// returns next unchanged.
func NewCachedBlocklistRepository(next BlocklistRepository, client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *logger.Logger) BlocklistRepository {
	if client == nil {
		return next
	}
	logger.Debug().Dur("ttl", ttl).Msg("creating cached blocklist repository")
	return &cachedBlocklistRepository{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func blocklistKey(civilID string) string {
	return blocklistKeyPrefix + civilID
}

func (c *cachedBlocklistRepository) FindByIdentifier(ctx context.Context, civilID string) (models.SearchResult, error) {
	log := logger.FromContext(ctx)
	key := blocklistKey(civilID)

	payload, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var result models.SearchResult
		if err := json.Unmarshal(payload, &result); err == nil && result.Found && result.Record != nil {
			c.metrics.ObserveCacheLookup("hit")
			return result, nil
		}
		log.Warn().Str("key", key).Msg("dropping unusable cache entry")
		c.metrics.ObserveCacheLookup("error")
		c.invalidate(ctx, civilID)
	case errors.Is(err, redis.Nil):
		c.metrics.ObserveCacheLookup("miss")
	default:
		log.Warn().Err(err).Str("func", "*cachedBlocklistRepository.FindByIdentifier").Msg("cache read failed")
		c.metrics.ObserveCacheLookup("error")
	}

	result, err := c.next.FindByIdentifier(ctx, civilID)
	if err != nil {
		return models.SearchResult{}, err
	}

	if result.Found {
		if payload, err := json.Marshal(result); err == nil {
			if err := c.client.SetNX(ctx, key, payload, c.ttl).Err(); err != nil {
				log.Warn().Err(err).Str("func", "*cachedBlocklistRepository.FindByIdentifier").Msg("cache write failed")
			}
		}
	}

	return result, nil
}

func (c *cachedBlocklistRepository) Insert(ctx context.Context, record models.BlockRecord) (models.BlockRecord, error) {
	created, err := c.next.Insert(ctx, record)
	if err != nil {
		return models.BlockRecord{}, err
	}

	payload, err := json.Marshal(models.Found(created))
	if err == nil {
		err = c.client.Set(ctx, blocklistKey(created.CivilID), payload, c.ttl).Err()
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("civil_id", created.CivilID).Msg("cache write failed")
	}

	return created, nil
}

func (c *cachedBlocklistRepository) Delete(ctx context.Context, civilID string) error {
	if err := c.next.Delete(ctx, civilID); err != nil {
		return err
	}
	c.invalidate(ctx, civilID)

	return nil
}

func (c *cachedBlocklistRepository) List(ctx context.Context) ([]models.BlockRecord, error) {
	return c.next.List(ctx)
}

func (c *cachedBlocklistRepository) invalidate(ctx context.Context, civilID string) {
	if err := c.client.Del(ctx, blocklistKey(civilID)).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("civil_id", civilID).Msg("cache invalidation failed")
	}
}
