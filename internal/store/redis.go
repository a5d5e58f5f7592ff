package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

// NewRedisClient connects to the lookup cache. It returns nil, nil when no
// Redis URL is configured, which disables caching.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}
