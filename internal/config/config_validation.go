// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and a positive duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.DefaultSearchLimit < 0 || cfg.App.ContributionBonus < 0 {
		return fmt.Errorf("%w: search limit and contribution bonus must not be negative", ErrInvalidAppConfigs)
	}
	if (cfg.App.AdminUsername == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin username and password must be set together", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.Cache.RedisURL != "" && cfg.Storage.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache TTL must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: HTTP address and a positive request timeout are required", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.Server.MetricsPath, "/") {
		return fmt.Errorf("%w: metrics path must start with /", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ActivityRetention <= 0 || cfg.Workers.PruneInterval <= 0 {
		return fmt.Errorf("%w: activity retention and prune interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address must be an absolute URL", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
