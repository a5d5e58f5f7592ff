package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Earlier configs take precedence:
// mergo only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        "rental-blocklist",
			TokenDuration:      24 * time.Hour,
			Version:            "dev",
			LogLevel:           "debug",
			DefaultSearchLimit: 1000,
			ContributionBonus:  5,
		},
		Storage: Storage{
			DB:    DB{Driver: DriverPostgres},
			Cache: Cache{TTL: 5 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MetricsPath:    "/metrics",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			ActivityRetention: 90 * 24 * time.Hour,
			PruneInterval:     time.Hour,
		},
	}
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
