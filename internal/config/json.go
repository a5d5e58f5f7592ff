package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		Version            string   `json:"version"`
		LogLevel           string   `json:"log_level"`
		DefaultSearchLimit int64    `json:"default_search_limit"`
		ContributionBonus  int64    `json:"contribution_bonus"`
		AdminUsername      string   `json:"admin_username"`
		AdminPassword      string   `json:"admin_password"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db"`

		Cache struct {
			RedisURL string   `json:"redis_url"`
			TTL      Duration `json:"ttl"`
		} `json:"cache"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MetricsPath    string   `json:"metrics_path"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Username       string   `json:"username"`
	} `json:"adapter"`

	Workers struct {
		ActivityRetention Duration `json:"activity_retention"`
		PruneInterval     Duration `json:"prune_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			Version:            jsonCfg.App.Version,
			LogLevel:           jsonCfg.App.LogLevel,
			DefaultSearchLimit: jsonCfg.App.DefaultSearchLimit,
			ContributionBonus:  jsonCfg.App.ContributionBonus,
			AdminUsername:      jsonCfg.App.AdminUsername,
			AdminPassword:      jsonCfg.App.AdminPassword,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				RedisURL: jsonCfg.Storage.Cache.RedisURL,
				TTL:      time.Duration(jsonCfg.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MetricsPath:    jsonCfg.Server.MetricsPath,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Username:       jsonCfg.Adapter.Username,
		},
		Workers: Workers{
			ActivityRetention: time.Duration(jsonCfg.Workers.ActivityRetention),
			PruneInterval:     time.Duration(jsonCfg.Workers.PruneInterval),
		},
	}

	return cfg, nil
}

// Duration unmarshals from either a duration string ("1h", "30s") or a
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
