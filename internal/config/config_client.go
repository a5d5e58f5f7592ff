package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the network settings of the CLI client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the timeout of a single request.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration view used by cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter

	// Username is the account to log in as. Commands other than version need it.
	Username string

	// LogLevel is the minimum zerolog level of the client logger.
	LogLevel string

	// Args holds the subcommand and its arguments.
	Args []string
}

// GetClientConfig builds and validates the client view of the configuration.
func GetClientConfig() (*ClientConfig, error) {
	return clientConfigFromArgs(commandLineArgs())
}

func clientConfigFromArgs(args []string) (*ClientConfig, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Username: cfg.Adapter.Username,
		LogLevel: cfg.App.LogLevel,
		Args:     cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
