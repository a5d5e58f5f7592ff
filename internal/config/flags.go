package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a config. Remaining positional arguments are
// stored in Args.
//
// Flags:
//
//	-a                 server address host:port
//	-grpc-address      gRPC health server address host:port
//	-db-driver         postgres | sqlite | memory
//	-d                 database DSN
//	-redis             redis URL of the lookup cache
//	-c, -config        JSON config file path
//	-token-sign-key    token signing key
//	-token-issuer      token issuer name
//	-token-duration    token duration (e.g. "24h")
//	-request-timeout   server request timeout (e.g. "30s")
//	-log-level         debug | info | warn | error
//	-server            base URL used by the CLI client
//	-u                 username used by the CLI client
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var dbDriver, databaseDSN, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var logLevel string
	var adapterAddress, username string

	fs := flag.NewFlagSet("rental-blocklist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver: postgres, sqlite or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis", "", "Redis URL of the lookup cache")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL for the client")
	fs.StringVar(&username, "u", "", "Username for the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Username:    username,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
