package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/migrations"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens a pgx-backed pool and checks it with a ping.
// Migrations are applied by the caller.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening postgres")
		return nil, fmt.Errorf("error opening postgres: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		conn.Close()
		return nil, fmt.Errorf("error pinging postgres: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")

	return newPostgresDB(conn, log), nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}
