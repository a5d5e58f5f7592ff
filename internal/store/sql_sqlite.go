package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/migrations"
)

// NewConnectSQLite opens a single-node SQLite database. The DSN is passed to
// go-sqlite3 unchanged, so both file paths and "file::memory:?cache=shared"
// work.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify treats busy and locked databases as retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
