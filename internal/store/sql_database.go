package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/migrations"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// retry runs op until it succeeds, fails with a non-retryable error or
// maxAttempts is reached.
func (db *DB) retry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return err
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
