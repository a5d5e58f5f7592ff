// Package migrations embeds the SQL schema of the blocklist service and
// applies it with goose. Each supported database has its own directory.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := dirFor(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	migrationsFS, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
