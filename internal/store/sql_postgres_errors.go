package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed statement may
// succeed when run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] over pgconn error codes.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports connection loss (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40) and a server that is
// starting up or shutting down (class 57) as retryable. Constraint
// violations, data exceptions and everything that is not a PostgreSQL error
// are not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code) && code != pgerrcode.QueryCanceled:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation reports a duplicate username or civil id.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
