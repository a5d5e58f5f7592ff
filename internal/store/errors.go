package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an account cannot be created or
	// renamed because another account already uses the username.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoAccountWasFound is returned when a query expected to match an
	// account record produces an empty result set.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrDuplicateBlock is returned when a civil id is already on the blocklist.
	ErrDuplicateBlock = errors.New("civil id is already blocked")

	// ErrBlockNotFound is returned when a delete targets a civil id that is
	// not on the blocklist.
	ErrBlockNotFound = errors.New("block record was not found")

	// ErrMessageNotFound is returned when a support message does not exist.
	ErrMessageNotFound = errors.New("support message was not found")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown DB driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
