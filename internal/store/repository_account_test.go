package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/models"
)

var fixedNow = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &accountRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows(accountColumns)
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	account := models.Account{
		Username:          "alice",
		PasswordHash:      "hash",
		Role:              models.RoleUser,
		SearchLimit:       models.Int64Ptr(10),
		RemainingSearches: models.Int64Ptr(10),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts")).
		WithArgs("alice", "hash", "user", int64(10), int64(10), "", "", fixedNow, fixedNow).
		WillReturnRows(accountRows().AddRow(1, "alice", "hash", "user", 10, 10, "", "", fixedNow, fixedNow))

	created, err := repo.CreateAccount(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.AccountID)
	assert.Equal(t, models.RoleUser, created.Role)
	require.NotNil(t, created.RemainingSearches)
	assert.Equal(t, int64(10), *created.RemainingSearches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(context.Background(), models.Account{Username: "alice", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAccount(context.Background(), models.Account{Username: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindByUsername(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT account_id, username")).
		WithArgs("root").
		WillReturnRows(accountRows().AddRow(7, "root", "hash", "admin", nil, nil, "", "", fixedNow, fixedNow))

	account, err := repo.FindByUsername(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.AccountID)
	assert.True(t, account.IsAdmin())
	assert.Nil(t, account.SearchLimit)
	assert.Nil(t, account.RemainingSearches)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE account_id").
		WithArgs(int64(42)).
		WillReturnRows(accountRows())

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNoAccountWasFound)
}

func TestFindByID_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnRows(accountRows().AddRow(1, "alice", "hash", "user", 10, 4, "", "", fixedNow, fixedNow))

	account, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *account.RemainingSearches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_DoesNotRetryConstraintErrors(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAccounts(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts ORDER BY account_id")).
		WillReturnRows(accountRows().
			AddRow(1, "root", "h", "admin", nil, nil, "", "", fixedNow, fixedNow).
			AddRow(2, "alice", "h", "user", 1000, 998, "555", "Acme", fixedNow, fixedNow))

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Acme", accounts[1].CompanyName)
	assert.Equal(t, int64(998), *accounts[1].RemainingSearches)
}

func TestDeleteAccount(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectExec("DELETE FROM accounts").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM accounts").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteAccount(context.Background(), 2))
	assert.ErrorIs(t, repo.DeleteAccount(context.Background(), 3), ErrNoAccountWasFound)
}

func TestUpdateRemaining(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE accounts SET remaining_searches = $1, updated_at = $2 WHERE account_id = $3")).
		WithArgs(int64(50), fixedNow, int64(2)).
		WillReturnRows(accountRows().AddRow(2, "alice", "h", "user", 1000, 50, "", "", fixedNow, fixedNow))

	account, err := repo.UpdateRemaining(context.Background(), 2, models.Int64Ptr(50))
	require.NoError(t, err)
	assert.Equal(t, int64(50), *account.RemainingSearches)
}

func TestUpdateCredentials_UsernameTaken(t *testing.T) {
	repo, mock := newTestAccountRepo(t)

	mock.ExpectQuery("UPDATE accounts SET username").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateCredentials(context.Background(), 1, "alice", "hash")
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestDecrementRemainingIfPositive(t *testing.T) {
	decrement := regexp.QuoteMeta("UPDATE accounts SET remaining_searches = remaining_searches - 1")
	selectByID := "SELECT (.+) FROM accounts WHERE account_id"

	t.Run("decrements", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).
			WithArgs(fixedNow, int64(1), 0).
			WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}).AddRow(2))

		remaining, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, remaining)
		assert.Equal(t, int64(2), *remaining)
	})

	t.Run("exhausted", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}))
		mock.ExpectQuery(selectByID).
			WillReturnRows(accountRows().AddRow(1, "alice", "h", "user", 10, 0, "", "", fixedNow, fixedNow))

		remaining, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		assert.ErrorIs(t, err, quota.ErrQuotaExceeded)
		require.NotNil(t, remaining)
		assert.Equal(t, int64(0), *remaining)
	})

	t.Run("unbounded", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}))
		mock.ExpectQuery(selectByID).
			WillReturnRows(accountRows().AddRow(1, "root", "h", "admin", nil, nil, "", "", fixedNow, fixedNow))

		remaining, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, remaining)
	})

	t.Run("missing account", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}))
		mock.ExpectQuery(selectByID).WillReturnRows(accountRows())

		_, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNoAccountWasFound)
	})

	t.Run("serialization failure is not retried", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectQuery(decrement).
			WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}).AddRow(1))

		_, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		require.Error(t, err)
		assert.Error(t, mock.ExpectationsWereMet(), "second decrement must not run")
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(decrement).WillReturnError(sql.ErrConnDone)

		_, err := repo.DecrementRemainingIfPositive(context.Background(), 1)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestCreditRemaining(t *testing.T) {
	credit := regexp.QuoteMeta("UPDATE accounts SET remaining_searches = remaining_searches + $1")

	t.Run("credits", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(credit).
			WithArgs(int64(5), fixedNow, int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}).AddRow(7))

		remaining, err := repo.CreditRemaining(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(7), *remaining)
	})

	t.Run("unbounded stays unbounded", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(credit).
			WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}).AddRow(nil))

		remaining, err := repo.CreditRemaining(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Nil(t, remaining)
	})

	t.Run("deadlock is not retried", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(credit).WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectQuery(credit).
			WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}).AddRow(12))

		_, err := repo.CreditRemaining(context.Background(), 1, 5)
		require.Error(t, err)
		assert.Error(t, mock.ExpectationsWereMet(), "second credit must not run")
	})

	t.Run("missing account", func(t *testing.T) {
		repo, mock := newTestAccountRepo(t)
		mock.ExpectQuery(credit).WillReturnRows(sqlmock.NewRows([]string{"remaining_searches"}))

		_, err := repo.CreditRemaining(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrNoAccountWasFound)
	})
}
