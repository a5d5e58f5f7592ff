package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateAccount inserts a new account and returns it with the generated ID.
// A taken username results in [ErrLoginAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	account.CreatedAt, account.UpdatedAt = now, now

	query, args, err := buildInsertAccountQuery(r.db.builder, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		if r.db.isUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyExists
		}
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"account_id": accountID})
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *accountRepository) findOne(ctx context.Context, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(r.db.builder, where)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.retry(ctx, func() error {
		account, err = scanAccount(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error finding account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// ListAccounts returns all accounts ordered by ID.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error querying accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.db.builder, accountID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

func (r *accountRepository) UpdateRemaining(ctx context.Context, accountID int64, remaining *int64) (models.Account, error) {
	query, args, err := buildUpdateRemainingQuery(r.db.builder, accountID, remaining, r.now())
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, "*accountRepository.UpdateRemaining", query, args)
}

func (r *accountRepository) UpdateCredentials(ctx context.Context, accountID int64, username, passwordHash string) (models.Account, error) {
	query, args, err := buildUpdateCredentialsQuery(r.db.builder, accountID, username, passwordHash, r.now())
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updateOne(ctx, "*accountRepository.UpdateCredentials", query, args)
}

func (r *accountRepository) updateOne(ctx context.Context, funcName, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error updating account")
		if r.db.isUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyExists
		}
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return account, nil
}

// DecrementRemainingIfPositive consumes one search with a single conditional
// UPDATE. When no row is updated the account is re-read to tell a missing
// account, an unbounded account and an exhausted quota apart.
func (r *accountRepository) DecrementRemainingIfPositive(ctx context.Context, accountID int64) (*int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDecrementRemainingQuery(r.db.builder, accountID, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// Counter updates are not idempotent and never go through db.retry.
	var remaining sql.NullInt64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&remaining)
	if err == nil {
		return int64Ptr(remaining), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*accountRepository.DecrementRemainingIfPositive").Msg("error decrementing searches")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	account, err := r.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.RemainingSearches == nil {
		return nil, nil
	}

	return account.RemainingSearches, quota.ErrQuotaExceeded
}

// CreditRemaining adds bonus to a bounded counter in one UPDATE. Like the
// decrement it runs exactly once.
func (r *accountRepository) CreditRemaining(ctx context.Context, accountID int64, bonus int64) (*int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreditRemainingQuery(r.db.builder, accountID, bonus, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var remaining sql.NullInt64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.CreditRemaining").Msg("error crediting searches")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return int64Ptr(remaining), nil
}
