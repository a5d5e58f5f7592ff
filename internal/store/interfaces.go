package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/rental-blocklist/models"
)

// AccountRepository persists user and admin accounts and their search quota.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindByID(ctx context.Context, accountID int64) (models.Account, error)
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error

	// UpdateRemaining overwrites the remaining search counter. A nil value
	// makes the account unbounded.
	UpdateRemaining(ctx context.Context, accountID int64, remaining *int64) (models.Account, error)
	UpdateCredentials(ctx context.Context, accountID int64, username, passwordHash string) (models.Account, error)

	// DecrementRemainingIfPositive atomically consumes one search. It returns
	// the new counter, nil for unbounded accounts, or quota.ErrQuotaExceeded
	// when the counter is already at zero.
	DecrementRemainingIfPositive(ctx context.Context, accountID int64) (*int64, error)

	// CreditRemaining atomically adds bonus searches and returns the new
	// counter. Unbounded accounts stay unbounded.
	CreditRemaining(ctx context.Context, accountID int64, bonus int64) (*int64, error)
}

// BlocklistRepository persists blocked civil ids. At most one record exists
// per civil id.
type BlocklistRepository interface {
	FindByIdentifier(ctx context.Context, civilID string) (models.SearchResult, error)
	Insert(ctx context.Context, record models.BlockRecord) (models.BlockRecord, error)
	Delete(ctx context.Context, civilID string) error
	List(ctx context.Context) ([]models.BlockRecord, error)
}

// ActivityRepository persists the account activity log.
type ActivityRepository interface {
	Record(ctx context.Context, activity models.Activity) error
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	PruneBefore(ctx context.Context, before time.Time) (int64, error)
}

// SupportRepository persists guest and account support messages.
type SupportRepository interface {
	CreateMessage(ctx context.Context, message models.SupportMessage) (models.SupportMessage, error)
	ListMessages(ctx context.Context, filter models.SupportFilter) ([]models.SupportMessage, error)
	UpdateStatus(ctx context.Context, messageID int64, status models.MessageStatus) (models.SupportMessage, error)
}

// ErrorClassificator decides how a driver error should be handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
