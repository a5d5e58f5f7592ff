package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rental-blocklist/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
	Logout(ctx context.Context, accountID int64) error
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureAdmin creates the bootstrap admin account if it does not exist.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type AccountService interface {
	Me(ctx context.Context, accountID int64) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)
	DeleteAccount(ctx context.Context, callerID, accountID int64) error
	SetRemainingSearches(ctx context.Context, accountID int64, req models.SetSearchesRequest) (models.Account, error)
	UpdateCredentials(ctx context.Context, accountID int64, req models.UpdateCredentialsRequest) (models.Account, error)
}

// SearchService performs quota-checked blocklist lookups.
type SearchService interface {
	Search(ctx context.Context, accountID int64, civilID string) (models.SearchResponse, error)
}

type BlocklistService interface {
	AddBlock(ctx context.Context, accountID int64, req models.AddBlockRequest) (models.AddBlockResponse, error)
	RemoveBlock(ctx context.Context, accountID int64, civilID string) error
	ListBlocks(ctx context.Context) ([]models.BlockRecord, error)
}

type ActivityService interface {
	// Record appends an entry to the activity log. Failures are logged and
	// never returned, the audited operation has already happened.
	Record(ctx context.Context, username string, action models.Action, civilID string)
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

type SupportService interface {
	SubmitGuestMessage(ctx context.Context, req models.GuestMessageRequest) (models.SupportMessage, error)
	SubmitMessage(ctx context.Context, accountID int64, req models.SupportMessageRequest) (models.SupportMessageResponse, error)
	ListMessages(ctx context.Context, filter models.SupportFilter) ([]models.SupportMessage, error)
	UpdateStatus(ctx context.Context, messageID int64, req models.StatusUpdateRequest) (models.SupportMessage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}
